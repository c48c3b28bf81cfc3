package forms

// Business is the business registration form.
var Business = newForm("business", "Business Registration", nil,
	text("businessName", "Business Name", chain(
		required("Business name is required"),
		minLen(3, "Business name must be at least 3 characters"),
	)),
	text("businessType", "Business Type", required(msgRequired), BusinessTypes...),
	text("registrationType", "Registration Type", required(msgRequired), RegistrationTypes...),
	optionalText("gstNumber", "GST Number", gstin()),
	text("panNumber", "PAN Number", chain(required("PAN number is required"), pan())),
	text("ownerName", "Owner Name", chain(required("Owner name is required"), lettersAndSpaces())),
	text("email", "Business Email", chain(
		required("Email is required"),
		email("Enter a valid email"),
	)),
	text("mobile", "Mobile Number", chain(
		required("Mobile number is required"),
		mobile("Enter valid 10-digit mobile number"),
	)),
	text("businessAddress", "Business Address", required(msgRequired)),
	text("city", "City", required(msgRequired)),
	text("state", "State", required(msgRequired), States...),
	text(FieldPincode, "PIN Code", pincode()),
	text("businessCategory", "Business Category", required(msgRequired), BusinessCategories...),
	text("annualTurnover", "Annual Turnover", required(msgRequired), TurnoverRanges...),
	text("numberOfEmployees", "Number of Employees", required(msgRequired), EmployeeCounts...),
	text("businessStartDate", "Business Start Date", chain(
		required("Business start date is required"),
		pastDate("Start date cannot be in future"),
	)),
	flag("termsAccepted", "I accept the terms and conditions", accepted("You must accept the terms and conditions")),
)
