package forms

// Tax is the PAN application form.
var Tax = newForm("tax", "PAN Card Application", []string{"pan"},
	text("title", "Title", required(msgRequired), Titles...),
	text("firstName", "First Name", chain(required(msgRequired), lettersOnly())),
	optionalText("middleName", "Middle Name", lettersOnly()),
	text("lastName", "Last Name", chain(required(msgRequired), lettersOnly())),
	text("fatherFirstName", "Father's First Name", chain(required(msgRequired), lettersOnly())),
	optionalText("fatherMiddleName", "Father's Middle Name", lettersOnly()),
	text("fatherLastName", "Father's Last Name", chain(required(msgRequired), lettersOnly())),
	text("dateOfBirth", "Date of Birth", chain(
		required(msgRequired),
		birthDate("Please enter a valid date of birth"),
	)),
	text("gender", "Gender", required(msgRequired), Genders...),
	text("email", "Email Address", chain(
		required("Email is required"),
		email("Enter a valid email"),
	)),
	text("mobile", "Mobile Number", chain(
		required("Mobile number is required"),
		mobile("Enter valid 10-digit mobile number"),
	)),
	text("aadhaarNumber", "Aadhaar Number", aadhaarDigits()),
	text("address", "Address", required(msgRequired)),
	text("city", "City", required(msgRequired)),
	text("state", "State", required(msgRequired), States...),
	text(FieldPincode, "PIN Code", pincode()),
	text("incomeSource", "Source of Income", required(msgRequired), IncomeSources...),
	optionalText("previousPAN", "Previous PAN (if any)", pan()),
	flag("declaration", "I declare that the information given is true", accepted("Declaration must be accepted")),
)
