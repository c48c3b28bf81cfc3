package forms

const msgRequired = "This field is required"

func personName() FieldRule {
	return chain(
		required(msgRequired),
		minLen(2, "Name must be at least 2 characters"),
		lettersAndSpaces(),
	)
}

// Identity is the Aadhaar enrolment form.
var Identity = newForm("identity", "Aadhaar Registration", []string{"aadhaar"},
	text("fullName", "Full Name", personName()),
	text("fatherName", "Father's Name", personName()),
	text("motherName", "Mother's Name", personName()),
	text("dateOfBirth", "Date of Birth", chain(
		required("Date of birth is required"),
		birthDate("Please enter a valid date of birth"),
	)),
	text("gender", "Gender", required("Gender is required"), Genders...),
	text("mobile", "Mobile Number", chain(
		required("Mobile number is required"),
		mobile("Enter valid 10-digit mobile number starting with 6-9"),
	)),
	text("email", "Email Address", chain(
		required("Email is required"),
		email("Enter a valid email address"),
	)),
	text("address", "Full Address", chain(
		required("Address is required"),
		minLen(10, "Address must be at least 10 characters"),
	)),
	text("city", "City", chain(
		required("City is required"),
		lettersAndSpaces(),
	)),
	text("state", "State", required("State is required"), States...),
	text(FieldPincode, "PIN Code", pincode()),
	text("aadhaarNumber", "Aadhaar Number", aadhaar()),
)

func pincode() FieldRule {
	return chain(
		required("PIN code is required"),
		pincodeFormat(),
	)
}

// aadhaar checks the format before the checksum so malformed input never
// reaches the fold.
func aadhaar() FieldRule {
	return chain(
		required("Aadhaar number is required"),
		aadhaarFormat(),
		aadhaarChecksum(),
	)
}

// aadhaarDigits checks the 12-digit shape only.
func aadhaarDigits() FieldRule {
	return chain(
		required("Aadhaar number is required"),
		aadhaarFormat(),
	)
}
