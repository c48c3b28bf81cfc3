package forms

// Contact is the contact details form with mobile OTP verification. The otp
// field is required only once the record carries FieldOTPSent.
var Contact = newForm("contact", "Contact Details", nil,
	text("firstName", "First Name", chain(required(msgRequired), lettersOnly())),
	text("lastName", "Last Name", chain(required(msgRequired), lettersOnly())),
	text("email", "Email Address", chain(
		required("Email is required"),
		email("Enter a valid email"),
	)),
	text(FieldPrimaryMobile, "Primary Mobile", chain(
		required("Primary mobile is required"),
		mobile("Enter valid 10-digit mobile number"),
	)),
	optionalText("alternateMobile", "Alternate Mobile", chain(
		mobile("Enter valid 10-digit mobile number"),
		differsFrom(FieldPrimaryMobile, "Alternate mobile should be different"),
	)),
	optionalText("whatsappNumber", "WhatsApp Number", mobile("Enter valid 10-digit WhatsApp number")),
	text(FieldOTP, "OTP", when(FieldOTPSent,
		chain(required("OTP is required"), otpFormat()),
		optional(otpFormat()),
	)),
).withVerification()
