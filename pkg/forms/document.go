package forms

// Document is the document verification form. Uploaded files are tracked
// outside the record and reported under FieldFiles.
var Document = newForm("document", "Document Verification", nil,
	text("documentType", "Document Type", required("Document type is required"), DocumentTypes...),
	text("documentNumber", "Document Number", chain(
		required("Document number is required"),
		minLen(5, "Document number must be at least 5 characters"),
	)),
	text("applicantName", "Applicant Name", chain(
		required("Applicant name is required"),
		lettersAndSpaces(),
	)),
	text("issueDate", "Issue Date", chain(
		required("Issue date is required"),
		pastDate("Issue date cannot be in future"),
	)),
	optionalText("expiryDate", "Expiry Date", after("issueDate", "Expiry date must be after issue date")),
	text("issuingAuthority", "Issuing Authority", required("Issuing authority is required")),
	text("purpose", "Purpose of Verification", required("Purpose is required"), Purposes...),
	flag("declaration", "I declare that the documents are genuine", accepted("Declaration must be accepted")),
).withAttachments()
