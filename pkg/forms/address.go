package forms

// Address is the address verification form. City, district and state are
// auto-filled from the PIN code when it is known.
var Address = newForm("address", "Address Verification", nil,
	text("houseNumber", "House/Flat Number", required("House number is required")),
	text("streetName", "Street Name", chain(
		required("Street name is required"),
		minLen(3, "Street name must be at least 3 characters"),
	)),
	Field{Name: "landmark", Label: "Landmark", Kind: KindText, Optional: true},
	text("area", "Area/Locality", required("Area is required")),
	text(FieldPincode, "PIN Code", pincode()),
	text(FieldCity, "City", chain(required("City is required"), lettersAndSpaces())),
	text(FieldDistrict, "District", chain(required("District is required"), lettersAndSpaces())),
	text(FieldState, "State", required("State is required"), States...),
	text("addressType", "Address Type", required("Address type is required"), AddressTypes...),
	text("duration", "Duration of Stay", required("Duration is required"), Durations...),
).withPincodeLookup()
