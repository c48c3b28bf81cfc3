package forms

// Choice lists offered by select fields.
var (
	States = []string{
		"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh", "Goa", "Gujarat",
		"Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka", "Kerala", "Madhya Pradesh",
		"Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
		"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh",
		"Uttarakhand", "West Bengal", "Delhi", "Jammu and Kashmir", "Ladakh",
	}
	Genders       = []string{"male", "female", "other"}
	Titles        = []string{"Mr.", "Ms.", "Mrs.", "Dr.", "Prof."}
	IncomeSources = []string{"Salary", "Business", "Professional", "Capital Gains", "Other Sources"}
	AddressTypes  = []string{"Residential", "Commercial", "Office", "Temporary"}
	Durations     = []string{"Less than 1 year", "1-3 years", "3-5 years", "More than 5 years"}

	BusinessTypes      = []string{"Sole Proprietorship", "Partnership", "Private Limited", "Public Limited", "LLP"}
	RegistrationTypes  = []string{"New Registration", "Existing Business", "Branch Office", "Subsidiary"}
	BusinessCategories = []string{
		"Manufacturing", "Trading", "Service Provider", "Retail", "Wholesale",
		"IT/Software", "Healthcare", "Education", "Real Estate", "Others",
	}
	TurnoverRanges = []string{
		"Below 20 Lakhs", "20 Lakhs - 75 Lakhs", "75 Lakhs - 5 Crores", "5 Crores - 50 Crores", "Above 50 Crores",
	}
	EmployeeCounts = []string{"1-10", "11-50", "51-200", "201-500", "500+"}

	DocumentTypes = []string{
		"Aadhaar Card", "PAN Card", "Passport", "Driving License", "Voter ID", "Birth Certificate",
		"Income Certificate", "Caste Certificate", "Domicile Certificate", "Character Certificate",
	}
	Purposes = []string{
		"Government Job Application", "Bank Account Opening", "Loan Application", "Educational Admission",
		"Visa Application", "Property Registration", "Insurance Claim", "Legal Proceedings", "Other",
	}
)
