package documents

// DefaultCategories is the category set a fresh installation starts with.
var DefaultCategories = []Category{
	{Name: "Identity", Description: "Government identity documents"},
	{Name: "Education", Description: "Degrees, certificates and transcripts"},
	{Name: "Employment", Description: "Offer letters, contracts and HR letters"},
	{Name: "Financial", Description: "Bank statements and salary slips"},
	{Name: "Other", Description: "Anything that fits no other category"},
}
