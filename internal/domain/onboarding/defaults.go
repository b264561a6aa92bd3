package onboarding

// DefaultSteps is the standard checklist every new installation starts with.
var DefaultSteps = []Step{
	{Name: "Personal Information", Description: "Complete your personal and contact details", Order: 1},
	{Name: "Identity Documents", Description: "Upload Aadhaar, PAN and address proof", Order: 2},
	{Name: "Bank Details", Description: "Provide salary account and IFSC details", Order: 3},
	{Name: "Policy Acknowledgement", Description: "Read and acknowledge company policies", Order: 4},
	{Name: "IT Setup", Description: "Collect equipment and set up accounts", Order: 5},
	{Name: "Team Introduction", Description: "Meet your team and manager", Order: 6},
}
