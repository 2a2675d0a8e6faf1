// ABOUTME: Local clinic directory for gastroparesis and motility care.
// ABOUTME: Static reference data for the Hamilton Health Sciences network.
package content

// ClinicService is one specialized service offered by the clinic network.
type ClinicService struct {
	Name        string
	Description string
}

// ClinicContact is one facility in the contact directory.
type ClinicContact struct {
	Facility string
	Location string
	Phone    string
}

// Clinic describes a regional care network for motility disorders.
type Clinic struct {
	Name      string
	Specialty string
	Campus    string
	Referral  string
	WaitTimes string
	Services  []ClinicService
	Contacts  []ClinicContact
}

// HamiltonClinic is the Hamilton Health Sciences motility network.
var HamiltonClinic = Clinic{
	Name:      "Hamilton Health Sciences",
	Specialty: "Gastroparesis & Motility Services",
	Campus:    "Primarily located at McMaster University Medical Centre",
	Referral:  "You cannot book directly. Your family doctor must fax a Gastroenterology Referral Request to the central intake.",
	WaitTimes: "Routine appointments: 6 to 12 months. Referrals are triaged by urgency (e.g., severe weight loss).",
	Services: []ClinicService{
		{
			Name:        "Motility Clinic",
			Description: "Specialty clinic for conditions where digestive movement is impaired.",
		},
		{
			Name:        "GI Motility Lab",
			Description: "Performs diagnostic tests like esophageal manometry. Located at Room 4X24.",
		},
		{
			Name:        "Boris Clinic",
			Description: "Outpatient gastroenterology consultations for functional GI diseases.",
		},
	},
	Contacts: []ClinicContact{
		{Facility: "Digestive Diseases Clinic", Location: "Level 2, Section F", Phone: "905-521-2100 x76903"},
		{Facility: "GI Motility Lab", Location: "Level 4, Section 4X (Room 4X24)", Phone: "905-521-2100 x73265"},
		{Facility: "The Boris Clinic", Location: "Level 4, Yellow Section", Phone: "905-521-2100 x75353"},
	},
}
