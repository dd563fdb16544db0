package patient

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// ValidBloodTypes is the fixed set of ABO/Rh combinations.
var ValidBloodTypes = map[string]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"AB+": true, "AB-": true, "O+": true, "O-": true,
}

type Patient struct {
	ID                           int64     `json:"id"`
	FirstName                    string    `json:"first_name"`
	LastName                     string    `json:"last_name"`
	DateOfBirth                  string    `json:"date_of_birth"`
	Gender                       Gender    `json:"gender"`
	Phone                        string    `json:"phone"`
	Email                        string    `json:"email"`
	Address                      string    `json:"address"`
	EmergencyContactName         string    `json:"emergency_contact_name"`
	EmergencyContactPhone        string    `json:"emergency_contact_phone"`
	EmergencyContactRelationship string    `json:"emergency_contact_relationship"`
	BloodType                    *string   `json:"blood_type,omitempty"`
	Allergies                    []string  `json:"allergies"`
	Medications                  []string  `json:"medications"`
	RegistrationDate             string    `json:"registration_date"`
	CreatedAt                    time.Time `json:"created_at"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

// FullName is the display label used by search and cross-references.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
