package record

import (
	"time"

	"github.com/hms/hms/pkg/numeric"
)

// Record is a medical record entry tying a visit's findings to a patient and
// the treating doctor.
type Record struct {
	ID           int64      `json:"id"`
	PatientID    numeric.ID `json:"patient_id"`
	DoctorID     numeric.ID `json:"doctor_id"`
	Date         string     `json:"date"`
	Diagnosis    string     `json:"diagnosis"`
	Treatment    string     `json:"treatment"`
	Prescription []string   `json:"prescription"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// View is a record with resolved display names for the records screen.
type View struct {
	Record
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
}
