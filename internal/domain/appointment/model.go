package appointment

import (
	"time"

	"github.com/hms/hms/pkg/numeric"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether s may move to next. Completed and cancelled
// are terminal.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusScheduled:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted
	}
	return false
}

// TimeSlots is the bookable half-hour grid: mornings through 12:30, then
// afternoons from 14:00. The 13:00 and 13:30 slots are the lunch gap.
var TimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

func ValidTimeSlot(t string) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}

type Appointment struct {
	ID        int64      `json:"id"`
	PatientID numeric.ID `json:"patient_id"`
	DoctorID  numeric.ID `json:"doctor_id"`
	Date      string     `json:"date"`
	Time      string     `json:"time"`
	Status    Status     `json:"status"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// View is an appointment enriched with resolved display names for the list
// screen. Names are resolved at read time against the current collections
// and never stored.
type View struct {
	Appointment
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
}
