package billing

import (
	"time"

	"github.com/hms/hms/pkg/numeric"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// CanTransition reports whether s may move to next. Only pending bills move;
// paid and overdue are terminal.
func (s Status) CanTransition(next Status) bool {
	return s == StatusPending && (next == StatusPaid || next == StatusOverdue)
}

type Bill struct {
	ID          int64         `json:"id"`
	PatientID   numeric.ID    `json:"patient_id"`
	Services    string        `json:"services"`
	TotalAmount numeric.Float `json:"total_amount"`
	Status      Status        `json:"status"`
	Date        string        `json:"date"`
	// PaidAt is stamped with the calendar date when the bill moves to paid.
	PaidAt    *string   `json:"paid_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// View is a bill with the resolved patient name for the billing screen.
type View struct {
	Bill
	PatientName string `json:"patient_name"`
}
