package doctor

import (
	"encoding/json"
	"time"

	"github.com/hms/hms/pkg/numeric"
)

// Doctor is a roster entry. Availability is an opaque schedule document
// edited by the roster screen; nothing in this service interprets it.
type Doctor struct {
	ID              int64           `json:"id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Specialization  string          `json:"specialization"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	Availability    json.RawMessage `json:"availability,omitempty"`
	ConsultationFee numeric.Float   `json:"consultation_fee"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// FullName is the display label used by search and cross-references.
func (d *Doctor) FullName() string {
	return "Dr. " + d.FirstName + " " + d.LastName
}
