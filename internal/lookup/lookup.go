// Package lookup resolves foreign-key references against loaded collections,
// producing display labels. Resolution never fails: a missing or mistyped key
// yields a fixed sentinel label instead of an error, so screens can render
// stale references without special casing.
package lookup

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/pkg/numeric"
)

const (
	UnknownPatient = "Unknown Patient"
	UnknownDoctor  = "Unknown Doctor"
)

// Index is a point-in-time view over the patient and doctor collections.
// Build a fresh one after every reload; it is never updated in place.
type Index struct {
	patients map[int64]*patient.Patient
	doctors  map[int64]*doctor.Doctor
}

func NewIndex(patients []*patient.Patient, doctors []*doctor.Doctor) *Index {
	ix := &Index{
		patients: make(map[int64]*patient.Patient, len(patients)),
		doctors:  make(map[int64]*doctor.Doctor, len(doctors)),
	}
	for _, p := range patients {
		ix.patients[p.ID] = p
	}
	for _, d := range doctors {
		ix.doctors[d.ID] = d
	}
	return ix
}

// PatientName resolves a patient reference to "{first} {last}". The key may
// be numeric or a numeric string; anything else resolves to the sentinel.
func (ix *Index) PatientName(key any) string {
	if p, ok := ix.patients[CoerceKey(key)]; ok {
		return p.FullName()
	}
	return UnknownPatient
}

// DoctorName resolves a doctor reference to "Dr. {first} {last}".
func (ix *Index) DoctorName(key any) string {
	if d, ok := ix.doctors[CoerceKey(key)]; ok {
		return d.FullName()
	}
	return UnknownDoctor
}

// Patient returns the indexed patient, or nil for an unresolvable key.
func (ix *Index) Patient(key any) *patient.Patient {
	return ix.patients[CoerceKey(key)]
}

// Doctor returns the indexed doctor, or nil for an unresolvable key.
func (ix *Index) Doctor(key any) *doctor.Doctor {
	return ix.doctors[CoerceKey(key)]
}

// CoerceKey converts a foreign-key value of any historical shape to an id.
// Stores and clients have sent ids as numbers, numeric strings and
// json.Number; unparseable input coerces to 0, which matches no record.
func CoerceKey(key any) int64 {
	switch v := key.(type) {
	case int64:
		return v
	case numeric.ID:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return n
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return int64(f)
	default:
		return 0
	}
}
