package lookup

import (
	"encoding/json"
	"testing"

	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/patient"
)

func testIndex() *Index {
	return NewIndex(
		[]*patient.Patient{
			{ID: 1, FirstName: "Jane", LastName: "Miller"},
			{ID: 7, FirstName: "Carlos", LastName: "Ortega"},
		},
		[]*doctor.Doctor{
			{ID: 3, FirstName: "Asha", LastName: "Rao"},
		},
	)
}

func TestResolvePatientName(t *testing.T) {
	ix := testIndex()

	if got := ix.PatientName(int64(1)); got != "Jane Miller" {
		t.Errorf("PatientName(1) = %q", got)
	}
	// Keys stored as strings must still resolve.
	if got := ix.PatientName("7"); got != "Carlos Ortega" {
		t.Errorf("PatientName(\"7\") = %q", got)
	}
	if got := ix.PatientName(float64(1)); got != "Jane Miller" {
		t.Errorf("PatientName(float64) = %q", got)
	}
}

func TestResolveDoctorName(t *testing.T) {
	ix := testIndex()

	if got := ix.DoctorName(3); got != "Dr. Asha Rao" {
		t.Errorf("DoctorName(3) = %q", got)
	}
	if got := ix.DoctorName("3"); got != "Dr. Asha Rao" {
		t.Errorf("DoctorName(\"3\") = %q", got)
	}
}

func TestResolveMissReturnsSentinel(t *testing.T) {
	ix := testIndex()

	cases := []any{int64(99), "99", "", "garbage", nil, json.Number("abc")}
	for _, key := range cases {
		if got := ix.PatientName(key); got != UnknownPatient {
			t.Errorf("PatientName(%v) = %q, want sentinel", key, got)
		}
		if got := ix.DoctorName(key); got != UnknownDoctor {
			t.Errorf("DoctorName(%v) = %q, want sentinel", key, got)
		}
	}
}

func TestCoerceKey(t *testing.T) {
	tests := []struct {
		in   any
		want int64
	}{
		{int64(5), 5},
		{5, 5},
		{float64(5), 5},
		{"5", 5},
		{" 5 ", 5},
		{"5.0", 5},
		{json.Number("5"), 5},
		{"", 0},
		{"not-a-number", 0},
		{nil, 0},
		{true, 0},
	}
	for _, tt := range tests {
		if got := CoerceKey(tt.in); got != tt.want {
			t.Errorf("CoerceKey(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
