// Package reporting derives the dashboard statistics and the period report
// sections from full entity collections. Every derivation is a pure function
// of the collections and the current time; nothing here is cached or
// incrementally maintained — each request reloads and recomputes.
package reporting

import (
	"fmt"
	"math"
	"time"

	"github.com/hms/hms/internal/domain/appointment"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/inventory"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/lookup"
	"github.com/hms/hms/pkg/dates"
)

type Timeframe string

const (
	TimeframeWeek    Timeframe = "week"
	TimeframeMonth   Timeframe = "month"
	TimeframeQuarter Timeframe = "quarter"
	TimeframeYear    Timeframe = "year"
)

// periodStart maps a timeframe to the start of its reporting window. An
// unrecognized timeframe falls back to a month, matching the screen's
// default selection.
func periodStart(tf Timeframe, now time.Time) time.Time {
	switch tf {
	case TimeframeWeek:
		return now.AddDate(0, 0, -7)
	case TimeframeQuarter:
		return now.AddDate(0, -3, 0)
	case TimeframeYear:
		return now.AddDate(0, -12, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

type DashboardStats struct {
	TotalPatients      int `json:"total_patients"`
	TodaysAppointments int `json:"todays_appointments"`
	TotalDoctors       int `json:"total_doctors"`
	PendingBills       int `json:"pending_bills"`
	LowStockMedicines  int `json:"low_stock_medicines"`
}

// Activity is a synthesized recent-activity feed entry. The time label is a
// fixed placeholder per category, not derived from record timestamps.
type Activity struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

type Dashboard struct {
	Stats          DashboardStats `json:"stats"`
	RecentActivity []Activity     `json:"recent_activity"`
}

const maxActivities = 8

// BuildDashboard computes the point-in-time dashboard from full collections.
func BuildDashboard(c *Collections, now time.Time) *Dashboard {
	today := dates.Format(now)

	stats := DashboardStats{
		TotalPatients: len(c.Patients),
		TotalDoctors:  len(c.Doctors),
	}
	for _, a := range c.Appointments {
		if a.Date == today {
			stats.TodaysAppointments++
		}
	}
	for _, b := range c.Bills {
		if b.Status == billing.StatusPending {
			stats.PendingBills++
		}
	}
	for _, m := range c.Medicines {
		if m.LowOrOut() {
			stats.LowStockMedicines++
		}
	}

	return &Dashboard{Stats: stats, RecentActivity: buildActivity(c)}
}

// buildActivity assembles the feed in a fixed category order: the last three
// patients as registrations, the last two scheduled appointments as bookings
// with resolved patient names, the last two low-stock medicines as stock
// alerts, capped at eight entries. A failed name resolution degrades to the
// sentinel label rather than dropping the entry.
func buildActivity(c *Collections) []Activity {
	activities := make([]Activity, 0, maxActivities)

	for _, p := range lastN(c.Patients, 3) {
		activities = append(activities, Activity{
			ID:      fmt.Sprintf("patient-%d", p.ID),
			Type:    "patient",
			Message: fmt.Sprintf("New patient registered: %s", p.FullName()),
			Time:    "2 hours ago",
		})
	}

	ix := lookup.NewIndex(c.Patients, c.Doctors)
	var scheduled []*appointment.Appointment
	for _, a := range c.Appointments {
		if a.Status == appointment.StatusScheduled {
			scheduled = append(scheduled, a)
		}
	}
	for _, a := range lastN(scheduled, 2) {
		activities = append(activities, Activity{
			ID:      fmt.Sprintf("appointment-%d", a.ID),
			Type:    "appointment",
			Message: fmt.Sprintf("Appointment scheduled for %s", ix.PatientName(a.PatientID)),
			Time:    "3 hours ago",
		})
	}

	var lowStock []*inventory.Medicine
	for _, m := range c.Medicines {
		if m.LowOrOut() {
			lowStock = append(lowStock, m)
		}
	}
	for _, m := range lastN(lowStock, 2) {
		activities = append(activities, Activity{
			ID:      fmt.Sprintf("stock-%d", m.ID),
			Type:    "inventory",
			Message: fmt.Sprintf("Low stock alert: %s (%d remaining)", m.Name, int(m.Stock)),
			Time:    "5 hours ago",
		})
	}

	if len(activities) > maxActivities {
		activities = activities[:maxActivities]
	}
	return activities
}

func lastN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

type PatientReport struct {
	Total       int            `json:"total"`
	NewPatients int            `json:"new_patients"`
	ByGender    map[string]int `json:"by_gender"`
	ByAgeGroup  map[string]int `json:"by_age_group"`
}

type AppointmentReport struct {
	Total          int            `json:"total"`
	Period         int            `json:"period"`
	ByStatus       map[string]int `json:"by_status"`
	CompletionRate int            `json:"completion_rate"`
}

type FinancialReport struct {
	TotalRevenue   float64 `json:"total_revenue"`
	PeriodRevenue  float64 `json:"period_revenue"`
	PendingAmount  float64 `json:"pending_amount"`
	TotalBills     int     `json:"total_bills"`
	PaidBills      int     `json:"paid_bills"`
	PendingBills   int     `json:"pending_bills"`
	CollectionRate int     `json:"collection_rate"`
}

type InventoryReport struct {
	TotalItems        int     `json:"total_items"`
	TotalValue        float64 `json:"total_value"`
	LowStockCount     int     `json:"low_stock_count"`
	OutOfStockCount   int     `json:"out_of_stock_count"`
	ExpiringSoonCount int     `json:"expiring_soon_count"`
	Categories        int     `json:"categories"`
}

type Report struct {
	Timeframe    Timeframe         `json:"timeframe"`
	Patients     PatientReport     `json:"patients"`
	Appointments AppointmentReport `json:"appointments"`
	Financial    FinancialReport   `json:"financial"`
	Inventory    InventoryReport   `json:"inventory"`
}

// BuildReport computes every report section for the timeframe. Period-bounded
// subsets cover [periodStart, now]; records with missing or unparseable dates
// are excluded from those subsets but still count toward the totals.
func BuildReport(c *Collections, tf Timeframe, now time.Time) *Report {
	start := periodStart(tf, now)
	return &Report{
		Timeframe:    tf,
		Patients:     buildPatientReport(c.Patients, start, now),
		Appointments: buildAppointmentReport(c.Appointments, start, now),
		Financial:    buildFinancialReport(c.Bills, start, now),
		Inventory:    buildInventoryReport(c.Medicines, now),
	}
}

func buildPatientReport(patients []*patient.Patient, start, now time.Time) PatientReport {
	r := PatientReport{
		Total:      len(patients),
		ByGender:   map[string]int{"male": 0, "female": 0, "other": 0},
		ByAgeGroup: map[string]int{"0-18": 0, "19-35": 0, "36-60": 0, "60+": 0},
	}
	for _, p := range patients {
		if dates.InRange(p.RegistrationDate, start, now) {
			r.NewPatients++
		}
		if _, ok := r.ByGender[string(p.Gender)]; ok {
			r.ByGender[string(p.Gender)]++
		}
		dob, ok := dates.Parse(p.DateOfBirth)
		if !ok {
			continue
		}
		// Calendar-year subtraction, not day-precision age.
		age := now.Year() - dob.Year()
		switch {
		case age <= 18:
			r.ByAgeGroup["0-18"]++
		case age <= 35:
			r.ByAgeGroup["19-35"]++
		case age <= 60:
			r.ByAgeGroup["36-60"]++
		default:
			r.ByAgeGroup["60+"]++
		}
	}
	return r
}

func buildAppointmentReport(appts []*appointment.Appointment, start, now time.Time) AppointmentReport {
	r := AppointmentReport{
		Total: len(appts),
		ByStatus: map[string]int{
			"scheduled": 0, "confirmed": 0, "completed": 0, "cancelled": 0,
		},
	}
	completed := 0
	for _, a := range appts {
		if dates.InRange(a.Date, start, now) {
			r.Period++
		}
		if _, ok := r.ByStatus[string(a.Status)]; ok {
			r.ByStatus[string(a.Status)]++
		}
		if a.Status == appointment.StatusCompleted {
			completed++
		}
	}
	r.CompletionRate = rate(completed, len(appts))
	return r
}

func buildFinancialReport(bills []*billing.Bill, start, now time.Time) FinancialReport {
	var r FinancialReport
	r.TotalBills = len(bills)
	for _, b := range bills {
		switch b.Status {
		case billing.StatusPaid:
			r.PaidBills++
			r.TotalRevenue += float64(b.TotalAmount)
			if dates.InRange(b.Date, start, now) {
				r.PeriodRevenue += float64(b.TotalAmount)
			}
		case billing.StatusPending:
			r.PendingBills++
			r.PendingAmount += float64(b.TotalAmount)
		}
	}
	r.CollectionRate = rate(r.PaidBills, r.TotalBills)
	return r
}

func buildInventoryReport(medicines []*inventory.Medicine, now time.Time) InventoryReport {
	var r InventoryReport
	r.TotalItems = len(medicines)
	categories := make(map[string]struct{})
	for _, m := range medicines {
		r.TotalValue += float64(int(m.Stock)) * float64(m.Price)
		if m.LowOrOut() {
			r.LowStockCount++
		}
		if m.Stock == 0 {
			r.OutOfStockCount++
		}
		if inventory.ExpiringSoon(m.ExpiryDate, now) {
			r.ExpiringSoonCount++
		}
		categories[m.Category] = struct{}{}
	}
	r.Categories = len(categories)
	return r
}

// rate is a rounded percentage, 0 when the total is 0.
func rate(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}
