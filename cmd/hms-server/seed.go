package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/appointment"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/inventory"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/record"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/pkg/dates"
	"github.com/hms/hms/pkg/numeric"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			return runSeed(ctx, pool, cfg)
		},
	}
}

var specializations = []string{
	"Cardiology", "Neurology", "Pediatrics", "Orthopedics",
	"Dermatology", "Oncology", "General Medicine", "Psychiatry",
}

var medicineCategories = []string{
	"Antibiotics", "Painkillers", "Antihistamines", "Diabetes", "Cardiovascular",
}

func runSeed(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config) error {
	faker := gofakeit.New(0)

	// Demo login
	users := auth.NewUserRepoPG(pool)
	authSvc := auth.NewService(users, auth.NewMemoryRevocationStore(), []byte("seed-only"), cfg.TokenTTL)
	if _, err := authSvc.Register(ctx, "admin@hospital.test", "Admin", "admin1234", "admin"); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	now := time.Now()

	// Patients
	patients := patient.NewRepoPG(pool)
	var patientIDs []int64
	for i := 0; i < 25; i++ {
		bt := faker.RandomString([]string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"})
		p := &patient.Patient{
			FirstName:                    faker.FirstName(),
			LastName:                     faker.LastName(),
			DateOfBirth:                  dates.Format(faker.DateRange(now.AddDate(-90, 0, 0), now.AddDate(-1, 0, 0))),
			Gender:                       patient.Gender(faker.RandomString([]string{"male", "female", "other"})),
			Phone:                        faker.Phone(),
			Email:                        faker.Email(),
			Address:                      faker.Address().Address,
			EmergencyContactName:         faker.Name(),
			EmergencyContactPhone:        faker.Phone(),
			EmergencyContactRelationship: faker.RandomString([]string{"spouse", "parent", "sibling", "friend"}),
			BloodType:                    &bt,
			Allergies:                    []string{faker.RandomString([]string{"penicillin", "latex", "peanuts", "none"})},
			Medications:                  []string{},
			RegistrationDate:             dates.Format(faker.DateRange(now.AddDate(-1, 0, 0), now)),
		}
		if err := patients.Create(ctx, p); err != nil {
			return fmt.Errorf("seed patient: %w", err)
		}
		patientIDs = append(patientIDs, p.ID)
	}

	// Doctors
	doctors := doctor.NewRepoPG(pool)
	var doctorIDs []int64
	for i := 0; i < 8; i++ {
		d := &doctor.Doctor{
			FirstName:       faker.FirstName(),
			LastName:        faker.LastName(),
			Specialization:  specializations[i%len(specializations)],
			Phone:           faker.Phone(),
			Email:           faker.Email(),
			ConsultationFee: numeric.Float(faker.Price(50, 300)),
		}
		if err := doctors.Create(ctx, d); err != nil {
			return fmt.Errorf("seed doctor: %w", err)
		}
		doctorIDs = append(doctorIDs, d.ID)
	}

	// Appointments, mixed history and upcoming
	appointments := appointment.NewRepoPG(pool)
	for i := 0; i < 40; i++ {
		status := appointment.StatusScheduled
		day := faker.DateRange(now, now.AddDate(0, 1, 0))
		if i%3 == 0 {
			status = appointment.StatusCompleted
			day = faker.DateRange(now.AddDate(0, -2, 0), now)
		} else if i%7 == 0 {
			status = appointment.StatusCancelled
		}
		a := &appointment.Appointment{
			PatientID: numeric.ID(patientIDs[faker.IntRange(0, len(patientIDs)-1)]),
			DoctorID:  numeric.ID(doctorIDs[faker.IntRange(0, len(doctorIDs)-1)]),
			Date:      dates.Format(day),
			Time:      appointment.TimeSlots[faker.IntRange(0, len(appointment.TimeSlots)-1)],
			Status:    status,
			Notes:     faker.Sentence(6),
		}
		if err := appointments.Create(ctx, a); err != nil {
			return fmt.Errorf("seed appointment: %w", err)
		}
	}

	// Bills
	bills := billing.NewRepoPG(pool)
	for i := 0; i < 30; i++ {
		b := &billing.Bill{
			PatientID:   numeric.ID(patientIDs[faker.IntRange(0, len(patientIDs)-1)]),
			Services:    faker.RandomString([]string{"Consultation", "Lab tests", "X-Ray", "Surgery", "Physiotherapy"}),
			TotalAmount: numeric.Float(faker.Price(20, 2000)),
			Status:      billing.StatusPending,
			Date:        dates.Format(faker.DateRange(now.AddDate(0, -3, 0), now)),
		}
		if i%2 == 0 {
			b.Status = billing.StatusPaid
			paid := b.Date
			b.PaidAt = &paid
		} else if i%5 == 0 {
			b.Status = billing.StatusOverdue
		}
		if err := bills.Create(ctx, b); err != nil {
			return fmt.Errorf("seed bill: %w", err)
		}
	}

	// Medicines
	medicines := inventory.NewRepoPG(pool)
	for i := 0; i < 18; i++ {
		m := &inventory.Medicine{
			Name:         faker.RandomString([]string{"Amoxicillin", "Ibuprofen", "Paracetamol", "Metformin", "Lisinopril", "Cetirizine", "Atorvastatin", "Omeprazole"}) + fmt.Sprintf(" %dmg", faker.RandomInt([]int{10, 20, 50, 100, 250, 500})),
			Category:     medicineCategories[i%len(medicineCategories)],
			Stock:        numeric.Int(faker.IntRange(0, 120)),
			MinThreshold: numeric.Int(faker.IntRange(5, 20)),
			Price:        numeric.Float(faker.Price(1, 80)),
			ExpiryDate:   dates.Format(faker.DateRange(now, now.AddDate(2, 0, 0))),
		}
		if err := medicines.Create(ctx, m); err != nil {
			return fmt.Errorf("seed medicine: %w", err)
		}
	}

	// Medical records
	records := record.NewRepoPG(pool)
	for i := 0; i < 20; i++ {
		rec := &record.Record{
			PatientID:    numeric.ID(patientIDs[faker.IntRange(0, len(patientIDs)-1)]),
			DoctorID:     numeric.ID(doctorIDs[faker.IntRange(0, len(doctorIDs)-1)]),
			Date:         dates.Format(faker.DateRange(now.AddDate(-1, 0, 0), now)),
			Diagnosis:    faker.RandomString([]string{"Hypertension", "Influenza", "Type 2 diabetes", "Migraine", "Bronchitis"}),
			Treatment:    faker.RandomString([]string{"Medication", "Rest and fluids", "Physiotherapy", "Dietary changes"}),
			Prescription: []string{faker.RandomString([]string{"Amoxicillin", "Ibuprofen", "Metformin", "Lisinopril"})},
			Notes:        faker.Sentence(8),
		}
		if err := records.Create(ctx, rec); err != nil {
			return fmt.Errorf("seed record: %w", err)
		}
	}

	fmt.Println("Seed data created: 25 patients, 8 doctors, 40 appointments, 30 bills, 18 medicines, 20 records.")
	fmt.Println("Demo login: admin@hospital.test / admin1234")
	return nil
}
