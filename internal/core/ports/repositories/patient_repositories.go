package repositories

import (
	"context"

	"github.com/omarionadde/DHOOL/internal/core/domain"
)

// PatientRepository persists patient demographic records.
type PatientRepository interface {
	SavePatient(ctx context.Context, patient domain.Patient) error
	FindPatientByID(ctx context.Context, patientID string) (*domain.Patient, error)
	ListPatients(ctx context.Context, limit, offset int) ([]domain.Patient, error)
	// DeletePatient removes only the patient row. Related transactions,
	// history and prescriptions are kept (orphan-tolerant policy).
	DeletePatient(ctx context.Context, patientID string) error
	CountPatients(ctx context.Context) (int, error)
}

// ClinicalRepository persists visit history and prescriptions.
type ClinicalRepository interface {
	SaveHistory(ctx context.Context, history domain.PatientHistory) error
	ListHistoryByPatient(ctx context.Context, patientID string) ([]domain.PatientHistory, error)
	SavePrescription(ctx context.Context, prescription domain.Prescription) error
	ListPrescriptionsByPatient(ctx context.Context, patientID string) ([]domain.Prescription, error)
}
