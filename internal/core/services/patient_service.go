package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/omarionadde/DHOOL/internal/core/domain"
	portsrepo "github.com/omarionadde/DHOOL/internal/core/ports/repositories"
	portssvc "github.com/omarionadde/DHOOL/internal/core/ports/services"
	"github.com/omarionadde/DHOOL/internal/dto"
)

type patientService struct {
	BaseService
	patientRepo portsrepo.PatientRepository
}

// NewPatientService creates the patient records service.
func NewPatientService(patientRepo portsrepo.PatientRepository) portssvc.PatientSvcFacade {
	return &patientService{patientRepo: patientRepo}
}

var _ portssvc.PatientSvcFacade = (*patientService)(nil)

func (s *patientService) CreatePatient(ctx context.Context, req dto.CreatePatientRequest) (*domain.Patient, error) {
	patient := domain.Patient{
		PatientID: uuid.NewString(),
		Name:      req.Name,
		Age:       req.Age,
		Phone:     req.Phone,
		LastVisit: req.LastVisit,
		Condition: req.Condition,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.patientRepo.SavePatient(ctx, patient); err != nil {
		s.LogError(ctx, err, "Failed to save patient", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	s.LogInfo(ctx, "Patient created", slog.String("patient_id", patient.PatientID))
	return &patient, nil
}

func (s *patientService) GetPatientByID(ctx context.Context, patientID string) (*domain.Patient, error) {
	patient, err := s.patientRepo.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient %s: %w", patientID, err)
	}
	return patient, nil
}

func (s *patientService) ListPatients(ctx context.Context, limit, offset int) ([]domain.Patient, error) {
	patients, err := s.patientRepo.ListPatients(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

// DeletePatient removes the patient row only. Ledger, history and
// prescription rows referencing the patient stay behind for bookkeeping.
func (s *patientService) DeletePatient(ctx context.Context, patientID string) error {
	if err := s.patientRepo.DeletePatient(ctx, patientID); err != nil {
		s.LogError(ctx, err, "Failed to delete patient", slog.String("patient_id", patientID))
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	s.LogInfo(ctx, "Patient deleted", slog.String("patient_id", patientID))
	return nil
}
