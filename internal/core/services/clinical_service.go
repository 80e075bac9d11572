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

type clinicalService struct {
	BaseService
	clinicalRepo portsrepo.ClinicalRepository
	patientRepo  portsrepo.PatientRepository
}

// NewClinicalService creates the visit history and prescription service.
func NewClinicalService(clinicalRepo portsrepo.ClinicalRepository, patientRepo portsrepo.PatientRepository) portssvc.ClinicalSvcFacade {
	return &clinicalService{clinicalRepo: clinicalRepo, patientRepo: patientRepo}
}

var _ portssvc.ClinicalSvcFacade = (*clinicalService)(nil)

func (s *clinicalService) AddHistory(ctx context.Context, patientID string, req dto.CreateHistoryRequest) (*domain.PatientHistory, error) {
	if _, err := s.patientRepo.FindPatientByID(ctx, patientID); err != nil {
		return nil, fmt.Errorf("failed to find patient %s: %w", patientID, err)
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	history := domain.PatientHistory{
		HistoryID:  uuid.NewString(),
		PatientID:  patientID,
		Date:       date,
		Diagnosis:  req.Diagnosis,
		Treatment:  req.Treatment,
		Notes:      req.Notes,
		DoctorName: req.DoctorName,
	}

	if err := s.clinicalRepo.SaveHistory(ctx, history); err != nil {
		s.LogError(ctx, err, "Failed to save history entry", slog.String("patient_id", patientID))
		return nil, fmt.Errorf("failed to add history entry: %w", err)
	}

	s.LogInfo(ctx, "History entry added", slog.String("patient_id", patientID), slog.String("history_id", history.HistoryID))
	return &history, nil
}

func (s *clinicalService) ListHistory(ctx context.Context, patientID string) ([]domain.PatientHistory, error) {
	entries, err := s.clinicalRepo.ListHistoryByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history for patient %s: %w", patientID, err)
	}
	return entries, nil
}

func (s *clinicalService) AddPrescription(ctx context.Context, patientID string, req dto.CreatePrescriptionRequest) (*domain.Prescription, error) {
	if _, err := s.patientRepo.FindPatientByID(ctx, patientID); err != nil {
		return nil, fmt.Errorf("failed to find patient %s: %w", patientID, err)
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	prescription := domain.Prescription{
		PrescriptionID: uuid.NewString(),
		PatientID:      patientID,
		DoctorName:     req.DoctorName,
		Date:           date,
		Medicines:      dto.ToDomainMedicines(req.Medicines),
	}

	if err := s.clinicalRepo.SavePrescription(ctx, prescription); err != nil {
		s.LogError(ctx, err, "Failed to save prescription", slog.String("patient_id", patientID))
		return nil, fmt.Errorf("failed to add prescription: %w", err)
	}

	s.LogInfo(ctx, "Prescription added", slog.String("patient_id", patientID), slog.String("prescription_id", prescription.PrescriptionID))
	return &prescription, nil
}

func (s *clinicalService) ListPrescriptions(ctx context.Context, patientID string) ([]domain.Prescription, error) {
	prescriptions, err := s.clinicalRepo.ListPrescriptionsByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions for patient %s: %w", patientID, err)
	}
	return prescriptions, nil
}
