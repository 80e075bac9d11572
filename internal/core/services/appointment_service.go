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

type appointmentService struct {
	BaseService
	appointmentRepo portsrepo.AppointmentRepository
}

// NewAppointmentService creates the appointment scheduling service.
func NewAppointmentService(appointmentRepo portsrepo.AppointmentRepository) portssvc.AppointmentSvcFacade {
	return &appointmentService{appointmentRepo: appointmentRepo}
}

var _ portssvc.AppointmentSvcFacade = (*appointmentService)(nil)

func (s *appointmentService) CreateAppointment(ctx context.Context, req dto.CreateAppointmentRequest) (*domain.Appointment, error) {
	appointment := domain.Appointment{
		AppointmentID: uuid.NewString(),
		PatientName:   req.PatientName,
		DoctorName:    req.DoctorName,
		Date:          req.Date,
		Time:          req.Time,
		Status:        domain.AppointmentPending,
		Type:          req.Type,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.appointmentRepo.SaveAppointment(ctx, appointment); err != nil {
		s.LogError(ctx, err, "Failed to save appointment", slog.String("patient_name", req.PatientName))
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.LogInfo(ctx, "Appointment created", slog.String("appointment_id", appointment.AppointmentID))
	return &appointment, nil
}

func (s *appointmentService) ListAppointments(ctx context.Context, limit, offset int) ([]domain.Appointment, error) {
	appointments, err := s.appointmentRepo.ListAppointments(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (s *appointmentService) UpdateAppointmentStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) error {
	if err := s.appointmentRepo.UpdateAppointmentStatus(ctx, appointmentID, status); err != nil {
		s.LogError(ctx, err, "Failed to update appointment status", slog.String("appointment_id", appointmentID))
		return fmt.Errorf("failed to update appointment status: %w", err)
	}
	s.LogInfo(ctx, "Appointment status updated",
		slog.String("appointment_id", appointmentID), slog.String("status", string(status)))
	return nil
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, appointmentID string) error {
	if err := s.appointmentRepo.DeleteAppointment(ctx, appointmentID); err != nil {
		s.LogError(ctx, err, "Failed to delete appointment", slog.String("appointment_id", appointmentID))
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	s.LogInfo(ctx, "Appointment deleted", slog.String("appointment_id", appointmentID))
	return nil
}
