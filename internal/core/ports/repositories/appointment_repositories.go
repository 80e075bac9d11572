package repositories

import (
	"context"
	"time"

	"github.com/omarionadde/DHOOL/internal/core/domain"
)

// AppointmentRepository persists scheduled visits.
type AppointmentRepository interface {
	SaveAppointment(ctx context.Context, appointment domain.Appointment) error
	ListAppointments(ctx context.Context, limit, offset int) ([]domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) error
	DeleteAppointment(ctx context.Context, appointmentID string) error
	CountAppointmentsOn(ctx context.Context, day time.Time) (int, error)
}
