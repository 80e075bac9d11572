package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omarionadde/DHOOL/internal/apperrors"
	"github.com/omarionadde/DHOOL/internal/core/domain"
	portsrepo "github.com/omarionadde/DHOOL/internal/core/ports/repositories"
)

type PgxAppointmentRepository struct {
	BaseRepository
}

func newPgxAppointmentRepository(pool *pgxpool.Pool) portsrepo.AppointmentRepository {
	return &PgxAppointmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AppointmentRepository = (*PgxAppointmentRepository)(nil)

func (r *PgxAppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) error {
	query := `
		INSERT INTO appointments (appointment_id, patient_name, doctor_name, date, time, status, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		appointment.AppointmentID,
		appointment.PatientName,
		appointment.DoctorName,
		appointment.Date,
		appointment.Time,
		appointment.Status,
		appointment.Type,
		appointment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save appointment: %w", err)
	}
	return nil
}

func (r *PgxAppointmentRepository) ListAppointments(ctx context.Context, limit, offset int) ([]domain.Appointment, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT appointment_id, patient_name, doctor_name, date, time, status, type, created_at
		FROM appointments
		ORDER BY date ASC, time ASC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(&a.AppointmentID, &a.PatientName, &a.DoctorName, &a.Date, &a.Time, &a.Status, &a.Type, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}
	return appointments, nil
}

func (r *PgxAppointmentRepository) UpdateAppointmentStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) error {
	query := `UPDATE appointments SET status = $2 WHERE appointment_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, appointmentID, status)
	if err != nil {
		return fmt.Errorf("failed to update appointment %s: %w", appointmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAppointmentRepository) DeleteAppointment(ctx context.Context, appointmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM appointments WHERE appointment_id = $1;`, appointmentID)
	if err != nil {
		return fmt.Errorf("failed to delete appointment %s: %w", appointmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountAppointmentsOn counts appointments whose date falls on the given
// calendar day (UTC).
func (r *PgxAppointmentRepository) CountAppointmentsOn(ctx context.Context, day time.Time) (int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var count int
	query := `SELECT COUNT(*) FROM appointments WHERE date >= $1 AND date < $2;`
	if err := r.Pool.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}
