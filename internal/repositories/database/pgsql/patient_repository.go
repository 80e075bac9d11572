package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omarionadde/DHOOL/internal/apperrors"
	"github.com/omarionadde/DHOOL/internal/core/domain"
	portsrepo "github.com/omarionadde/DHOOL/internal/core/ports/repositories"
)

type PgxPatientRepository struct {
	BaseRepository
}

func newPgxPatientRepository(pool *pgxpool.Pool) portsrepo.PatientRepository {
	return &PgxPatientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PatientRepository = (*PgxPatientRepository)(nil)

func (r *PgxPatientRepository) SavePatient(ctx context.Context, patient domain.Patient) error {
	query := `
		INSERT INTO patients (patient_id, name, age, phone, last_visit, condition, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		patient.PatientID,
		patient.Name,
		patient.Age,
		patient.Phone,
		patient.LastVisit,
		patient.Condition,
		patient.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save patient: %w", err)
	}
	return nil
}

func (r *PgxPatientRepository) FindPatientByID(ctx context.Context, patientID string) (*domain.Patient, error) {
	query := `
		SELECT patient_id, name, age, phone, last_visit, condition, created_at
		FROM patients
		WHERE patient_id = $1;
	`
	var p domain.Patient
	err := r.Pool.QueryRow(ctx, query, patientID).Scan(
		&p.PatientID,
		&p.Name,
		&p.Age,
		&p.Phone,
		&p.LastVisit,
		&p.Condition,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find patient by ID %s: %w", patientID, err)
	}
	return &p, nil
}

func (r *PgxPatientRepository) ListPatients(ctx context.Context, limit, offset int) ([]domain.Patient, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT patient_id, name, age, phone, last_visit, condition, created_at
		FROM patients
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	var patients []domain.Patient
	for rows.Next() {
		var p domain.Patient
		if err := rows.Scan(&p.PatientID, &p.Name, &p.Age, &p.Phone, &p.LastVisit, &p.Condition, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan patient row: %w", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patient rows: %w", err)
	}
	return patients, nil
}

// DeletePatient removes the patient row only; transactions, history and
// prescriptions keyed by the patient id are intentionally left in place.
func (r *PgxPatientRepository) DeletePatient(ctx context.Context, patientID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM patients WHERE patient_id = $1;`, patientID)
	if err != nil {
		return fmt.Errorf("failed to delete patient %s: %w", patientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPatientRepository) CountPatients(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return count, nil
}
