package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/omarionadde/DHOOL/internal/core/domain"
	portsrepo "github.com/omarionadde/DHOOL/internal/core/ports/repositories"
)

type PgxClinicalRepository struct {
	BaseRepository
}

func newPgxClinicalRepository(pool *pgxpool.Pool) portsrepo.ClinicalRepository {
	return &PgxClinicalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClinicalRepository = (*PgxClinicalRepository)(nil)

func (r *PgxClinicalRepository) SaveHistory(ctx context.Context, history domain.PatientHistory) error {
	query := `
		INSERT INTO patient_history (history_id, patient_id, date, diagnosis, treatment, notes, doctor_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		history.HistoryID,
		history.PatientID,
		history.Date,
		history.Diagnosis,
		history.Treatment,
		history.Notes,
		history.DoctorName,
	)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

func (r *PgxClinicalRepository) ListHistoryByPatient(ctx context.Context, patientID string) ([]domain.PatientHistory, error) {
	query := `
		SELECT history_id, patient_id, date, diagnosis, treatment, notes, doctor_name
		FROM patient_history
		WHERE patient_id = $1
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history for patient %s: %w", patientID, err)
	}
	defer rows.Close()

	var entries []domain.PatientHistory
	for rows.Next() {
		var h domain.PatientHistory
		if err := rows.Scan(&h.HistoryID, &h.PatientID, &h.Date, &h.Diagnosis, &h.Treatment, &h.Notes, &h.DoctorName); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}
	return entries, nil
}

// SavePrescription stores the medicine lines as a JSONB document; they are
// only ever read back as a unit.
func (r *PgxClinicalRepository) SavePrescription(ctx context.Context, prescription domain.Prescription) error {
	medicines, err := json.Marshal(prescription.Medicines)
	if err != nil {
		return fmt.Errorf("failed to marshal medicines: %w", err)
	}

	query := `
		INSERT INTO prescriptions (prescription_id, patient_id, doctor_name, date, medicines)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err = r.Pool.Exec(ctx, query,
		prescription.PrescriptionID,
		prescription.PatientID,
		prescription.DoctorName,
		prescription.Date,
		medicines,
	)
	if err != nil {
		return fmt.Errorf("failed to save prescription: %w", err)
	}
	return nil
}

func (r *PgxClinicalRepository) ListPrescriptionsByPatient(ctx context.Context, patientID string) ([]domain.Prescription, error) {
	query := `
		SELECT prescription_id, patient_id, doctor_name, date, medicines
		FROM prescriptions
		WHERE patient_id = $1
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list prescriptions for patient %s: %w", patientID, err)
	}
	defer rows.Close()

	var prescriptions []domain.Prescription
	for rows.Next() {
		var p domain.Prescription
		var medicines []byte
		if err := rows.Scan(&p.PrescriptionID, &p.PatientID, &p.DoctorName, &p.Date, &medicines); err != nil {
			return nil, fmt.Errorf("failed to scan prescription row: %w", err)
		}
		if err := json.Unmarshal(medicines, &p.Medicines); err != nil {
			return nil, fmt.Errorf("failed to unmarshal medicines for prescription %s: %w", p.PrescriptionID, err)
		}
		prescriptions = append(prescriptions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prescription rows: %w", err)
	}
	return prescriptions, nil
}
