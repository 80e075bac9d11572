package dto

import (
	"time"

	"github.com/omarionadde/DHOOL/internal/core/domain"
)

// CreateHistoryRequest adds a visit entry to a patient's record.
type CreateHistoryRequest struct {
	Date       time.Time `json:"date"`
	Diagnosis  string    `json:"diagnosis" binding:"required"`
	Treatment  string    `json:"treatment"`
	Notes      string    `json:"notes"`
	DoctorName string    `json:"doctorName" binding:"required"`
}

// MedicineRequest is one line of a prescription.
type MedicineRequest struct {
	Name      string `json:"name" binding:"required"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

// CreatePrescriptionRequest issues a prescription to a patient.
type CreatePrescriptionRequest struct {
	DoctorName string            `json:"doctorName" binding:"required"`
	Date       time.Time         `json:"date"`
	Medicines  []MedicineRequest `json:"medicines" binding:"required,min=1,dive"`
}

// ToDomainMedicines converts prescription lines into domain values.
func ToDomainMedicines(meds []MedicineRequest) []domain.Medicine {
	out := make([]domain.Medicine, len(meds))
	for i, m := range meds {
		out[i] = domain.Medicine{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
			Duration:  m.Duration,
		}
	}
	return out
}
