package dto

import (
	"time"

	"github.com/omarionadde/DHOOL/internal/core/domain"
)

// CreatePatientRequest defines the data needed to register a patient.
type CreatePatientRequest struct {
	Name      string    `json:"name" binding:"required"`
	Age       int       `json:"age" binding:"gte=0"`
	Phone     string    `json:"phone"`
	LastVisit time.Time `json:"lastVisit"`
	Condition string    `json:"condition"`
}

// PatientResponse mirrors domain.Patient.
type PatientResponse struct {
	PatientID string    `json:"patientID"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Phone     string    `json:"phone"`
	LastVisit time.Time `json:"lastVisit"`
	Condition string    `json:"condition"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToPatientResponse converts a domain.Patient to a PatientResponse DTO.
func ToPatientResponse(p *domain.Patient) PatientResponse {
	return PatientResponse{
		PatientID: p.PatientID,
		Name:      p.Name,
		Age:       p.Age,
		Phone:     p.Phone,
		LastVisit: p.LastVisit,
		Condition: p.Condition,
		CreatedAt: p.CreatedAt,
	}
}

// ToPatientResponses converts a slice of patients.
func ToPatientResponses(patients []domain.Patient) []PatientResponse {
	res := make([]PatientResponse, len(patients))
	for i := range patients {
		res[i] = ToPatientResponse(&patients[i])
	}
	return res
}
