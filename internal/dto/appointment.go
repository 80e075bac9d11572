package dto

import (
	"time"

	"github.com/omarionadde/DHOOL/internal/core/domain"
)

// CreateAppointmentRequest books a patient visit.
type CreateAppointmentRequest struct {
	PatientName string    `json:"patientName" binding:"required"`
	DoctorName  string    `json:"doctorName" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Time        string    `json:"time" binding:"required"`
	Type        string    `json:"type"`
}

// UpdateAppointmentStatusRequest moves an appointment through its lifecycle.
type UpdateAppointmentStatusRequest struct {
	Status domain.AppointmentStatus `json:"status" binding:"required,oneof=Confirmed Pending Cancelled"`
}
