package domain

import "time"

// AppointmentStatus tracks the lifecycle of a booked appointment.
type AppointmentStatus string

const (
	AppointmentConfirmed AppointmentStatus = "Confirmed"
	AppointmentPending   AppointmentStatus = "Pending"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

// Appointment is a scheduled patient visit.
type Appointment struct {
	AppointmentID string            `json:"appointmentID"` // Primary Key (UUID)
	PatientName   string            `json:"patientName"`
	DoctorName    string            `json:"doctorName"`
	Date          time.Time         `json:"date"`
	Time          string            `json:"time"` // Wall-clock slot, e.g. "14:30"
	Status        AppointmentStatus `json:"status"`
	Type          string            `json:"type"`
	CreatedAt     time.Time         `json:"createdAt"`
}
