package domain

import "time"

// Patient is a clinic patient record. Transactions, history entries and
// prescriptions reference it by PatientID; deleting a patient leaves those
// records in place (orphan-tolerant, matching the clinic's retention needs).
type Patient struct {
	PatientID string    `json:"patientID"` // Primary Key (UUID)
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Phone     string    `json:"phone"`
	LastVisit time.Time `json:"lastVisit"`
	Condition string    `json:"condition"`
	CreatedAt time.Time `json:"createdAt"`
}

// PatientHistory is one visit entry in a patient's clinical record.
type PatientHistory struct {
	HistoryID  string    `json:"historyID"` // Primary Key (UUID)
	PatientID  string    `json:"patientID"`
	Date       time.Time `json:"date"`
	Diagnosis  string    `json:"diagnosis"`
	Treatment  string    `json:"treatment"`
	Notes      string    `json:"notes"`
	DoctorName string    `json:"doctorName"`
}

// Medicine is a single line on a prescription.
type Medicine struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

// Prescription groups the medicines issued to a patient on one date.
type Prescription struct {
	PrescriptionID string     `json:"prescriptionID"` // Primary Key (UUID)
	PatientID      string     `json:"patientID"`
	DoctorName     string     `json:"doctorName"`
	Date           time.Time  `json:"date"`
	Medicines      []Medicine `json:"medicines"`
}
