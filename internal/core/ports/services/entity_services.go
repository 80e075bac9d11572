package services

import (
	"context"

	"github.com/omarionadde/DHOOL/internal/core/domain"
	"github.com/omarionadde/DHOOL/internal/dto"
)

// ProductSvcFacade manages the inventory catalog.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// PatientSvcFacade manages patient demographic records.
type PatientSvcFacade interface {
	CreatePatient(ctx context.Context, req dto.CreatePatientRequest) (*domain.Patient, error)
	GetPatientByID(ctx context.Context, patientID string) (*domain.Patient, error)
	ListPatients(ctx context.Context, limit, offset int) ([]domain.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
}

// ClinicalSvcFacade manages per-patient visit history and prescriptions.
type ClinicalSvcFacade interface {
	AddHistory(ctx context.Context, patientID string, req dto.CreateHistoryRequest) (*domain.PatientHistory, error)
	ListHistory(ctx context.Context, patientID string) ([]domain.PatientHistory, error)
	AddPrescription(ctx context.Context, patientID string, req dto.CreatePrescriptionRequest) (*domain.Prescription, error)
	ListPrescriptions(ctx context.Context, patientID string) ([]domain.Prescription, error)
}

// ExpenseSvcFacade manages expense records.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)
	ListExpenses(ctx context.Context, limit, offset int) ([]domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}

// EmployeeSvcFacade manages payroll records.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// AppointmentSvcFacade manages scheduled visits.
type AppointmentSvcFacade interface {
	CreateAppointment(ctx context.Context, req dto.CreateAppointmentRequest) (*domain.Appointment, error)
	ListAppointments(ctx context.Context, limit, offset int) ([]domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) error
	DeleteAppointment(ctx context.Context, appointmentID string) error
}
