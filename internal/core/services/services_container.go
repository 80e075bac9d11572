package services

import (
	portsrepo "github.com/omarionadde/DHOOL/internal/core/ports/repositories"
	portssvc "github.com/omarionadde/DHOOL/internal/core/ports/services"
	"github.com/omarionadde/DHOOL/pkg/config"
)

// NewServiceContainer builds every service facade from the repository
// provider and configuration. Called once at startup.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:    NewUserService(repos.UserRepo),
		Product: NewProductService(repos.ProductRepo),
		Patient: NewPatientService(repos.PatientRepo),
		Ledger: NewLedgerService(
			repos.LedgerRepo,
			repos.ProductRepo,
			repos.PatientRepo,
			repos.UserRepo,
			cfg.AllowOverSettlement,
		),
		Expense:     NewExpenseService(repos.ExpenseRepo),
		Employee:    NewEmployeeService(repos.EmployeeRepo),
		Appointment: NewAppointmentService(repos.AppointmentRepo),
		Clinical:    NewClinicalService(repos.ClinicalRepo, repos.PatientRepo),
		Reporting: NewReportingService(
			repos.LedgerRepo,
			repos.ExpenseRepo,
			repos.ProductRepo,
			repos.PatientRepo,
			repos.AppointmentRepo,
			cfg.LowStockThreshold,
		),
	}
}
