package repositories

// RepositoryProvider bundles every repository implementation so the service
// container can be wired from a single value.
type RepositoryProvider struct {
	ProductRepo     ProductRepository
	PatientRepo     PatientRepository
	LedgerRepo      LedgerRepository
	ExpenseRepo     ExpenseRepository
	EmployeeRepo    EmployeeRepository
	UserRepo        UserRepository
	AppointmentRepo AppointmentRepository
	ClinicalRepo    ClinicalRepository
}
