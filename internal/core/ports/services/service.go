package services

// ServiceContainer holds every service facade the handlers need. It is built
// once at startup by the services package and threaded through route
// registration.
type ServiceContainer struct {
	User        UserSvcFacade
	Product     ProductSvcFacade
	Patient     PatientSvcFacade
	Ledger      LedgerSvcFacade
	Expense     ExpenseSvcFacade
	Employee    EmployeeSvcFacade
	Appointment AppointmentSvcFacade
	Clinical    ClinicalSvcFacade
	Reporting   ReportingSvcFacade
}
