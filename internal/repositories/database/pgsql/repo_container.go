package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/omarionadde/DHOOL/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every Postgres repository over one shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:     newPgxProductRepository(dbPool),
		PatientRepo:     newPgxPatientRepository(dbPool),
		LedgerRepo:      newPgxLedgerRepository(dbPool),
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
		EmployeeRepo:    newPgxEmployeeRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		AppointmentRepo: newPgxAppointmentRepository(dbPool),
		ClinicalRepo:    newPgxClinicalRepository(dbPool),
	}
}
