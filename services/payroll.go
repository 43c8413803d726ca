package services

import (
	"iter"
	"slices"
	"sync"
	"time"

	"payroll_system/models"
	"payroll_system/salary"
	"payroll_system/store"
	"payroll_system/types"
	"payroll_system/utils"

	"go.uber.org/zap"
)

// PayrollService is the caller-facing surface over the record store, the
// payroll log and the payslip archive. Operations run one at a time.
type PayrollService struct {
	mu      sync.Mutex
	store   *store.Store
	log     *PayrollLog
	archive PayslipArchive
	now     func() time.Time
}

// PayrollRun is the outcome of processing one employee. LogErr and
// ArchiveErr are reported but do not invalidate the payslip.
type PayrollRun struct {
	Payslip    models.Payslip
	LogErr     error
	ArchiveErr error
}

// NewPayrollService wires the store with its log and archive. archive may
// be nil.
func NewPayrollService(st *store.Store, log *PayrollLog, archive PayslipArchive) *PayrollService {
	return &PayrollService{
		store:   st,
		log:     log,
		archive: archive,
		now:     time.Now,
	}
}

func (s *PayrollService) AddEmployee(e models.Employee) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added, err := s.store.Add(e)
	if err != nil {
		if types.IsIOError(err) {
			utils.Logger.Error("Failed to save employee file", zap.Int("employee_id", e.ID), zap.Error(err))
		}
		return added, err
	}
	utils.Logger.Info("Employee added", zap.Int("employee_id", e.ID))
	return added, nil
}

func (s *PayrollService) UpdateEmployee(id int, f models.EmployeeFields) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.store.Update(id, f)
	if err != nil {
		if types.IsIOError(err) {
			utils.Logger.Error("Failed to save employee file", zap.Int("employee_id", id), zap.Error(err))
		}
		return updated, err
	}
	utils.Logger.Info("Employee updated", zap.Int("employee_id", id))
	return updated, nil
}

func (s *PayrollService) DeleteEmployee(id int) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.store.Delete(id)
	if err != nil {
		if types.IsIOError(err) {
			utils.Logger.Error("Failed to save employee file", zap.Int("employee_id", id), zap.Error(err))
		}
		return removed, err
	}
	utils.Logger.Info("Employee deleted", zap.Int("employee_id", id))
	return removed, nil
}

func (s *PayrollService) ViewEmployee(id int) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.FindByID(id)
}

// Exists reports whether any record carries id.
func (s *PayrollService) Exists(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Exists(id)
}

// ListAll returns a restartable sequence over a snapshot of the roster.
func (s *PayrollService) ListAll() iter.Seq[models.Employee] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Values(slices.Collect(s.store.ListAll()))
}

// ProcessPayroll computes the payslip for id, appends it to the payroll
// log and archives it.
func (s *PayrollService) ProcessPayroll(id int) (PayrollRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.store.FindByID(id)
	if err != nil {
		return PayrollRun{}, err
	}

	run := PayrollRun{Payslip: salary.Breakdown(e)}
	run.Payslip.ProcessedAt = s.now()

	if s.log != nil {
		if run.LogErr = s.log.Append(run.Payslip); run.LogErr != nil {
			utils.Logger.Warn("Failed to append payroll log", zap.Int("employee_id", id), zap.Error(run.LogErr))
		}
	}
	if s.archive != nil {
		if _, run.ArchiveErr = s.archive.Record(run.Payslip); run.ArchiveErr != nil {
			utils.Logger.Warn("Failed to archive payslip", zap.Int("employee_id", id), zap.Error(run.ArchiveErr))
		}
	}

	utils.Logger.Info("Payroll processed",
		zap.Int("employee_id", id),
		zap.Float64("net_salary", run.Payslip.NetSalary))
	return run, nil
}

// GenerateReports returns the employee-wise listing and the department
// summary.
func (s *PayrollService) GenerateReports() models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := models.Report{
		Employees:   make([]models.Payslip, 0, s.store.Len()),
		Departments: s.store.SummarizeByDepartment(),
	}
	for e := range s.store.ListAll() {
		report.Employees = append(report.Employees, salary.Breakdown(e))
	}
	return report
}

// PayslipHistory lists archived payslips for an existing employee.
func (s *PayrollService) PayslipHistory(id int) ([]models.PayslipRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.Exists(id) {
		return nil, types.ErrNotFound
	}
	if s.archive == nil {
		return nil, nil
	}
	return s.archive.History(id)
}
