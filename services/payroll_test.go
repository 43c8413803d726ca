package services

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"payroll_system/models"
	"payroll_system/salary"
	"payroll_system/store"
	"payroll_system/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeArchive struct {
	recordFn  func(p models.Payslip) (models.PayslipRecord, error)
	historyFn func(employeeID int) ([]models.PayslipRecord, error)
	recorded  []models.Payslip
}

func (f *fakeArchive) Record(p models.Payslip) (models.PayslipRecord, error) {
	f.recorded = append(f.recorded, p)
	if f.recordFn != nil {
		return f.recordFn(p)
	}
	return models.PayslipRecord{EmployeeID: p.Employee.ID, NetSalary: p.NetSalary}, nil
}

func (f *fakeArchive) History(employeeID int) ([]models.PayslipRecord, error) {
	if f.historyFn != nil {
		return f.historyFn(employeeID)
	}
	return nil, nil
}

var john = models.Employee{ID: 1, Name: "John", Designation: "Engineer", Department: "IT", BasicSalary: 1000, OvertimeHours: 10, OvertimeRate: 5, Bonus: 100}

func setupService(t *testing.T, archive PayslipArchive) (*PayrollService, string) {
	t.Helper()
	dir := t.TempDir()
	st := store.New(filepath.Join(dir, "employees.txt"))
	logPath := filepath.Join(dir, "payroll.txt")
	svc := NewPayrollService(st, NewPayrollLog(logPath), archive)
	svc.now = func() time.Time { return time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC) }
	return svc, logPath
}

func TestProcessPayrollWritesLog(t *testing.T) {
	archive := &fakeArchive{}
	svc, logPath := setupService(t, archive)
	_, err := svc.AddEmployee(john)
	require.NoError(t, err)

	run, err := svc.ProcessPayroll(1)
	require.NoError(t, err)
	assert.NoError(t, run.LogErr)
	assert.NoError(t, run.ArchiveErr)
	assert.Equal(t, 1380.0, run.Payslip.NetSalary)
	assert.Equal(t, 200.0, run.Payslip.HRA)
	assert.False(t, run.Payslip.ProcessedAt.IsZero())

	_, err = svc.ProcessPayroll(1)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	line := "Payslip for Employee ID 1 (John): Net Salary = 1380\n"
	assert.Equal(t, line+line, string(data))
	assert.Len(t, archive.recorded, 2)
}

func TestProcessPayrollNotFound(t *testing.T) {
	archive := &fakeArchive{}
	svc, logPath := setupService(t, archive)

	_, err := svc.ProcessPayroll(7)
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.NoFileExists(t, logPath)
	assert.Empty(t, archive.recorded)
}

func TestProcessPayrollLogFailureIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	st := store.New(filepath.Join(dir, "employees.txt"))
	svc := NewPayrollService(st, NewPayrollLog(filepath.Join(dir, "missing", "payroll.txt")), nil)
	_, err := svc.AddEmployee(john)
	require.NoError(t, err)

	run, err := svc.ProcessPayroll(1)
	require.NoError(t, err)
	assert.True(t, types.IsIOError(run.LogErr))
	assert.Equal(t, 1380.0, run.Payslip.NetSalary)
}

func TestProcessPayrollArchiveFailureIsNonFatal(t *testing.T) {
	archive := &fakeArchive{
		recordFn: func(p models.Payslip) (models.PayslipRecord, error) {
			return models.PayslipRecord{}, errors.New("disk full")
		},
	}
	svc, _ := setupService(t, archive)
	_, _ = svc.AddEmployee(john)

	run, err := svc.ProcessPayroll(1)
	require.NoError(t, err)
	assert.EqualError(t, run.ArchiveErr, "disk full")
	assert.NoError(t, run.LogErr)
}

func TestEmployeeCRUD(t *testing.T) {
	svc, _ := setupService(t, nil)

	_, err := svc.AddEmployee(john)
	require.NoError(t, err)
	assert.True(t, svc.Exists(1))

	got, err := svc.ViewEmployee(1)
	require.NoError(t, err)
	assert.Equal(t, john, got)

	fields := john.Fields()
	fields.Bonus = 500
	updated, err := svc.UpdateEmployee(1, fields)
	require.NoError(t, err)
	assert.Equal(t, 500.0, updated.Bonus)

	_, err = svc.UpdateEmployee(2, fields)
	assert.ErrorIs(t, err, types.ErrNotFound)

	removed, err := svc.DeleteEmployee(1)
	require.NoError(t, err)
	assert.Equal(t, 1, removed.ID)

	_, err = svc.DeleteEmployee(1)
	assert.ErrorIs(t, err, types.ErrNotFound)
	_, err = svc.ViewEmployee(1)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListAllSnapshot(t *testing.T) {
	svc, _ := setupService(t, nil)
	_, _ = svc.AddEmployee(john)
	seq := svc.ListAll()

	_, _ = svc.AddEmployee(models.Employee{ID: 2, Name: "Jane"})

	assert.Len(t, slices.Collect(seq), 1)
	assert.Len(t, slices.Collect(svc.ListAll()), 2)
}

func TestGenerateReports(t *testing.T) {
	svc, _ := setupService(t, nil)
	jane := models.Employee{ID: 2, Name: "Jane", Department: "HR", BasicSalary: 2000}
	ravi := models.Employee{ID: 3, Name: "Ravi", Department: "IT", BasicSalary: 500, Bonus: 10}
	for _, e := range []models.Employee{john, jane, ravi} {
		_, err := svc.AddEmployee(e)
		require.NoError(t, err)
	}

	report := svc.GenerateReports()
	require.Len(t, report.Employees, 3)
	assert.Equal(t, 1380.0, report.Employees[0].NetSalary)
	assert.Equal(t, []int{1, 2, 3}, []int{report.Employees[0].Employee.ID, report.Employees[1].Employee.ID, report.Employees[2].Employee.ID})

	require.Len(t, report.Departments, 2)
	assert.Equal(t, models.DepartmentSummary{Department: "IT", TotalNetSalary: salary.NetSalary(john) + salary.NetSalary(ravi), EmployeeCount: 2}, report.Departments[0])
	assert.Equal(t, "HR", report.Departments[1].Department)
}

func TestPayslipHistory(t *testing.T) {
	archive, err := OpenArchive(filepath.Join(t.TempDir(), "payroll.db"))
	require.NoError(t, err)
	t.Cleanup(func() { archive.Close() })

	svc, _ := setupService(t, archive)
	_, _ = svc.AddEmployee(john)

	_, err = svc.PayslipHistory(9)
	assert.ErrorIs(t, err, types.ErrNotFound)

	for i := 0; i < 2; i++ {
		run, err := svc.ProcessPayroll(1)
		require.NoError(t, err)
		require.NoError(t, run.ArchiveErr)
	}

	history, err := svc.PayslipHistory(1)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 1380.0, history[0].NetSalary)
	assert.Equal(t, "IT", history[0].Department)
	assert.NotEqual(t, history[0].ID, history[1].ID)
}

func TestAddEmployeeRejectsNonFiniteAmounts(t *testing.T) {
	svc, _ := setupService(t, nil)

	_, err := svc.AddEmployee(models.Employee{ID: 1, Name: "John", Department: "IT", OvertimeRate: math.Inf(1)})
	assert.True(t, types.IsInvalidAmount(err))
	assert.False(t, types.IsIOError(err))

	report := svc.GenerateReports()
	assert.Empty(t, report.Employees)
}
