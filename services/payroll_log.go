package services

import (
	"fmt"
	"os"
	"strconv"

	"payroll_system/models"
	"payroll_system/types"
)

// PayrollLog appends one line per processed payslip. The file is never
// rewritten.
type PayrollLog struct {
	path string
}

func NewPayrollLog(path string) *PayrollLog {
	return &PayrollLog{path: path}
}

func (l *PayrollLog) Path() string {
	return l.path
}

func FormatLogLine(p models.Payslip) string {
	return fmt.Sprintf("Payslip for Employee ID %d (%s): Net Salary = %s",
		p.Employee.ID, p.Employee.Name, strconv.FormatFloat(p.NetSalary, 'f', -1, 64))
}

// Append opens the log for each entry so a missing or locked file only
// affects the current run.
func (l *PayrollLog) Append(p models.Payslip) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &types.IOError{Op: "open", Path: l.path, Err: err}
	}
	defer f.Close()

	if _, err := f.WriteString(FormatLogLine(p) + "\n"); err != nil {
		return &types.IOError{Op: "append", Path: l.path, Err: err}
	}
	return nil
}
