package models

import (
	"fmt"
	"math"
	"time"

	"payroll_system/types"

	"github.com/google/uuid"
)

// Employee is one roster entry. Salary components are derived from the
// four numeric fields and are never stored.
type Employee struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Designation   string  `json:"designation"`
	Department    string  `json:"department"`
	BasicSalary   float64 `json:"basic_salary"`
	OvertimeHours float64 `json:"overtime_hours"`
	OvertimeRate  float64 `json:"overtime_rate"`
	Bonus         float64 `json:"bonus"`
}

// EmployeeFields holds everything an update overwrites.
type EmployeeFields struct {
	Name          string  `json:"name"`
	Designation   string  `json:"designation"`
	Department    string  `json:"department"`
	BasicSalary   float64 `json:"basic_salary"`
	OvertimeHours float64 `json:"overtime_hours"`
	OvertimeRate  float64 `json:"overtime_rate"`
	Bonus         float64 `json:"bonus"`
}

func (e Employee) Fields() EmployeeFields {
	return EmployeeFields{
		Name:          e.Name,
		Designation:   e.Designation,
		Department:    e.Department,
		BasicSalary:   e.BasicSalary,
		OvertimeHours: e.OvertimeHours,
		OvertimeRate:  e.OvertimeRate,
		Bonus:         e.Bonus,
	}
}

// CheckAmounts rejects NaN and infinite salary figures. The error wraps
// types.ErrInvalidAmount and names the first offending field.
func (f EmployeeFields) CheckAmounts() error {
	amounts := []struct {
		name  string
		value float64
	}{
		{"basicSalary", f.BasicSalary},
		{"overtimeHours", f.OvertimeHours},
		{"overtimeRate", f.OvertimeRate},
		{"bonus", f.Bonus},
	}
	for _, a := range amounts {
		if math.IsNaN(a.value) || math.IsInf(a.value, 0) {
			return fmt.Errorf("%s: %w", a.name, types.ErrInvalidAmount)
		}
	}
	return nil
}

// Apply overwrites every mutable field of e. The id is kept.
func (e *Employee) Apply(f EmployeeFields) {
	e.Name = f.Name
	e.Designation = f.Designation
	e.Department = f.Department
	e.BasicSalary = f.BasicSalary
	e.OvertimeHours = f.OvertimeHours
	e.OvertimeRate = f.OvertimeRate
	e.Bonus = f.Bonus
}

// Payslip is a single payroll-run report for one employee.
type Payslip struct {
	Employee    Employee  `json:"employee"`
	HRA         float64   `json:"hra"`
	DA          float64   `json:"da"`
	Tax         float64   `json:"tax"`
	PF          float64   `json:"pf"`
	OvertimePay float64   `json:"overtime_pay"`
	NetSalary   float64   `json:"net_salary"`
	ProcessedAt time.Time `json:"processed_at,omitempty"`
}

// PayslipRecord is the archived copy of a processed payslip.
type PayslipRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	EmployeeID  int       `gorm:"not null;index" json:"employee_id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	Department  string    `gorm:"index" json:"department"`
	BasicSalary float64   `json:"basic_salary"`
	HRA         float64   `json:"hra"`
	DA          float64   `json:"da"`
	Bonus       float64   `json:"bonus"`
	OvertimePay float64   `json:"overtime_pay"`
	Tax         float64   `json:"tax"`
	PF          float64   `json:"pf"`
	NetSalary   float64   `json:"net_salary"`
	ProcessedAt time.Time `gorm:"not null;index" json:"processed_at"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

type DepartmentSummary struct {
	Department     string  `json:"department"`
	TotalNetSalary float64 `json:"total_net_salary"`
	EmployeeCount  int     `json:"employee_count"`
}

// Report is the output of a full reporting run.
type Report struct {
	Employees   []Payslip           `json:"employees"`
	Departments []DepartmentSummary `json:"departments"`
}
