package services

import (
	"payroll_system/models"

	"github.com/xuri/excelize/v2"
)

const (
	employeeSheet   = "Employees"
	departmentSheet = "Departments"
)

var employeeHeader = []interface{}{
	"ID", "Name", "Designation", "Department", "Basic Salary", "HRA", "DA",
	"Bonus", "OT Pay", "Tax", "PF", "Net Salary",
}

var departmentHeader = []interface{}{"Department", "Total Net Salary", "Employee Count"}

// ExportReportXLSX writes the report as a two-sheet workbook.
func ExportReportXLSX(report models.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", employeeSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(employeeSheet, "A1", &employeeHeader); err != nil {
		return err
	}
	for i, p := range report.Employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			p.Employee.ID, p.Employee.Name, p.Employee.Designation, p.Employee.Department,
			p.Employee.BasicSalary, p.HRA, p.DA, p.Employee.Bonus, p.OvertimePay,
			p.Tax, p.PF, p.NetSalary,
		}
		if err := f.SetSheetRow(employeeSheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(departmentSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(departmentSheet, "A1", &departmentHeader); err != nil {
		return err
	}
	for i, d := range report.Departments {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{d.Department, d.TotalNetSalary, d.EmployeeCount}
		if err := f.SetSheetRow(departmentSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
