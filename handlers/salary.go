package handlers

import (
	"payroll_system/models"
	"payroll_system/salary"
	"payroll_system/types"

	"github.com/gofiber/fiber/v2"
)

type ProcessPayrollResponse struct {
	Payslip  models.Payslip `json:"payslip"`
	Warnings []string       `json:"warnings,omitempty"`
}

// GetPayslip shows the current salary breakdown without recording a run.
func GetPayslip(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidInput(c, "Invalid employee ID")
	}

	employee, err := Payroll.ViewEmployee(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    salary.Breakdown(employee),
	})
}

func ProcessPayroll(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidInput(c, "Invalid employee ID")
	}

	run, err := Payroll.ProcessPayroll(id)
	if err != nil {
		return respondError(c, err)
	}

	resp := ProcessPayrollResponse{Payslip: run.Payslip}
	if run.LogErr != nil {
		resp.Warnings = append(resp.Warnings, "payroll log not written: "+run.LogErr.Error())
	}
	if run.ArchiveErr != nil {
		resp.Warnings = append(resp.Warnings, "payslip not archived: "+run.ArchiveErr.Error())
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Message: "Payroll processed",
		Data:    resp,
	})
}

func GetPayslipHistory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidInput(c, "Invalid employee ID")
	}

	history, err := Payroll.PayslipHistory(id)
	if err != nil {
		return respondError(c, err)
	}
	if history == nil {
		history = []models.PayslipRecord{}
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    history,
	})
}

func GetReports(c *fiber.Ctx) error {
	report := Payroll.GenerateReports()
	if report.Departments == nil {
		report.Departments = []models.DepartmentSummary{}
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    report,
	})
}
