package handlers

import (
	"slices"
	"strconv"

	"payroll_system/models"
	"payroll_system/types"

	"github.com/gofiber/fiber/v2"
)

type AddEmployeeRequest struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Designation   string  `json:"designation"`
	Department    string  `json:"department"`
	BasicSalary   float64 `json:"basic_salary"`
	OvertimeHours float64 `json:"overtime_hours"`
	OvertimeRate  float64 `json:"overtime_rate"`
	Bonus         float64 `json:"bonus"`
}

type UpdateEmployeeRequest = models.EmployeeFields

func (r AddEmployeeRequest) toEmployee() models.Employee {
	return models.Employee{
		ID:            r.ID,
		Name:          r.Name,
		Designation:   r.Designation,
		Department:    r.Department,
		BasicSalary:   r.BasicSalary,
		OvertimeHours: r.OvertimeHours,
		OvertimeRate:  r.OvertimeRate,
		Bonus:         r.Bonus,
	}
}

func parseID(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}

func GetAllEmployees(c *fiber.Ctx) error {
	employees := slices.Collect(Payroll.ListAll())
	if employees == nil {
		employees = []models.Employee{}
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data:    employees,
	})
}

func GetEmployee(c *fiber.Ctx) error {
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
		Data:    employee,
	})
}

func AddEmployee(c *fiber.Ctx) error {
	var req AddEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidInput(c, types.ErrInvalidInput)
	}

	employee, err := Payroll.AddEmployee(req.toEmployee())
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.APIResponse{
		Success: true,
		Message: "Employee added successfully",
		Data:    employee,
	})
}

func UpdateEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidInput(c, "Invalid employee ID")
	}

	var req UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidInput(c, types.ErrInvalidInput)
	}

	employee, err := Payroll.UpdateEmployee(id, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Message: "Employee record updated successfully",
		Data:    employee,
	})
}

func DeleteEmployee(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidInput(c, "Invalid employee ID")
	}

	employee, err := Payroll.DeleteEmployee(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Message: "Employee deleted successfully",
		Data:    employee,
	})
}
