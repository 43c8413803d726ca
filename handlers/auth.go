package handlers

import (
	"payroll_system/middleware"
	"payroll_system/services"
	"payroll_system/types"
	"payroll_system/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type EmployeeLoginRequest struct {
	EmployeeID int `json:"employee_id"`
}

func issueToken(c *fiber.Ctx, role string, employeeID int) error {
	token, err := middleware.IssueToken(JWTSecret, role, employeeID, TokenTTL)
	if err != nil {
		utils.Logger.Error("Failed to sign token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInternalError,
		})
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"token": token,
			"role":  role,
		},
	})
}

func AdminLogin(c *fiber.Ctx) error {
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidInput(c, types.ErrInvalidInput)
	}

	if err := Auth.AdminLogin(req.Password); err != nil {
		utils.Logger.Warn("Rejected admin login", zap.String("ip", c.IP()))
		return c.Status(fiber.StatusUnauthorized).JSON(types.APIResponse{
			Success: false,
			Error:   "Incorrect password",
		})
	}

	return issueToken(c, services.RoleAdmin, 0)
}

func EmployeeLogin(c *fiber.Ctx) error {
	var req EmployeeLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidInput(c, types.ErrInvalidInput)
	}

	if err := Auth.EmployeeLogin(req.EmployeeID); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.APIResponse{
			Success: false,
			Error:   "Unable to authenticate Employee ID",
		})
	}

	return issueToken(c, services.RoleEmployee, req.EmployeeID)
}
