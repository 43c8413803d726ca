package handlers

import (
	"time"

	"payroll_system/middleware"
	"payroll_system/services"
	"payroll_system/types"
	"payroll_system/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	Payroll   *services.PayrollService
	Auth      *services.Authenticator
	JWTSecret string
	TokenTTL  time.Duration
)

func InitHandlers(payroll *services.PayrollService, auth *services.Authenticator, jwtSecret string, tokenTTL time.Duration) {
	Payroll = payroll
	Auth = auth
	JWTSecret = jwtSecret
	TokenTTL = tokenTTL
}

// RegisterRoutes mounts the API on app. InitHandlers must run first.
// Authentication is attached per route so unknown paths still 404.
func RegisterRoutes(app *fiber.App) {
	app.Post("/login/admin", AdminLogin)
	app.Post("/login/employee", EmployeeLogin)

	authed := middleware.RequireAuth(JWTSecret)

	app.Get("/employees", authed, middleware.RequireAdmin, GetAllEmployees)
	app.Post("/employees", authed, middleware.RequireAdmin, AddEmployee)
	app.Get("/employees/:id", authed, middleware.RequireSelfOrAdmin, GetEmployee)
	app.Put("/employees/:id", authed, middleware.RequireAdmin, UpdateEmployee)
	app.Delete("/employees/:id", authed, middleware.RequireAdmin, DeleteEmployee)
	app.Get("/employees/:id/payslip", authed, middleware.RequireSelfOrAdmin, GetPayslip)

	app.Post("/payroll/:id", authed, middleware.RequireAdmin, ProcessPayroll)
	app.Get("/payroll/:id/history", authed, middleware.RequireSelfOrAdmin, GetPayslipHistory)

	app.Get("/reports", authed, middleware.RequireAdmin, GetReports)
}

func respondError(c *fiber.Ctx, err error) error {
	switch {
	case types.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrEmployeeNotFound,
		})
	case types.IsInvalidAmount(err):
		return invalidInput(c, types.ErrInvalidInput)
	case types.IsIOError(err):
		utils.Logger.Error("Storage failure", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrStorageError,
		})
	default:
		utils.Logger.Error("Unexpected failure", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInternalError,
		})
	}
}

func invalidInput(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(types.APIResponse{
		Success: false,
		Error:   msg,
	})
}
