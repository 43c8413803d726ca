package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"payroll_system/middleware"
	"payroll_system/services"
	"payroll_system/store"
	"payroll_system/types"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// SetupTest builds a fresh app backed by a temp-dir store and archive.
func SetupTest(t *testing.T) (*fiber.App, *services.PayrollService) {
	t.Helper()
	dir := t.TempDir()

	archive, err := services.OpenArchive(filepath.Join(dir, "payroll.db"))
	require.NoError(t, err)
	t.Cleanup(func() { archive.Close() })

	payroll := services.NewPayrollService(
		store.New(filepath.Join(dir, "employees.txt")),
		services.NewPayrollLog(filepath.Join(dir, "payroll.txt")),
		archive,
	)
	auth := services.NewAuthenticator("admin123", "", payroll)
	InitHandlers(payroll, auth, testSecret, time.Hour)

	app := fiber.New()
	RegisterRoutes(app)
	return app, payroll
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.IssueToken(testSecret, services.RoleAdmin, 0, time.Hour)
	require.NoError(t, err)
	return token
}

func employeeToken(t *testing.T, id int) string {
	t.Helper()
	token, err := middleware.IssueToken(testSecret, services.RoleEmployee, id, time.Hour)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, types.APIResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var response types.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	return resp, response
}
