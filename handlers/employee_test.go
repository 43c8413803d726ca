package handlers

import (
	"testing"

	"payroll_system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var john = AddEmployeeRequest{ID: 1, Name: "John", Designation: "Engineer", Department: "IT", BasicSalary: 1000, OvertimeHours: 10, OvertimeRate: 5, Bonus: 100}

func TestGetAllEmployees(t *testing.T) {
	app, _ := SetupTest(t)
	token := adminToken(t)

	t.Run("Get Employees When Empty", func(t *testing.T) {
		resp, response := doRequest(t, app, "GET", "/employees", token, nil)
		assert.Equal(t, 200, resp.StatusCode)
		assert.True(t, response.Success)
		assert.Len(t, response.Data.([]interface{}), 0)
	})

	t.Run("Get Employees After Add", func(t *testing.T) {
		resp, _ := doRequest(t, app, "POST", "/employees", token, john)
		require.Equal(t, 201, resp.StatusCode)

		resp, response := doRequest(t, app, "GET", "/employees", token, nil)
		assert.Equal(t, 200, resp.StatusCode)
		list := response.Data.([]interface{})
		require.Len(t, list, 1)
		emp := list[0].(map[string]interface{})
		assert.Equal(t, "John", emp["name"])
		assert.Equal(t, float64(1000), emp["basic_salary"])
	})
}

func TestEmployeeRoutesRequireAuth(t *testing.T) {
	app, _ := SetupTest(t)

	resp, response := doRequest(t, app, "GET", "/employees", "", nil)
	assert.Equal(t, 401, resp.StatusCode)
	assert.False(t, response.Success)

	resp, _ = doRequest(t, app, "GET", "/employees", "not-a-jwt", nil)
	assert.Equal(t, 401, resp.StatusCode)

	resp, _ = doRequest(t, app, "GET", "/employees", employeeToken(t, 1), nil)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestUpdateEmployee(t *testing.T) {
	app, payroll := SetupTest(t)
	token := adminToken(t)
	doRequest(t, app, "POST", "/employees", token, john)

	fields := models.EmployeeFields{Name: "John Smith", Designation: "Lead", Department: "R&D", BasicSalary: 2000}
	resp, response := doRequest(t, app, "PUT", "/employees/1", token, fields)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "Employee record updated successfully", response.Message)

	got, err := payroll.ViewEmployee(1)
	require.NoError(t, err)
	assert.Equal(t, fields, got.Fields())

	resp, response = doRequest(t, app, "PUT", "/employees/2", token, fields)
	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Employee not found", response.Error)

	resp, _ = doRequest(t, app, "PUT", "/employees/abc", token, fields)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestDeleteEmployee(t *testing.T) {
	app, payroll := SetupTest(t)
	token := adminToken(t)
	doRequest(t, app, "POST", "/employees", token, john)

	resp, _ := doRequest(t, app, "DELETE", "/employees/1", token, nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.False(t, payroll.Exists(1))

	resp, _ = doRequest(t, app, "DELETE", "/employees/1", token, nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestEmployeeSeesOnlyOwnRecord(t *testing.T) {
	app, _ := SetupTest(t)
	admin := adminToken(t)
	doRequest(t, app, "POST", "/employees", admin, john)
	jane := john
	jane.ID, jane.Name = 2, "Jane"
	doRequest(t, app, "POST", "/employees", admin, jane)

	token := employeeToken(t, 1)
	resp, response := doRequest(t, app, "GET", "/employees/1", token, nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "John", response.Data.(map[string]interface{})["name"])

	resp, _ = doRequest(t, app, "GET", "/employees/2", token, nil)
	assert.Equal(t, 403, resp.StatusCode)
}
