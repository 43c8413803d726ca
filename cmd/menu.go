package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"payroll_system/models"
	"payroll_system/salary"
	"payroll_system/services"
	"payroll_system/types"

	"github.com/spf13/cobra"
)

const employeeLoginAttempts = 3

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive admin and employee menus",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := newMenu(cmd.InOrStdin(), cmd.OutOrStdout(), payroll, auth)
		return m.run()
	},
}

type menu struct {
	in   *bufio.Reader
	out  io.Writer
	svc  *services.PayrollService
	auth *services.Authenticator
}

func newMenu(in io.Reader, out io.Writer, svc *services.PayrollService, auth *services.Authenticator) *menu {
	return &menu{in: bufio.NewReader(in), out: out, svc: svc, auth: auth}
}

func (m *menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *menu) readInt(prompt string) (int, error) {
	for {
		s, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil {
			return v, nil
		}
		printError(m.out, "Invalid number, try again.")
	}
}

// readFloat returns current when the input is blank.
func (m *menu) readFloat(prompt string, current float64, hasCurrent bool) (float64, error) {
	for {
		s, err := m.readLine(prompt)
		if err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		if s == "" && hasCurrent {
			return current, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, nil
		}
		printError(m.out, "Invalid number, try again.")
	}
}

func (m *menu) readText(prompt, current string, hasCurrent bool) (string, error) {
	s, err := m.readLine(prompt)
	if err != nil {
		return "", err
	}
	if s == "" && hasCurrent {
		return current, nil
	}
	return s, nil
}

func (m *menu) run() error {
	for {
		fmt.Fprintln(m.out, "\n========== MAIN MENU ==========")
		fmt.Fprintln(m.out, "1. Admin Login")
		fmt.Fprintln(m.out, "2. Employee Login")
		fmt.Fprintln(m.out, "3. Exit")
		choice, err := m.readInt("Enter choice: ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case 1:
			err = m.adminLogin()
		case 2:
			err = m.employeeLogin()
		case 3:
			fmt.Fprintln(m.out, "Exiting program...")
			return nil
		default:
			printError(m.out, "Invalid choice! Please try again.")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *menu) adminLogin() error {
	password, err := m.readLine("Enter Admin Password: ")
	if err != nil {
		return err
	}
	if m.auth.AdminLogin(password) != nil {
		printError(m.out, "Incorrect password!")
		return nil
	}
	printSuccess(m.out, "Admin login successful.")
	return m.adminMenu()
}

func (m *menu) employeeLogin() error {
	prompt := "Enter your Employee ID: "
	for i := 0; i < employeeLoginAttempts; i++ {
		id, err := m.readInt(prompt)
		if err != nil {
			return err
		}
		if m.auth.EmployeeLogin(id) == nil {
			e, err := m.svc.ViewEmployee(id)
			if err != nil {
				return err
			}
			fmt.Fprintf(m.out, "\nWelcome, %s!\n", e.Name)
			fmt.Fprintln(m.out, "Your Payslip:")
			printPayslip(m.out, salary.Breakdown(e))
			return nil
		}
		prompt = "Employee not found! Try again: "
	}
	printError(m.out, "Unable to authenticate Employee ID.")
	return nil
}

func (m *menu) adminMenu() error {
	for {
		fmt.Fprintln(m.out, "\n========= ADMIN MENU =========")
		fmt.Fprintln(m.out, "1. Add Employee")
		fmt.Fprintln(m.out, "2. Update Employee")
		fmt.Fprintln(m.out, "3. Delete Employee")
		fmt.Fprintln(m.out, "4. View Employee Details")
		fmt.Fprintln(m.out, "5. View All Employees")
		fmt.Fprintln(m.out, "6. Process Payroll (Generate Payslip)")
		fmt.Fprintln(m.out, "7. Generate Reports")
		fmt.Fprintln(m.out, "8. Logout")
		choice, err := m.readInt("Enter choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.addEmployee()
		case 2:
			err = m.updateEmployee()
		case 3:
			err = m.deleteEmployee()
		case 4:
			err = m.viewEmployee()
		case 5:
			m.viewAll()
		case 6:
			err = m.processPayroll()
		case 7:
			m.generateReports()
		case 8:
			fmt.Fprintln(m.out, "Logging out...")
			return nil
		default:
			printError(m.out, "Invalid choice! Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

// readFields prompts for every mutable field. With current set, blank
// input keeps the existing value.
func (m *menu) readFields(current *models.EmployeeFields) (models.EmployeeFields, error) {
	var f, cur models.EmployeeFields
	has := current != nil
	if has {
		cur = *current
	}
	hint := func(label, v string) string {
		if has {
			return fmt.Sprintf("Enter new %s (current: %s): ", label, v)
		}
		return fmt.Sprintf("Enter %s: ", label)
	}

	var err error
	if f.Name, err = m.readText(hint("Name", cur.Name), cur.Name, has); err != nil {
		return f, err
	}
	if f.Designation, err = m.readText(hint("Designation", cur.Designation), cur.Designation, has); err != nil {
		return f, err
	}
	if f.Department, err = m.readText(hint("Department", cur.Department), cur.Department, has); err != nil {
		return f, err
	}
	if f.BasicSalary, err = m.readFloat(hint("Basic Salary", money(cur.BasicSalary)), cur.BasicSalary, has); err != nil {
		return f, err
	}
	if f.OvertimeHours, err = m.readFloat(hint("Overtime Hours", money(cur.OvertimeHours)), cur.OvertimeHours, has); err != nil {
		return f, err
	}
	if f.OvertimeRate, err = m.readFloat(hint("Overtime Rate", money(cur.OvertimeRate)), cur.OvertimeRate, has); err != nil {
		return f, err
	}
	if f.Bonus, err = m.readFloat(hint("Bonus", money(cur.Bonus)), cur.Bonus, has); err != nil {
		return f, err
	}
	return f, nil
}

func (m *menu) reportStoreError(err error) {
	if types.IsNotFound(err) {
		printError(m.out, "\nEmployee not found!")
		return
	}
	printError(m.out, "Error: %v", err)
}

func (m *menu) addEmployee() error {
	id, err := m.readInt("Enter Employee ID: ")
	if err != nil {
		return err
	}
	fields, err := m.readFields(nil)
	if err != nil {
		return err
	}

	e := models.Employee{ID: id}
	e.Apply(fields)
	if _, err := m.svc.AddEmployee(e); err != nil {
		m.reportStoreError(err)
		return nil
	}
	printSuccess(m.out, "\nEmployee added successfully!")
	return nil
}

func (m *menu) updateEmployee() error {
	id, err := m.readInt("Enter Employee ID to update: ")
	if err != nil {
		return err
	}
	current, err := m.svc.ViewEmployee(id)
	if err != nil {
		m.reportStoreError(err)
		return nil
	}

	fmt.Fprintf(m.out, "Updating record for %s\n", current.Name)
	cur := current.Fields()
	fields, err := m.readFields(&cur)
	if err != nil {
		return err
	}
	if _, err := m.svc.UpdateEmployee(id, fields); err != nil {
		m.reportStoreError(err)
		return nil
	}
	printSuccess(m.out, "\nEmployee record updated successfully!")
	return nil
}

func (m *menu) deleteEmployee() error {
	id, err := m.readInt("Enter Employee ID to delete: ")
	if err != nil {
		return err
	}
	removed, err := m.svc.DeleteEmployee(id)
	if err != nil {
		m.reportStoreError(err)
		return nil
	}
	fmt.Fprintf(m.out, "Deleting record of %s\n", removed.Name)
	printSuccess(m.out, "\nEmployee deleted successfully!")
	return nil
}

func (m *menu) viewEmployee() error {
	id, err := m.readInt("Enter Employee ID to view: ")
	if err != nil {
		return err
	}
	e, err := m.svc.ViewEmployee(id)
	if err != nil {
		m.reportStoreError(err)
		return nil
	}
	fmt.Fprintln(m.out, "\nEmployee Details:")
	printEmployee(m.out, e, salary.NetSalary(e))
	return nil
}

func (m *menu) viewAll() {
	var payslips []models.Payslip
	for e := range m.svc.ListAll() {
		payslips = append(payslips, salary.Breakdown(e))
	}
	if len(payslips) == 0 {
		printInfo(m.out, "\nNo employees to display!")
		return
	}
	fmt.Fprintln(m.out, "\n=================== EMPLOYEE LIST ===================")
	printEmployeeTable(m.out, payslips)
}

func (m *menu) processPayroll() error {
	id, err := m.readInt("Enter Employee ID for payroll processing: ")
	if err != nil {
		return err
	}
	run, err := m.svc.ProcessPayroll(id)
	if err != nil {
		m.reportStoreError(err)
		return nil
	}
	fmt.Fprintln(m.out)
	printPayslip(m.out, run.Payslip)
	if run.LogErr != nil {
		printError(m.out, "Warning: payroll log not written: %v", run.LogErr)
	}
	if run.ArchiveErr != nil {
		printError(m.out, "Warning: payslip not archived: %v", run.ArchiveErr)
	}
	return nil
}

func (m *menu) generateReports() {
	report := m.svc.GenerateReports()
	if len(report.Employees) == 0 {
		printInfo(m.out, "\nNo employee data available for reports!")
		return
	}
	fmt.Fprintln(m.out, "\n=================== REPORTS ===================")
	fmt.Fprintln(m.out, "\n1. Employee-wise Salary Report:")
	printEmployeeTable(m.out, report.Employees)
	fmt.Fprintln(m.out, "\n2. Department-wise Summary:")
	printDepartmentTable(m.out, report.Departments)
}
