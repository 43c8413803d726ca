package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"payroll_system/models"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	infoColor    = color.New(color.FgCyan)
)

func printSuccess(w io.Writer, format string, a ...interface{}) {
	successColor.Fprintf(w, format+"\n", a...)
}

func printError(w io.Writer, format string, a ...interface{}) {
	errorColor.Fprintf(w, format+"\n", a...)
}

func printInfo(w io.Writer, format string, a ...interface{}) {
	infoColor.Fprintf(w, format+"\n", a...)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func printEmployee(w io.Writer, e models.Employee, net float64) {
	fmt.Fprintf(w, "ID: %d\n", e.ID)
	fmt.Fprintf(w, "Name: %s\n", e.Name)
	fmt.Fprintf(w, "Designation: %s\n", e.Designation)
	fmt.Fprintf(w, "Department: %s\n", e.Department)
	fmt.Fprintf(w, "Basic Salary: %s\n", money(e.BasicSalary))
	fmt.Fprintf(w, "Overtime Hours: %s\n", money(e.OvertimeHours))
	fmt.Fprintf(w, "Overtime Rate: %s\n", money(e.OvertimeRate))
	fmt.Fprintf(w, "Bonus: %s\n", money(e.Bonus))
	fmt.Fprintf(w, "Net Salary: %s\n", money(net))
}

func printPayslip(w io.Writer, p models.Payslip) {
	e := p.Employee
	fmt.Fprintln(w, "----------------- PAYSLIP -----------------")
	fmt.Fprintf(w, "Employee ID: %d\n", e.ID)
	fmt.Fprintf(w, "Name: %s\n", e.Name)
	fmt.Fprintf(w, "Designation: %s\n", e.Designation)
	fmt.Fprintf(w, "Department: %s\n", e.Department)
	fmt.Fprintf(w, "Basic Salary: %s\n", money(e.BasicSalary))
	fmt.Fprintf(w, "HRA: %s\n", money(p.HRA))
	fmt.Fprintf(w, "DA: %s\n", money(p.DA))
	fmt.Fprintf(w, "Bonus: %s\n", money(e.Bonus))
	fmt.Fprintf(w, "Overtime Pay: %s\n", money(p.OvertimePay))
	fmt.Fprintf(w, "Tax Deduction: %s\n", money(p.Tax))
	fmt.Fprintf(w, "PF Deduction: %s\n", money(p.PF))
	fmt.Fprintf(w, "Net Salary: %s\n", money(p.NetSalary))
	fmt.Fprintln(w, "--------------------------------------------")
}

// printEmployeeTable renders the employee-wise salary listing.
func printEmployeeTable(w io.Writer, payslips []models.Payslip) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{"ID", "Name", "Designation", "Department", "BasicSalary",
		"HRA", "DA", "Bonus", "OT Pay", "Tax", "PF", "NetSalary"}, "\t"))
	for _, p := range payslips {
		e := p.Employee
		fmt.Fprintln(tw, strings.Join([]string{
			strconv.Itoa(e.ID), e.Name, e.Designation, e.Department, money(e.BasicSalary),
			money(p.HRA), money(p.DA), money(e.Bonus), money(p.OvertimePay),
			money(p.Tax), money(p.PF), money(p.NetSalary),
		}, "\t"))
	}
	tw.Flush()
}

func printDepartmentTable(w io.Writer, summaries []models.DepartmentSummary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Department\tTotal Net Salary\tEmployee Count")
	for _, d := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", d.Department, money(d.TotalNetSalary), d.EmployeeCount)
	}
	tw.Flush()
}
