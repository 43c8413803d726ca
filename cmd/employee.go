package cmd

import (
	"fmt"
	"slices"
	"strconv"

	"payroll_system/models"
	"payroll_system/salary"
	"payroll_system/types"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	empID     int
	empFields models.EmployeeFields
)

var employeeCmd = &cobra.Command{
	Use:   "employee",
	Short: "Manage employee records",
}

var employeeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an employee",
	RunE: func(cmd *cobra.Command, args []string) error {
		e := models.Employee{ID: empID}
		e.Apply(empFields)

		added, err := payroll.AddEmployee(e)
		if err != nil {
			printError(cmd.ErrOrStderr(), "Error: %v", err)
			return err
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), added)
		}
		printSuccess(cmd.OutOrStdout(), "Employee added successfully!")
		return nil
	},
}

var employeeUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an employee; unset flags keep their current value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		current, err := payroll.ViewEmployee(id)
		if err != nil {
			return reportLookupError(cmd, err)
		}

		fields := mergeFields(cmd.Flags(), current.Fields(), empFields)
		updated, err := payroll.UpdateEmployee(id, fields)
		if err != nil {
			return reportLookupError(cmd, err)
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), updated)
		}
		printSuccess(cmd.OutOrStdout(), "Employee record updated successfully!")
		return nil
	},
}

var employeeDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		removed, err := payroll.DeleteEmployee(id)
		if err != nil {
			return reportLookupError(cmd, err)
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), removed)
		}
		printInfo(cmd.OutOrStdout(), "Deleting record of %s", removed.Name)
		printSuccess(cmd.OutOrStdout(), "Employee deleted successfully!")
		return nil
	},
}

var employeeViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		e, err := payroll.ViewEmployee(id)
		if err != nil {
			return reportLookupError(cmd, err)
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), e)
		}
		printEmployee(cmd.OutOrStdout(), e, salary.NetSalary(e))
		return nil
	},
}

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		var payslips []models.Payslip
		for e := range payroll.ListAll() {
			payslips = append(payslips, salary.Breakdown(e))
		}
		if outputJSON {
			employees := slices.Collect(payroll.ListAll())
			if employees == nil {
				employees = []models.Employee{}
			}
			return printJSON(cmd.OutOrStdout(), employees)
		}
		if len(payslips) == 0 {
			printInfo(cmd.OutOrStdout(), "No employees to display!")
			return nil
		}
		printEmployeeTable(cmd.OutOrStdout(), payslips)
		return nil
	},
}

func init() {
	employeeAddCmd.Flags().IntVar(&empID, "id", 0, "employee id")
	_ = employeeAddCmd.MarkFlagRequired("id")
	for _, c := range []*cobra.Command{employeeAddCmd, employeeUpdateCmd} {
		c.Flags().StringVar(&empFields.Name, "name", "", "name")
		c.Flags().StringVar(&empFields.Designation, "designation", "", "designation")
		c.Flags().StringVar(&empFields.Department, "department", "", "department")
		c.Flags().Float64Var(&empFields.BasicSalary, "basic", 0, "basic salary")
		c.Flags().Float64Var(&empFields.OvertimeHours, "ot-hours", 0, "overtime hours")
		c.Flags().Float64Var(&empFields.OvertimeRate, "ot-rate", 0, "overtime rate")
		c.Flags().Float64Var(&empFields.Bonus, "bonus", 0, "bonus")
	}

	employeeCmd.AddCommand(employeeAddCmd)
	employeeCmd.AddCommand(employeeUpdateCmd)
	employeeCmd.AddCommand(employeeDeleteCmd)
	employeeCmd.AddCommand(employeeViewCmd)
	employeeCmd.AddCommand(employeeListCmd)
}

// mergeFields takes each field from set when its flag was given, else from current.
func mergeFields(flags *pflag.FlagSet, current, set models.EmployeeFields) models.EmployeeFields {
	out := current
	if flags.Changed("name") {
		out.Name = set.Name
	}
	if flags.Changed("designation") {
		out.Designation = set.Designation
	}
	if flags.Changed("department") {
		out.Department = set.Department
	}
	if flags.Changed("basic") {
		out.BasicSalary = set.BasicSalary
	}
	if flags.Changed("ot-hours") {
		out.OvertimeHours = set.OvertimeHours
	}
	if flags.Changed("ot-rate") {
		out.OvertimeRate = set.OvertimeRate
	}
	if flags.Changed("bonus") {
		out.Bonus = set.Bonus
	}
	return out
}

func parseIDArg(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid employee id %q", s)
	}
	return id, nil
}

func reportLookupError(cmd *cobra.Command, err error) error {
	if types.IsNotFound(err) {
		printError(cmd.ErrOrStderr(), "Employee not found!")
	} else {
		printError(cmd.ErrOrStderr(), "Error: %v", err)
	}
	return err
}
