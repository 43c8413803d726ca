package cmd

import (
	"fmt"

	"payroll_system/services"

	"github.com/spf13/cobra"
)

var reportXLSX string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Employee-wise salary report and department summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		report := payroll.GenerateReports()
		out := cmd.OutOrStdout()

		if reportXLSX != "" {
			if err := services.ExportReportXLSX(report, reportXLSX); err != nil {
				printError(cmd.ErrOrStderr(), "Export failed: %v", err)
				return err
			}
			printSuccess(out, "Report written to %s", reportXLSX)
		}
		if outputJSON {
			return printJSON(out, report)
		}
		if len(report.Employees) == 0 {
			printInfo(out, "No employee data available for reports!")
			return nil
		}

		fmt.Fprintln(out, "1. Employee-wise Salary Report:")
		printEmployeeTable(out, report.Employees)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "2. Department-wise Summary:")
		printDepartmentTable(out, report.Departments)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportXLSX, "xlsx", "", "also export the report to this .xlsx file")
}
