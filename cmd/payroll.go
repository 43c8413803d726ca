package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Process payroll and inspect payslip history",
}

var payrollProcessCmd = &cobra.Command{
	Use:   "process <id>",
	Short: "Generate a payslip and append it to the payroll log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		run, err := payroll.ProcessPayroll(id)
		if err != nil {
			return reportLookupError(cmd, err)
		}

		if run.LogErr != nil {
			printError(cmd.ErrOrStderr(), "Warning: payroll log not written: %v", run.LogErr)
		}
		if run.ArchiveErr != nil {
			printError(cmd.ErrOrStderr(), "Warning: payslip not archived: %v", run.ArchiveErr)
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), run.Payslip)
		}
		printPayslip(cmd.OutOrStdout(), run.Payslip)
		return nil
	},
}

var payrollHistoryCmd = &cobra.Command{
	Use:   "history <id>",
	Short: "List archived payslips for an employee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseIDArg(args[0])
		if err != nil {
			return err
		}
		history, err := payroll.PayslipHistory(id)
		if err != nil {
			return reportLookupError(cmd, err)
		}
		if outputJSON {
			return printJSON(cmd.OutOrStdout(), history)
		}
		if len(history) == 0 {
			printInfo(cmd.OutOrStdout(), "No payslips recorded for employee %d", id)
			return nil
		}
		for _, rec := range history {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  net %s\n",
				rec.ProcessedAt.Format("2006-01-02 15:04:05"), rec.Name, money(rec.NetSalary))
		}
		return nil
	},
}

func init() {
	payrollCmd.AddCommand(payrollProcessCmd)
	payrollCmd.AddCommand(payrollHistoryCmd)
}
