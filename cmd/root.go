package cmd

import (
	"os"

	"payroll_system/config"
	"payroll_system/services"
	"payroll_system/store"
	"payroll_system/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputJSON bool
	noArchive  bool

	payroll *services.PayrollService
	auth    *services.Authenticator
	archive *services.GormArchive
)

var rootCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Payroll record manager",
	Long: `payroll keeps an employee roster in a flat file, computes salary
components and produces payslips and reports.

Examples:
  payroll employee add --id 1 --name John --designation Engineer --department IT --basic 1000
  payroll payroll process 1
  payroll report --xlsx report.xlsx
  payroll serve --port 3000
  payroll menu`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&outputJSON, "json", "j", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&noArchive, "no-archive", false, "do not record payslips in the SQLite archive")

	rootCmd.AddCommand(employeeCmd)
	rootCmd.AddCommand(payrollCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(versionCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if cmd == versionCmd {
		return nil
	}
	if err := config.LoadConfig(); err != nil {
		return err
	}
	cfg := config.AppConfig
	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		return err
	}

	st, err := store.Open(cfg.EmployeeFile)
	if err != nil {
		utils.Logger.Error("Failed to load employee file", zap.String("path", cfg.EmployeeFile), zap.Error(err))
		return err
	}

	var arch services.PayslipArchive
	if !noArchive {
		archive, err = services.OpenArchive(cfg.DBPath)
		if err != nil {
			utils.Logger.Error("Failed to open payslip archive", zap.String("path", cfg.DBPath), zap.Error(err))
			return err
		}
		arch = archive
	}

	payroll = services.NewPayrollService(st, services.NewPayrollLog(cfg.PayrollFile), arch)
	auth = services.NewAuthenticator(cfg.AdminPassword, cfg.AdminPasswordHash, payroll)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if archive != nil {
		if err := archive.Close(); err != nil {
			utils.Logger.Warn("Failed to close payslip archive", zap.Error(err))
		}
		archive = nil
	}
	utils.SyncLogger()
	return nil
}
