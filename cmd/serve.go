package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"payroll_system/config"
	"payroll_system/handlers"
	"payroll_system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the payroll operations over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.AppConfig
		secret, err := cfg.RequireJWTSecret()
		if err != nil {
			utils.Logger.Error("Refusing to serve", zap.Error(err))
			return err
		}
		ttl, err := cfg.TokenTTL()
		if err != nil {
			return err
		}
		port := cfg.Port
		if servePort != "" {
			port = servePort
		}

		handlers.InitHandlers(payroll, auth, secret, ttl)
		app := fiber.New(fiber.Config{DisableStartupMessage: true})
		handlers.RegisterRoutes(app)

		go func() {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			utils.Logger.Info("Shutting down")
			_ = app.Shutdown()
		}()

		utils.Logger.Info("Listening", zap.String("port", port))
		return app.Listen(":" + port)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (overrides PORT)")
}
