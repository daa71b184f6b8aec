package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// @title SafePoint API
// @version 1.0
// @description Backend for the SafePoint safety-response network: safepoint directory, incident lifecycle, dashboard and support bot.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("Command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()
	root := &cobra.Command{
		Use:           "safepoint",
		Short:         "SafePoint safety-response backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Без подкоманды запускается сервер
		RunE: serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())
	root.AddCommand(serve, newMigrateCmd())
	return root
}
