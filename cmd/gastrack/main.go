package main

import (
	"os"

	"github.com/spf13/cobra"

	"gastrack/internal/interfaces/cli/migrate"
	"gastrack/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gastrack",
		Short: "Gastrack - customer service portal for a gas utility",
		Long:  `Gastrack runs the customer service API: account registration, service request tracking, and the knowledge base.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
