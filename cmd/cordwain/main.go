package main

import (
	"os"

	"github.com/spf13/cobra"

	"cordwain/internal/interfaces/cli/migrate"
	"cordwain/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cordwain",
		Short: "Cordwain - specification review for the supplier portal",
		Long:  `Cordwain serves the specification review API: per-position view specifications, media annotations, review tickets, and bilingual comment threads.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
