package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mado-app/mado/internal/interfaces/cli/migrate"
	"github.com/mado-app/mado/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mado",
		Short: "Mado - serialized fiction platform",
		Long:  `Mado is the backend for a serialized fiction platform: publishing, reading, and the account system behind them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
