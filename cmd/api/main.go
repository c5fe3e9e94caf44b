package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title Hunting Sites API
// @version 1.0
// @description Read-only access to hunting site names, huntable species, documents, geography and harvest records.
// @BasePath /
func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	serve := serveCommand()

	root := &cobra.Command{
		Use:           "huntapi",
		Short:         "Read-only HTTP API over hunting site data",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Running without a subcommand starts the server.
		RunE: serve.RunE,
	}
	root.AddCommand(serve, migrateCommand())
	return root
}
