package main

import (
	"fmt"
	"os"

	"github.com/ribgsilva/notes-service/app/cmd/schema"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "notes-admin",
	Short:         "Administrative commands for the notes service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(schema.Command())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
