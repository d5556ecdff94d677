// Package cmd implements the finchline CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finchline/finchline/internal/config"
)

const logo = "🐦"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "finchline",
	Short: logo + " finchline — Twitter/X tools over MCP",
	Long: logo + " finchline — an MCP server exposing Twitter/X operations " +
		"(posting, search, profiles, follows, lists) as tools for AI-agent clients",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = config.Version

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(toolsCmd)
}
