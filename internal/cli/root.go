// Package cli holds the command tree. The bare command starts the
// interactive calendar; subcommands cover headless use.
package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dori/clockin/internal/app"
	"github.com/dori/clockin/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "clockin",
	Short: "A terminal client for reconciling tracked work time",
	Long: `clockin shows your recorded work time on a month calendar, flags the
workdays that still have no hours, and fills them one by one or in bulk.

Usage:
  clockin            Open the interactive calendar
  clockin submit     Fill all missing days up to today, non-interactively
  clockin setup      Configure the service connection
  clockin log        Show recently submitted spans`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(logCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"clockin version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI() error {
	application, err := app.New()
	if errors.Is(err, app.ErrNotConfigured) {
		// First run: walk through setup, then start normally.
		fmt.Println("No connection configured yet.")
		if err := runSetup(); err != nil {
			return err
		}
		application, err = app.New()
		if err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	defer application.Close()

	p := tea.NewProgram(
		ui.NewRootModel(application),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
