// Package cli provides the cobra command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driving"
	"github.com/custodia-labs/inspecta-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services the commands depend on, injected by the composition root.
var (
	checklistService  driving.ChecklistService
	sessionService    driving.SessionService
	submissionService driving.SubmissionService
	settingsService   driving.SettingsService
)

// Services bundles the driving ports the CLI commands use.
type Services struct {
	Checklist  driving.ChecklistService
	Session    driving.SessionService
	Submission driving.SubmissionService
	Settings   driving.SettingsService
}

// SetServices wires the driving ports into the command tree.
func SetServices(s Services) {
	checklistService = s.Checklist
	sessionService = s.Session
	submissionService = s.Submission
	settingsService = s.Settings
}

// SetVersion sets the version string displayed by the version command.
func SetVersion(v string) {
	version = v
}

var verbose bool

// rootCmd is the base command. Running it with no subcommand launches
// the interactive checklist.
var rootCmd = &cobra.Command{
	Use:   "inspecta",
	Short: "Workplace inspection checklists from the terminal",
	Long: `Inspecta fills in workplace inspection checklists and submits them
to the central record sheet.

Running inspecta with no arguments opens the interactive checklist.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
