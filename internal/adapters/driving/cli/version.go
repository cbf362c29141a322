package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		schema := domain.DefaultSchema()
		cmd.Printf("inspecta version %s\n", version)
		cmd.Printf("checklist: %d questions in %d categories\n", schema.QuestionCount(), len(schema))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
