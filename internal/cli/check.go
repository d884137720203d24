package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a stock check against the supplier feed",
	Long: `Fetch the supplier feed, diff tracked SKUs against the previous
snapshot, write the inventory report, and send alerts for items that
newly dropped to a warning or critical stock level.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().Bool("dry-run", false, "Write the report but skip snapshot update and alerts")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	c, store, err := initChecker(cfg, dryRun)
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := c.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("DONE. Report: %s\n", result.ReportPath)
	fmt.Printf("New critical: %d, New warning: %d\n", len(result.NewCritical), len(result.NewWarning))

	return nil
}
