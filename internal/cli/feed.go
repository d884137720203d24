package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mkadlec/stockwatch/pkg/inventory"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Inspect the supplier feed",
}

var feedPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch the feed and print parsed products",
	Long: `Fetch the supplier feed, parse it with the configured dialect profile,
and print the normalized products. The snapshot is not touched.`,
	RunE: runFeedPull,
}

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.AddCommand(feedPullCmd)
	feedPullCmd.Flags().Int("limit", 0, "Print at most this many products (0 = all)")
	feedPullCmd.Flags().Bool("tracked-only", false, "Print only products on the tracked list")
}

func runFeedPull(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	trackedOnly, _ := cmd.Flags().GetBool("tracked-only")

	source, err := initFeed(cfg)
	if err != nil {
		return err
	}

	raw, err := source.Fetch(cmd.Context())
	if err != nil {
		return err
	}

	observations := make([]inventory.Observation, 0, len(raw))
	for _, entry := range raw {
		observations = append(observations, inventory.Normalize(entry))
	}

	if trackedOnly {
		skus, err := initTracked(cfg).Load()
		if err != nil {
			return err
		}
		observations = inventory.FilterTracked(observations, skus)
	}

	thresholds := inventory.Thresholds{
		Critical: cfg.Thresholds.Critical,
		Warning:  cfg.Thresholds.Warning,
	}

	fmt.Printf("Parsed %d products\n\n", len(observations))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SKU\tPRODUCT\tGROUP\tSTOCK\tLEVEL\n")
	for i, obs := range observations {
		if limit > 0 && i >= limit {
			break
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			obs.SKU, obs.Name, obs.GroupID, obs.Stock,
			inventory.Classify(obs.Stock, thresholds),
		)
	}
	w.Flush()

	return nil
}
