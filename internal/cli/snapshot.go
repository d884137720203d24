package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mkadlec/stockwatch/pkg/inventory"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Inspect the stored stock snapshot",
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the snapshot recorded by the previous run",
	RunE:  runSnapshotShow,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
}

func runSnapshotShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := initStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	snap, err := store.Load(cmd.Context())
	if err != nil {
		return err
	}

	if len(snap) == 0 {
		fmt.Println("Snapshot is empty. Run \"stockwatch check\" to record a baseline.")
		return nil
	}

	skus := make([]string, 0, len(snap))
	for sku := range snap {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	thresholds := inventory.Thresholds{
		Critical: cfg.Thresholds.Critical,
		Warning:  cfg.Thresholds.Warning,
	}

	fmt.Printf("%d SKUs in snapshot (%s)\n\n", len(snap), cfg.Snapshot.Path)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SKU\tSTOCK\tLEVEL\n")
	for _, sku := range skus {
		fmt.Fprintf(w, "%s\t%d\t%s\n", sku, snap[sku], inventory.Classify(snap[sku], thresholds))
	}
	w.Flush()

	return nil
}
