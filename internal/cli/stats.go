package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show feed statistics",
		Long:  "Show how many packages the feed holds, split by workout type.",
		Args:  cobra.NoArgs,
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), getDBPath())
	if err != nil {
		exitErr("stats", err)
	}

	if jsonOutput() {
		b, _ := json.MarshalIndent(stats, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "feed:\t%s (%s)\n", stats.DBPath, humanize.Bytes(uint64(stats.DBSizeBytes)))
	fmt.Fprintf(w, "packages:\t%d active, %d deleted\n", stats.ActivePackages, stats.TotalPackages-stats.ActivePackages)
	for _, ts := range stats.Types {
		fmt.Fprintf(w, "  %s\t%d\n", ts.Type, ts.Count)
	}
	w.Flush()
}
