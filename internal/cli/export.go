package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored packages as JSON",
		Long:  "Export stored packages as a JSON feed. Filter by workout type with -t.",
		Args:  cobra.NoArgs,
		Run:   runExport,
	}

	cmd.Flags().StringP("type", "t", "", "Filter by workout type")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	typ, _ := cmd.Flags().GetString("type")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	packages, err := s.ExportAll(cmd.Context(), typ)
	if err != nil {
		exitErr("export", err)
	}

	b, _ := json.MarshalIndent(packages, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
