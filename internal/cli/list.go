package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rcliao/workout-tracker/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored packages",
		Run:   runList,
	}

	cmd.Flags().StringP("type", "t", "", "Filter by workout type")
	cmd.Flags().IntP("limit", "l", 20, "Max results")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	typ, _ := cmd.Flags().GetString("type")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	packages, err := s.List(cmd.Context(), store.ListParams{
		Type:  typ,
		Limit: limit,
	})
	if err != nil {
		exitErr("list", err)
	}

	if jsonOutput() {
		b, _ := json.MarshalIndent(packages, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}

	for _, p := range packages {
		fields := make([]string, len(p.Data))
		for i, f := range p.Data {
			fields[i] = strconv.FormatFloat(f, 'f', -1, 64)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", p.ID, p.Type, strings.Join(fields, " "))
	}
}
