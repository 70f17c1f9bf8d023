package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rcliao/workout-tracker/internal/training"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Retrieve a stored package",
		Args:  cobra.ExactArgs(1),
		Run:   runGet,
	}

	cmd.Flags().Bool("summary", false, "Also print the package summary line")

	RootCmd.AddCommand(cmd)
}

func runGet(cmd *cobra.Command, args []string) {
	summary, _ := cmd.Flags().GetBool("summary")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p, err := s.Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("get", err)
	}

	b, _ := json.MarshalIndent(p, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))

	if summary {
		line, err := training.Process(p.Type, p.Data)
		if err != nil {
			exitErr("summary", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
