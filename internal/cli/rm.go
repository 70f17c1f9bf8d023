package cli

import (
	"fmt"

	"github.com/rcliao/workout-tracker/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm [ID]",
		Short: "Delete stored packages",
		Args:  cobra.MaximumNArgs(1),
		Run:   runRm,
	}

	cmd.Flags().StringP("type", "t", "", "Delete every package of this type")
	cmd.Flags().Bool("hard", false, "Permanent delete (irreversible)")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	typ, _ := cmd.Flags().GetString("type")
	hard, _ := cmd.Flags().GetBool("hard")

	var id string
	if len(args) > 0 {
		id = args[0]
	}
	if id == "" && typ == "" {
		exitErr("rm", fmt.Errorf("an ID or --type is required"))
	}
	if id != "" && typ != "" {
		exitErr("rm", fmt.Errorf("give either an ID or --type, not both"))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	n, err := s.Rm(cmd.Context(), store.RmParams{
		ID:   id,
		Type: typ,
		Hard: hard,
	})
	if err != nil {
		exitErr("rm", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"removed":%d}`+"\n", n)
}
