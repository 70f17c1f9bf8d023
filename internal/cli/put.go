package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rcliao/workout-tracker/internal/feed"
	"github.com/rcliao/workout-tracker/internal/store"
	"github.com/rcliao/workout-tracker/internal/training"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "put CODE FIELD...",
		Short: "Store a sensor package",
		Long:  "Store a sensor package in the feed. The package is checked against its workout type unless --raw is set.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runPut,
	}

	cmd.Flags().String("note", "", "Free-form note")
	cmd.Flags().Bool("raw", false, "Store without checking type and field count")

	RootCmd.AddCommand(cmd)
}

func runPut(cmd *cobra.Command, args []string) {
	note, _ := cmd.Flags().GetString("note")
	raw, _ := cmd.Flags().GetBool("raw")

	fields, err := feed.ParseFields(args[1:])
	if err != nil {
		exitErr("put", err)
	}

	if !raw {
		if _, err := training.Read(args[0], fields); err != nil {
			exitErr("put", err)
		}
	} else if !training.Known(args[0]) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown workout type %q, a halting run will stop here\n", args[0])
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	p, err := s.Put(cmd.Context(), store.PutParams{
		Type: args[0],
		Data: fields,
		Note: note,
	})
	if err != nil {
		exitErr("put", err)
	}

	b, _ := json.Marshal(p)
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}
