package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import packages from a feed",
		Long:  "Import packages from a text or JSON feed (stdin or --input). Accepts the format produced by export.",
		Args:  cobra.NoArgs,
		Run:   runImport,
	}

	cmd.Flags().StringP("input", "i", "-", "Feed file (- for stdin)")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	input, _ := cmd.Flags().GetString("input")

	packages, err := readFeed(cmd, input)
	if err != nil {
		exitErr("read feed", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), packages)
	if err != nil {
		exitErr("import", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
}
