package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rcliao/workout-tracker/internal/feed"
	"github.com/rcliao/workout-tracker/internal/model"
	"github.com/rcliao/workout-tracker/internal/training"
	"github.com/spf13/cobra"
)

func init() {
	processCmd := &cobra.Command{
		Use:   "process CODE FIELD...",
		Short: "Summarize a single sensor package",
		Long: "Summarize a single sensor package. Fields are positional:\n" +
			"  SWM action duration weight pool_length pool_laps\n" +
			"  RUN action duration weight\n" +
			"  WLK action duration weight height",
		Args: cobra.MinimumNArgs(1),
		RunE: runProcess,
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Summarize the built-in sample packages",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Summarize a batch of packages",
		Long: "Summarize a batch of packages from the store (default), a feed file or stdin. " +
			"The batch stops at the first bad package unless --keep-going is set.",
		Args: cobra.NoArgs,
		RunE: runRun,
	}
	runCmd.Flags().StringP("input", "i", "", "Read packages from a feed file (- for stdin)")
	runCmd.Flags().StringP("type", "t", "", "Only stored packages of this type")
	runCmd.Flags().Bool("keep-going", false, "Report bad packages and continue")

	RootCmd.AddCommand(processCmd, demoCmd, runCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	fields, err := feed.ParseFields(args[1:])
	if err != nil {
		return err
	}
	if !jsonOutput() {
		line, err := training.Process(args[0], fields)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
		return err
	}

	results, err := training.RunBatch([]model.Package{{Type: args[0], Data: fields}}, training.PolicyHalt)
	if err != nil {
		return err
	}
	return writeResults(cmd.OutOrStdout(), results)
}

func runDemo(cmd *cobra.Command, args []string) error {
	return summarize(cmd, training.SamplePackages(), training.PolicyHalt)
}

func runRun(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	typ, _ := cmd.Flags().GetString("type")
	keepGoing, _ := cmd.Flags().GetBool("keep-going")

	policy := training.PolicyHalt
	if keepGoing {
		policy = training.PolicySkip
	}

	var packages []model.Package
	var err error
	if input != "" {
		packages, err = readFeed(cmd, input)
	} else {
		packages, err = loadStored(cmd, typ)
	}
	if err != nil {
		return err
	}

	return summarize(cmd, packages, policy)
}

func readFeed(cmd *cobra.Command, input string) ([]model.Package, error) {
	var r io.Reader = cmd.InOrStdin()
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("open feed: %w", err)
		}
		defer f.Close()
		r = f
	}
	return feed.Decode(r)
}

func loadStored(cmd *cobra.Command, typ string) ([]model.Package, error) {
	s, err := openStore()
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer s.Close()
	return s.ExportAll(cmd.Context(), typ)
}

// summarize writes the lines produced before a halt, then returns the error.
func summarize(cmd *cobra.Command, packages []model.Package, policy training.Policy) error {
	results, batchErr := training.RunBatch(packages, policy)
	if err := writeResults(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "skip: package %d (%s): %v\n", i, r.Package.Type, r.Err)
		}
	}
	return batchErr
}

func writeResults(w io.Writer, results []training.Result) error {
	if jsonOutput() {
		infos := make([]training.InfoMessage, 0, len(results))
		for _, r := range results {
			if r.Err == nil {
				infos = append(infos, r.Info)
			}
		}
		b, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if _, err := fmt.Fprintln(w, r.Line()); err != nil {
			return err
		}
	}
	return nil
}
