// Package cli implements the workout-tracker CLI commands.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rcliao/workout-tracker/internal/store"
	"github.com/rcliao/workout-tracker/internal/training"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "workout-tracker",
	Short: "Turn workout sensor packages into training summaries",
	Long: "A tiny CLI that converts raw sensor packages (SWM, RUN, WLK) into distance, " +
		"mean speed and calorie summaries. Packages can be stored in a SQLite feed and replayed.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $WORKOUT_TRACKER_DB or ~/.workout-tracker/packages.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := RootCmd.Execute(); err != nil {
		if errors.Is(err, training.ErrUnknownType) {
			fmt.Fprintln(os.Stderr, training.UnknownTypeMessage)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("WORKOUT_TRACKER_DB"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".workout-tracker", "packages.db")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

func jsonOutput() bool {
	return formatFlag == "json"
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
