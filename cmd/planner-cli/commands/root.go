// cmd/planner-cli/commands/root.go
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trip-planner/internal/app"
	"trip-planner/internal/common/config"
)

var rootCmd = &cobra.Command{
	Use:   "planner-cli",
	Short: "Trip planner pipeline operations",
	Long: `planner-cli drives the trip planning pipeline from the command line:
single runs, training-record generation, replays of stored runs and scored
test iterations.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(testCmd)
}

// HandleError prints error and exits
func HandleError(err error, msg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
		os.Exit(1)
	}
}

// newApp loads the configuration and wires the full application for a
// subcommand.
func newApp(ctx context.Context) *app.App {
	cfg, err := config.Load()
	HandleError(err, "load config")

	application, err := app.New(ctx, cfg)
	HandleError(err, "init application")
	return application
}
