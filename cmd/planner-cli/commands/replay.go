// cmd/planner-cli/commands/replay.go
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	replayRunID    string
	replayFromTask string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Re-run a stored pipeline run from a given task onward",
	Run:   runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&replayRunID, "run", "", "Run id to replay (defaults to the latest run)")
	replayCmd.Flags().StringVar(&replayFromTask, "task", "", "Task name to replay from")
	_ = replayCmd.MarkFlagRequired("task")
}

func runReplay(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	application := newApp(ctx)
	defer application.Close(ctx)

	runID := replayRunID
	if runID == "" {
		latest, err := application.RunStore.LatestRunID(ctx)
		HandleError(err, "resolve latest run")
		runID = latest
	}

	res, err := application.Runner.Replay(ctx, runID, replayFromTask)
	HandleError(err, "replay failed")
	fmt.Println(res.Result)
}
