// cmd/planner-cli/commands/test.go
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"trip-planner/internal/models"
)

var (
	testIterations int
	testModel      string
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run scored pipeline iterations against an evaluator model",
	Run:   runTest,
}

func init() {
	testCmd.Flags().IntVar(&testIterations, "iterations", 1, "Number of pipeline iterations to score")
	testCmd.Flags().StringVar(&testModel, "model", "", "Evaluator model id (defaults to the configured model)")
}

func runTest(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	application := newApp(ctx)
	defer application.Close(ctx)

	evals, err := application.Runner.Test(ctx, testIterations, testModel, models.DefaultTripRequest().ToInputs())
	HandleError(err, "test failed")

	for _, e := range evals {
		fmt.Printf("iteration %d (run %s): score %.1f\n", e.Iteration, e.RunID, e.Score)
		if e.Feedback != "" {
			fmt.Printf("  %s\n", e.Feedback)
		}
	}
}
