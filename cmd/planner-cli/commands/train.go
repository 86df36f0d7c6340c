// cmd/planner-cli/commands/train.go
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trip-planner/internal/models"
)

var (
	trainIterations int
	trainOutputPath string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Run pipeline iterations and write the training records to a file",
	Run:   runTrain,
}

func init() {
	trainCmd.Flags().IntVar(&trainIterations, "iterations", 1, "Number of pipeline iterations to run")
	trainCmd.Flags().StringVar(&trainOutputPath, "out", "training.json", "Path of the training records file")
}

func runTrain(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	application := newApp(ctx)
	defer application.Close(ctx)

	records, err := application.Runner.Train(ctx, trainIterations, models.DefaultTripRequest().ToInputs())
	HandleError(err, "train failed")

	encoded, err := json.MarshalIndent(records, "", "  ")
	HandleError(err, "encode training records")
	HandleError(os.WriteFile(trainOutputPath, encoded, 0o644), "write training records")
	fmt.Printf("wrote %d training records to %s\n", len(records), trainOutputPath)
}
