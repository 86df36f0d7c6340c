// cmd/planner-cli/commands/run.go
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"trip-planner/internal/models"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute the pipeline once with the example trip",
	Run:   runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	application := newApp(ctx)
	defer application.Close(ctx)

	res, err := application.Runner.Run(ctx, models.DefaultTripRequest().ToInputs())
	HandleError(err, "run failed")
	fmt.Println(res.Result)
}
