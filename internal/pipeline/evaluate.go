// internal/pipeline/evaluate.go
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"trip-planner/internal/llm"
)

// TrainingRecord captures one training iteration's outcome.
type TrainingRecord struct {
	Iteration int               `json:"iteration"`
	RunID     string            `json:"run_id"`
	Result    string            `json:"result"`
	Outputs   map[string]string `json:"outputs"`
}

// Train runs the pipeline for the given number of iterations over the same
// inputs and returns one record per iteration.
func (r *Runner) Train(ctx context.Context, iterations int, inputs map[string]string) ([]TrainingRecord, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	records := make([]TrainingRecord, 0, iterations)
	for i := 0; i < iterations; i++ {
		res, err := r.Run(ctx, inputs)
		if err != nil {
			return records, fmt.Errorf("training iteration %d: %w", i+1, err)
		}
		records = append(records, TrainingRecord{
			Iteration: i + 1,
			RunID:     res.RunID,
			Result:    res.Result,
			Outputs:   res.Outputs,
		})
	}
	return records, nil
}

// Evaluation is one scored test iteration.
type Evaluation struct {
	Iteration int     `json:"iteration"`
	RunID     string  `json:"run_id"`
	Score     float64 `json:"score"`
	Feedback  string  `json:"feedback,omitempty"`
}

// Test runs the pipeline for the given number of iterations and asks the
// evaluator model to score each final result from 0 to 10.
func (r *Runner) Test(ctx context.Context, iterations int, evalModel string, inputs map[string]string) ([]Evaluation, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	evals := make([]Evaluation, 0, iterations)
	for i := 0; i < iterations; i++ {
		res, err := r.Run(ctx, inputs)
		if err != nil {
			return evals, fmt.Errorf("test iteration %d: %w", i+1, err)
		}

		score, feedback := r.evaluate(ctx, evalModel, inputs, res.Result)
		evals = append(evals, Evaluation{
			Iteration: i + 1,
			RunID:     res.RunID,
			Score:     score,
			Feedback:  feedback,
		})
	}
	return evals, nil
}

func (r *Runner) evaluate(ctx context.Context, evalModel string, inputs map[string]string, result string) (float64, string) {
	prompt := strings.Join([]string{
		"You are evaluating the output of a trip-planning pipeline.",
		"Trip request: " + flattenInputs(inputs),
		"Pipeline result:\n" + result,
		`Score the result from 0 to 10 for completeness, feasibility and fit with the request. Respond with a JSON object {"score": <number>, "feedback": "<short explanation>"}.`,
	}, "\n\n")

	resp, err := r.llm.Generate(ctx, &llm.GenerateRequest{Prompt: prompt, Model: evalModel})
	if err != nil {
		r.logger.Warn("evaluation call failed", map[string]interface{}{"error": err.Error()})
		return 0, "evaluation failed: " + err.Error()
	}

	var parsed struct {
		Score    float64 `json:"score"`
		Feedback string  `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(extractJSON(resp.Text)), &parsed); err == nil {
		return parsed.Score, parsed.Feedback
	}

	// Last resort: take the first number in the reply.
	for _, field := range strings.Fields(resp.Text) {
		if score, err := strconv.ParseFloat(strings.Trim(field, ".,"), 64); err == nil {
			return score, resp.Text
		}
	}
	return 0, resp.Text
}

func flattenInputs(inputs map[string]string) string {
	encoded, _ := json.Marshal(inputs)
	return string(encoded)
}
