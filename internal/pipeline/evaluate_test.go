// internal/pipeline/evaluate_test.go
package pipeline

import (
	"context"
	"strings"
	"sync"
	"testing"

	"trip-planner/internal/llm"
	"trip-planner/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalLLM layers a scripted evaluator reply on top of the canned task
// outputs.
type evalLLM struct {
	*fakeLLM
	mu         sync.Mutex
	evalText   string
	evalModels []string
}

func (e *evalLLM) Generate(ctx context.Context, req *llm.GenerateRequest) (*llm.GenerateResponse, error) {
	if strings.Contains(req.Prompt, "Score the result from 0 to 10") {
		e.mu.Lock()
		e.evalModels = append(e.evalModels, req.Model)
		e.mu.Unlock()
		return &llm.GenerateResponse{Text: e.evalText, Confidence: 0.9}, nil
	}
	return e.fakeLLM.Generate(ctx, req)
}

func TestTrain_OneRecordPerIteration(t *testing.T) {
	fake := newFakeLLM()
	runner, _ := newTestRunner(t, fake, &fakeEmailSender{})

	records, err := runner.Train(context.Background(), 2, models.DefaultTripRequest().ToInputs())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 1, records[0].Iteration)
	assert.Equal(t, 2, records[1].Iteration)
	assert.NotEqual(t, records[0].RunID, records[1].RunID)
	assert.Len(t, records[0].Outputs, 17)
	assert.NotEmpty(t, records[0].Result)
}

func TestTrain_RejectsNonPositiveIterations(t *testing.T) {
	runner, _ := newTestRunner(t, newFakeLLM(), &fakeEmailSender{})

	_, err := runner.Train(context.Background(), 0, models.DefaultTripRequest().ToInputs())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterations must be positive")
}

func TestTest_ScoresEachIteration(t *testing.T) {
	eval := &evalLLM{
		fakeLLM:  newFakeLLM(),
		evalText: `{"score": 8.5, "feedback": "complete and within budget"}`,
	}
	runner, _ := newTestRunner(t, eval, &fakeEmailSender{})

	evals, err := runner.Test(context.Background(), 2, "gemini-2.5-pro", models.DefaultTripRequest().ToInputs())
	require.NoError(t, err)
	require.Len(t, evals, 2)

	assert.Equal(t, 8.5, evals[0].Score)
	assert.Equal(t, "complete and within budget", evals[0].Feedback)
	assert.Equal(t, []string{"gemini-2.5-pro", "gemini-2.5-pro"}, eval.evalModels)
}

func TestTest_FallsBackToFirstNumber(t *testing.T) {
	eval := &evalLLM{
		fakeLLM:  newFakeLLM(),
		evalText: "I would rate this 7 out of 10.",
	}
	runner, _ := newTestRunner(t, eval, &fakeEmailSender{})

	evals, err := runner.Test(context.Background(), 1, "", models.DefaultTripRequest().ToInputs())
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Equal(t, 7.0, evals[0].Score)
}
