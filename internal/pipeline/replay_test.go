// internal/pipeline/replay_test.go
package pipeline

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"trip-planner/internal/agents"
	"trip-planner/internal/common/errors"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/common/validation"
	"trip-planner/internal/models"
	"trip-planner/internal/pipeline/contextstore"
	"trip-planner/internal/pipeline/runstore"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay_ResumesFromTask(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	inputsJSON := `{"origin":"Bogota, Colombia","destination":"Panama City, Panama","start_date":"11/01/2025","end_date":"11/15/2025","budget":"5K USD per person","travelers":"5","trip_type":"Vacations","accomodation":"Hotel","flights":"economic","user_preferences":"relax","recipient_email":"user@example.com","locale":"en"}`
	started := time.Now().UTC()

	mock.ExpectQuery("SELECT id, status, inputs, result, error, started_at, completed_at").
		WithArgs("prior-run").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "inputs", "result", "error", "started_at", "completed_at"}).
			AddRow("prior-run", runstore.StatusFailed, []byte(inputsJSON), nil, "task failed", started, nil))

	// The eight tasks before structure_itinerary have stored outputs.
	priorTasks := []string{
		TaskDestinationSearch, TaskFlightSearch, TaskAccommodationSearch,
		TaskTransportationSearch, TaskAttractionSearch, TaskDiningSearch,
		TaskBudgetAnalysis, TaskCostOptimization,
	}
	rows := sqlmock.NewRows([]string{"run_id", "task_name", "position", "output", "duration_ms", "created_at"})
	for i, name := range priorTasks {
		rows.AddRow("prior-run", name, i, cannedOutputs[markerFor(name)], int64(500), started)
	}
	mock.ExpectQuery("SELECT run_id, task_name, position, output, duration_ms, created_at").
		WithArgs("prior-run").
		WillReturnRows(rows)

	// The replay persists as a fresh run: nine remaining tasks plus the
	// bookkeeping rows.
	mock.ExpectExec("INSERT INTO pipeline_runs").
		WillReturnResult(sqlmock.NewResult(0, 1))
	for i := 0; i < 9; i++ {
		mock.ExpectExec("INSERT INTO pipeline_task_outputs").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectExec("UPDATE pipeline_runs SET status").
		WillReturnResult(sqlmock.NewResult(0, 1))

	fake := newFakeLLM()
	runner, err := NewRunner(
		agents.NewRegistry(),
		fake,
		nil,
		&fakeEmailSender{},
		contextstore.NewMemoryStore(),
		runstore.New(db),
		validation.NewValidator(),
		logger.NewTestLogger(t),
		Options{},
	)
	require.NoError(t, err)

	res, err := runner.Replay(context.Background(), "prior-run", TaskStructureItinerary)
	require.NoError(t, err)
	assert.NotEqual(t, "prior-run", res.RunID)

	// Research and budget tasks came from storage, not the model.
	assert.Empty(t, fake.promptsFor("destination_info.md"))
	assert.Empty(t, fake.promptsFor("budget_analysis.md"))

	// The resumed task sees the seeded context.
	prompts := fake.promptsFor("structured_itinerary.md")
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "## "+TaskDiningSearch)

	var emailResp models.TravelEmailResponse
	require.NoError(t, json.Unmarshal([]byte(res.Result), &emailResp))
	assert.Equal(t, models.EmailStatusSent, emailResp.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplay_UnknownTaskRejected(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner, err := NewRunner(
		agents.NewRegistry(),
		newFakeLLM(),
		nil,
		nil,
		contextstore.NewMemoryStore(),
		runstore.New(db),
		validation.NewValidator(),
		logger.NewTestLogger(t),
		Options{},
	)
	require.NoError(t, err)

	_, err = runner.Replay(context.Background(), "prior-run", "no_such_task")
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeTaskNotFound, stdErr.Code)
}

func TestReplay_RequiresRunStore(t *testing.T) {
	runner, _ := newTestRunner(t, newFakeLLM(), nil)

	_, err := runner.Replay(context.Background(), "prior-run", TaskStructureItinerary)
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeRunStoreFailed, stdErr.Code)
}

func markerFor(taskName string) string {
	task, _ := TaskByName(taskName)
	return task.ExpectedOutput
}
