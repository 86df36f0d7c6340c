// internal/pipeline/runstore/store_test.go
package runstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"trip-planner/internal/common/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestCreateRun(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO pipeline_runs").
		WithArgs("run-1", StatusRunning, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.CreateRun(context.Background(), "run-1", map[string]string{"destination": "Panama City"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteAndFailRun(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("UPDATE pipeline_runs SET status").
		WithArgs(StatusCompleted, "final document", sqlmock.AnyArg(), "run-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE pipeline_runs SET status").
		WithArgs(StatusFailed, "llm gave up", sqlmock.AnyArg(), "run-2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.CompleteRun(context.Background(), "run-1", "final document"))
	require.NoError(t, store.FailRun(context.Background(), "run-2", "llm gave up"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTaskOutput(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO pipeline_task_outputs").
		WithArgs("run-1", "flight_search", 1, `{"flight_options":[]}`, int64(1200), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.SaveTaskOutput(context.Background(), &TaskOutput{
		RunID:      "run-1",
		TaskName:   "flight_search",
		Position:   1,
		Output:     `{"flight_options":[]}`,
		DurationMs: 1200,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRun(t *testing.T) {
	store, mock := newMockStore(t)

	started := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	completed := started.Add(5 * time.Minute)

	mock.ExpectQuery("SELECT id, status, inputs, result, error, started_at, completed_at").
		WithArgs("run-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "inputs", "result", "error", "started_at", "completed_at"}).
			AddRow("run-1", StatusCompleted, []byte(`{"destination":"Panama City"}`), "final document", nil, started, completed))

	run, err := store.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, StatusCompleted, run.Status)
	assert.Equal(t, "Panama City", run.Inputs["destination"])
	assert.Equal(t, "final document", run.Result)
	assert.Empty(t, run.Error)
	require.NotNil(t, run.CompletedAt)
	assert.Equal(t, completed, *run.CompletedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRun_NotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, status, inputs").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetRun(context.Background(), "missing")
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeRunNotFound, stdErr.Code)
}

func TestListTaskOutputs(t *testing.T) {
	store, mock := newMockStore(t)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT run_id, task_name, position, output, duration_ms, created_at").
		WithArgs("run-1").
		WillReturnRows(sqlmock.NewRows([]string{"run_id", "task_name", "position", "output", "duration_ms", "created_at"}).
			AddRow("run-1", "destination_search", 0, `{"overview":"x"}`, int64(900), now).
			AddRow("run-1", "flight_search", 1, `{"flight_options":[]}`, int64(1100), now))

	outputs, err := store.ListTaskOutputs(context.Background(), "run-1")
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "destination_search", outputs[0].TaskName)
	assert.Equal(t, 0, outputs[0].Position)
	assert.Equal(t, "flight_search", outputs[1].TaskName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLatestRunID(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id FROM pipeline_runs ORDER BY started_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("run-9"))

	runID, err := store.LatestRunID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "run-9", runID)
}
