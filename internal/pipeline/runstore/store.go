// internal/pipeline/runstore/store.go
package runstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"trip-planner/internal/common/errors"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Run is a persisted pipeline execution.
type Run struct {
	ID          string
	Status      string
	Inputs      map[string]string
	Result      string
	Error       string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// TaskOutput is one task's persisted raw output within a run.
type TaskOutput struct {
	RunID      string
	TaskName   string
	Position   int
	Output     string
	DurationMs int64
	CreatedAt  time.Time
}

// Store persists run history to Postgres. Replay, train and test read
// past runs back from here.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateRun inserts a new run in running state.
func (s *Store) CreateRun(ctx context.Context, runID string, inputs map[string]string) error {
	inputsJSON, _ := json.Marshal(inputs)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pipeline_runs (id, status, inputs, started_at) VALUES ($1, $2, $3, $4)`,
		runID, StatusRunning, inputsJSON, time.Now().UTC())
	if err != nil {
		return errors.NewRunStoreFailedError(err)
	}
	return nil
}

// CompleteRun marks a run completed with its final result.
func (s *Store) CompleteRun(ctx context.Context, runID, result string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE pipeline_runs SET status = $1, result = $2, completed_at = $3 WHERE id = $4`,
		StatusCompleted, result, time.Now().UTC(), runID)
	if err != nil {
		return errors.NewRunStoreFailedError(err)
	}
	return nil
}

// FailRun marks a run failed with the error message.
func (s *Store) FailRun(ctx context.Context, runID, errMsg string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE pipeline_runs SET status = $1, error = $2, completed_at = $3 WHERE id = $4`,
		StatusFailed, errMsg, time.Now().UTC(), runID)
	if err != nil {
		return errors.NewRunStoreFailedError(err)
	}
	return nil
}

// SaveTaskOutput persists one task's raw output and timing.
func (s *Store) SaveTaskOutput(ctx context.Context, out *TaskOutput) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pipeline_task_outputs (run_id, task_name, position, output, duration_ms, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		out.RunID, out.TaskName, out.Position, out.Output, out.DurationMs, time.Now().UTC())
	if err != nil {
		return errors.NewRunStoreFailedError(err)
	}
	return nil
}

// GetRun loads a run by id.
func (s *Store) GetRun(ctx context.Context, runID string) (*Run, error) {
	var run Run
	var inputsJSON []byte
	var result, errMsg sql.NullString
	var completedAt sql.NullTime

	err := s.db.QueryRowContext(ctx,
		`SELECT id, status, inputs, result, error, started_at, completed_at
		 FROM pipeline_runs WHERE id = $1`, runID).
		Scan(&run.ID, &run.Status, &inputsJSON, &result, &errMsg, &run.StartedAt, &completedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewRunNotFoundError(runID)
	}
	if err != nil {
		return nil, errors.NewRunStoreFailedError(err)
	}

	if len(inputsJSON) > 0 {
		_ = json.Unmarshal(inputsJSON, &run.Inputs)
	}
	run.Result = result.String
	run.Error = errMsg.String
	if completedAt.Valid {
		run.CompletedAt = &completedAt.Time
	}
	return &run, nil
}

// ListTaskOutputs returns a run's task outputs in execution order.
func (s *Store) ListTaskOutputs(ctx context.Context, runID string) ([]TaskOutput, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, task_name, position, output, duration_ms, created_at
		 FROM pipeline_task_outputs WHERE run_id = $1 ORDER BY position`, runID)
	if err != nil {
		return nil, errors.NewRunStoreFailedError(err)
	}
	defer rows.Close()

	var outputs []TaskOutput
	for rows.Next() {
		var out TaskOutput
		if err := rows.Scan(&out.RunID, &out.TaskName, &out.Position, &out.Output,
			&out.DurationMs, &out.CreatedAt); err != nil {
			return nil, errors.NewRunStoreFailedError(err)
		}
		outputs = append(outputs, out)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewRunStoreFailedError(err)
	}
	return outputs, nil
}

// LatestRunID returns the most recently started run.
func (s *Store) LatestRunID(ctx context.Context) (string, error) {
	var runID string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM pipeline_runs ORDER BY started_at DESC LIMIT 1`).Scan(&runID)
	if err == sql.ErrNoRows {
		return "", errors.NewRunNotFoundError("latest")
	}
	if err != nil {
		return "", errors.NewRunStoreFailedError(err)
	}
	return runID, nil
}
