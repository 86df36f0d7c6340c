// internal/pipeline/contextstore/store.go
package contextstore

import "context"

// Store holds per-run task outputs keyed by run:<id>:task:<name>. It is
// injected into the runner explicitly; there is no ambient memory.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}

// Key builds the canonical context key for a task output within a run.
func Key(runID, taskName string) string {
	return "run:" + runID + ":task:" + taskName
}
