// internal/pipeline/task.go
package pipeline

// Task describes one step of the sequential pipeline. Tasks carry no state;
// the runner threads the accumulated context through them in order.
type Task struct {
	Name           string
	AgentName      string
	Description    string // {field} placeholders resolved from the run inputs
	ExpectedOutput string
	OutputSchema   string // schema name for structured tasks, empty for free text
	UseWebSearch   bool
	ContextTasks   []string // explicit dependencies; nil means full prior context
}

// Structured reports whether the task output must decode and validate as JSON.
func (t Task) Structured() bool {
	return t.OutputSchema != ""
}
