// internal/pipeline/runner.go
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"trip-planner/internal/agents"
	"trip-planner/internal/common/errors"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/common/metrics"
	"trip-planner/internal/common/observability"
	"trip-planner/internal/common/validation"
	"trip-planner/internal/llm"
	"trip-planner/internal/models"
	"trip-planner/internal/pipeline/contextstore"
	"trip-planner/internal/pipeline/runstore"
	"trip-planner/internal/tools/email"
	"trip-planner/internal/tools/websearch"

	"github.com/google/uuid"
)

// Options holds the runner's tunables.
type Options struct {
	TaskTimeout      time.Duration
	SchemaMaxRepairs int
	Obs              *observability.Observability
}

// Runner executes the fixed task sequence. All collaborators are injected;
// the runner owns no ambient state.
type Runner struct {
	tasks     []Task
	agents    *agents.Registry
	llm       llm.Client
	search    websearch.Searcher // optional
	email     email.Sender       // optional
	ctxStore  contextstore.Store
	runStore  *runstore.Store // optional, enables replay/train/test
	validator *validation.Validator
	logger    logger.Logger
	opts      Options
}

// RunResult is the outcome of a completed pipeline run.
type RunResult struct {
	RunID   string            `json:"run_id"`
	Result  string            `json:"result"`
	Outputs map[string]string `json:"outputs,omitempty"`
}

// NewRunner wires the pipeline. search, email and runStore may be nil; the
// corresponding capabilities degrade gracefully (no findings, email task
// reports pending, no run history).
func NewRunner(
	registry *agents.Registry,
	llmClient llm.Client,
	search websearch.Searcher,
	emailSender email.Sender,
	ctxStore contextstore.Store,
	runStore *runstore.Store,
	validator *validation.Validator,
	log logger.Logger,
	opts Options,
) (*Runner, error) {
	if opts.TaskTimeout == 0 {
		opts.TaskTimeout = 2 * time.Minute
	}
	if opts.SchemaMaxRepairs == 0 {
		opts.SchemaMaxRepairs = 1
	}
	if err := models.RegisterSchemas(validator); err != nil {
		return nil, err
	}
	return &Runner{
		tasks:     Tasks(),
		agents:    registry,
		llm:       llmClient,
		search:    search,
		email:     emailSender,
		ctxStore:  ctxStore,
		runStore:  runStore,
		validator: validator,
		logger:    log.WithFields(map[string]interface{}{"component": "pipeline"}),
		opts:      opts,
	}, nil
}

// Run executes every task in order and returns the last task's output as the
// pipeline result. Any task failure fails the whole run.
func (r *Runner) Run(ctx context.Context, inputs map[string]string) (*RunResult, error) {
	return r.run(ctx, uuid.New().String(), inputs, "", nil)
}

// Replay re-executes a stored run from the named task onward, reusing the
// persisted outputs of all earlier tasks as context.
func (r *Runner) Replay(ctx context.Context, runID, fromTask string) (*RunResult, error) {
	if r.runStore == nil {
		return nil, errors.NewRunStoreFailedError(fmt.Errorf("run store not configured"))
	}
	if _, ok := TaskByName(fromTask); !ok {
		return nil, errors.NewTaskNotFoundError(fromTask)
	}

	prior, err := r.runStore.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	stored, err := r.runStore.ListTaskOutputs(ctx, runID)
	if err != nil {
		return nil, err
	}

	seed := make(map[string]string)
	for _, out := range stored {
		if out.TaskName == fromTask {
			break
		}
		seed[out.TaskName] = out.Output
	}

	return r.run(ctx, uuid.New().String(), prior.Inputs, fromTask, seed)
}

func (r *Runner) run(ctx context.Context, runID string, inputs map[string]string, fromTask string, seed map[string]string) (*RunResult, error) {
	log := r.logger.WithFields(map[string]interface{}{"runId": runID})
	log.Info("pipeline run started", map[string]interface{}{
		"origin":      inputs["origin"],
		"destination": inputs["destination"],
		"taskCount":   len(r.tasks),
	})

	metrics.RunsActive.Inc()
	defer metrics.RunsActive.Dec()

	if r.runStore != nil {
		if err := r.runStore.CreateRun(ctx, runID, inputs); err != nil {
			return nil, err
		}
	}

	outputs := make(map[string]string, len(r.tasks))
	var contextBlocks []string
	skipping := fromTask != ""

	for k, v := range seed {
		outputs[k] = v
	}

	result := ""
	for i, task := range r.tasks {
		if skipping {
			if task.Name == fromTask {
				skipping = false
			} else {
				if out, ok := seed[task.Name]; ok {
					contextBlocks = append(contextBlocks, contextBlock(task.Name, out))
					result = out
				}
				continue
			}
		}

		start := time.Now()
		output, err := r.executeTask(ctx, runID, task, inputs, contextBlocks, outputs)
		duration := time.Since(start)

		if err != nil {
			code := "UNKNOWN"
			if stdErr, ok := err.(*errors.StandardError); ok {
				code = string(stdErr.Code)
			}
			metrics.TasksFailed.WithLabelValues(task.Name, code).Inc()
			if r.opts.Obs != nil {
				r.opts.Obs.RecordTaskExecuted(ctx, task.Name, runstore.StatusFailed)
			}
			r.failRun(ctx, log, runID, task.Name, err)
			return nil, err
		}

		metrics.TasksCompleted.WithLabelValues(task.Name).Inc()
		metrics.TaskDuration.WithLabelValues(task.Name).Observe(duration.Seconds())
		if r.opts.Obs != nil {
			r.opts.Obs.RecordTaskExecuted(ctx, task.Name, runstore.StatusCompleted)
			r.opts.Obs.RecordTaskDuration(ctx, task.Name, duration)
		}
		log.Info("task completed", map[string]interface{}{
			"task":       task.Name,
			"durationMs": duration.Milliseconds(),
		})

		outputs[task.Name] = output
		contextBlocks = append(contextBlocks, contextBlock(task.Name, output))
		result = output

		if err := r.ctxStore.Put(ctx, contextstore.Key(runID, task.Name), output); err != nil {
			r.failRun(ctx, log, runID, task.Name, err)
			return nil, err
		}
		if r.runStore != nil {
			if err := r.runStore.SaveTaskOutput(ctx, &runstore.TaskOutput{
				RunID:      runID,
				TaskName:   task.Name,
				Position:   i,
				Output:     output,
				DurationMs: duration.Milliseconds(),
			}); err != nil {
				r.failRun(ctx, log, runID, task.Name, err)
				return nil, err
			}
		}
	}

	metrics.RunsCompleted.WithLabelValues(runstore.StatusCompleted).Inc()
	if r.runStore != nil {
		_ = r.runStore.CompleteRun(ctx, runID, result)
	}

	log.Info("pipeline run completed", map[string]interface{}{})
	return &RunResult{RunID: runID, Result: result, Outputs: outputs}, nil
}

// failRun records the run-level failure outcome: the completion metric, the
// failure log line and the stored run's terminal status. Every error exit of
// the task loop goes through here so a run never stays in state running.
func (r *Runner) failRun(ctx context.Context, log logger.Logger, runID, taskName string, err error) {
	metrics.RunsCompleted.WithLabelValues(runstore.StatusFailed).Inc()
	log.Error("task failed", map[string]interface{}{
		"task":  taskName,
		"error": err.Error(),
	})
	if r.runStore != nil {
		_ = r.runStore.FailRun(ctx, runID, err.Error())
	}
}

func (r *Runner) executeTask(ctx context.Context, runID string, task Task, inputs map[string]string, contextBlocks []string, outputs map[string]string) (string, error) {
	agent, err := r.agents.Get(task.AgentName)
	if err != nil {
		return "", err
	}

	taskCtx, cancel := context.WithTimeout(ctx, r.opts.TaskTimeout)
	defer cancel()

	findings := r.gatherFindings(taskCtx, task, agent, inputs)
	prompt := r.buildPrompt(task, agent, inputs, contextBlocks, outputs, findings, "")

	resp, err := r.llm.Generate(taskCtx, &llm.GenerateRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}
	output := resp.Text

	if task.Structured() {
		output, err = r.validateStructured(taskCtx, task, agent, inputs, contextBlocks, outputs, findings, output)
		if err != nil {
			return "", err
		}
	}

	if task.Name == TaskSendItineraryEmail {
		output = r.deliverEmail(taskCtx, inputs, output)
	}

	return output, nil
}

// validateStructured decodes and schema-checks a structured task output,
// re-prompting with the validation errors up to SchemaMaxRepairs times.
func (r *Runner) validateStructured(ctx context.Context, task Task, agent agents.Agent, inputs map[string]string, contextBlocks []string, outputs map[string]string, findings *websearch.Findings, output string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= r.opts.SchemaMaxRepairs; attempt++ {
		if attempt > 0 {
			prompt := r.buildPrompt(task, agent, inputs, contextBlocks, outputs, findings, lastErr.Error())
			resp, err := r.llm.Generate(ctx, &llm.GenerateRequest{Prompt: prompt})
			if err != nil {
				return "", err
			}
			output = resp.Text
		}

		doc := extractJSON(output)

		var raw interface{}
		if err := json.Unmarshal([]byte(doc), &raw); err != nil {
			lastErr = errors.NewOutputDecodeFailedError(task.Name, err)
			continue
		}

		result, err := r.validator.Validate(task.OutputSchema, []byte(doc))
		if err != nil {
			return "", errors.NewSchemaValidationFailedError(task.Name, err.Error())
		}
		if result.Valid {
			normalized, err := models.NormalizeTaskOutput(task.OutputSchema, []byte(doc))
			if err != nil {
				return "", errors.NewOutputDecodeFailedError(task.Name, err)
			}
			return string(normalized), nil
		}
		lastErr = errors.NewSchemaValidationFailedError(task.Name, result.ErrorSummary())
	}

	return "", lastErr
}

// deliverEmail sends the generated email through the email tool and folds the
// send outcome back into the task output. Delivery failure never fails the
// run; it surfaces as status "failed" in the response.
func (r *Runner) deliverEmail(ctx context.Context, inputs map[string]string, output string) string {
	var emailResp models.TravelEmailResponse
	if err := json.Unmarshal([]byte(output), &emailResp); err != nil {
		return output
	}
	emailResp.EnsureDefaults()

	if r.email == nil {
		emailResp.Status = models.EmailStatusPending
		emailResp.Message = "email sender not configured"
	} else {
		sent := r.email.Send(ctx, &models.SendEmailInput{
			Recipient: inputs["recipient_email"],
			Subject:   emailResp.Subject,
			Body:      emailResp.Body,
		})
		emailResp.Status = sent.Status
		emailResp.Message = sent.Message
	}

	encoded, err := json.Marshal(emailResp)
	if err != nil {
		return output
	}
	return string(encoded)
}

func (r *Runner) gatherFindings(ctx context.Context, task Task, agent agents.Agent, inputs map[string]string) *websearch.Findings {
	if !task.UseWebSearch || r.search == nil || !agent.HasTool(agents.ToolWebSearch) {
		return nil
	}

	query := strings.TrimSpace(strings.ReplaceAll(task.Name, "_", " ") + " " +
		inputs["destination"] + " " + inputs["start_date"])
	findings, err := r.search.Search(ctx, query)
	if err != nil {
		r.logger.Warn("web search failed, continuing without findings", map[string]interface{}{
			"task":  task.Name,
			"error": err.Error(),
		})
		return nil
	}
	return findings
}

func (r *Runner) buildPrompt(task Task, agent agents.Agent, inputs map[string]string, contextBlocks []string, outputs map[string]string, findings *websearch.Findings, repairErrors string) string {
	var parts []string

	parts = append(parts, agent.Persona(inputs))
	parts = append(parts, "Task: "+agents.Interpolate(task.Description, inputs))
	parts = append(parts, "Expected output: "+task.ExpectedOutput)

	if task.ContextTasks != nil {
		for _, dep := range task.ContextTasks {
			if out, ok := outputs[dep]; ok {
				parts = append(parts, contextBlock(dep, out))
			}
		}
	} else if len(contextBlocks) > 0 {
		parts = append(parts, "Context from earlier tasks:")
		parts = append(parts, contextBlocks...)
	}

	if block := findings.PromptBlock(); block != "" {
		parts = append(parts, block)
	}

	if task.Structured() {
		parts = append(parts, "Respond with a single JSON object only, no prose around it.")
	}

	if repairErrors != "" {
		parts = append(parts, "Your previous response was rejected: "+repairErrors)
		parts = append(parts, "Produce a corrected JSON object.")
	}

	return strings.Join(parts, "\n\n")
}

func contextBlock(taskName, output string) string {
	return "## " + taskName + "\n" + output
}

// extractJSON strips markdown code fences the model may wrap around JSON.
func extractJSON(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		return strings.TrimSpace(trimmed)
	}

	// Fall back to the outermost braces when prose surrounds the object.
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end > start {
		return trimmed[start : end+1]
	}
	return trimmed
}
