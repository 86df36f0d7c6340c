// internal/server/handler.go
package server

import (
	"context"
	"net/http"
	"strings"

	"trip-planner/internal/common/errors"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/models"
	"trip-planner/internal/pipeline"

	"github.com/labstack/echo/v4"
)

type handler struct {
	runner *pipeline.Runner
	logger logger.Logger
}

func newHandler(runner *pipeline.Runner, log logger.Logger) *handler {
	return &handler{
		runner: runner,
		logger: log.WithFields(map[string]interface{}{"component": "handler"}),
	}
}

// PlanTrip starts a pipeline run. By default the run executes in the
// background and the request is acknowledged immediately; with ?sync=true the
// handler waits for the result.
func (h *handler) PlanTrip(c echo.Context) error {
	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ToEnvelope(
			errors.NewInvalidTripRequestError("failed to parse request body: "+err.Error())))
	}
	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ToEnvelope(
			errors.NewInvalidTripRequestError(err.Error())))
	}

	inputs := req.ToInputs()

	if c.QueryParam("sync") == "true" {
		res, err := h.runner.Run(c.Request().Context(), inputs)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, errors.ToEnvelope(err))
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "success",
			"result": res.Result,
		})
	}

	go func() {
		if _, err := h.runner.Run(context.Background(), inputs); err != nil {
			h.logger.Error("background run failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	return c.JSON(http.StatusAccepted, map[string]interface{}{
		"status":  "accepted",
		"message": "Trip planning started in the background.",
	})
}

// ChatRequest is the free-text entry shape: a message plus optional history.
type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chat accepts a conversational message, folds it into the default trip
// request as the user preference text and runs the pipeline synchronously.
func (h *handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ToEnvelope(
			errors.NewInvalidTripRequestError("failed to parse request body: "+err.Error())))
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, errors.ToEnvelope(
			errors.NewInvalidTripRequestError("message is required")))
	}

	trip := models.DefaultTripRequest()
	trip.UserPreferences = req.Message
	inputs := trip.ToInputs()

	if len(req.History) > 0 {
		var b strings.Builder
		for _, m := range req.History {
			b.WriteString(m.Role + ": " + m.Content + "\n")
		}
		inputs["conversation_history"] = b.String()
	}

	res, err := h.runner.Run(c.Request().Context(), inputs)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errors.ToEnvelope(err))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "success",
		"result": res.Result,
	})
}

// Health reports liveness.
func (h *handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
