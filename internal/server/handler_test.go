// internal/server/handler_test.go
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trip-planner/internal/agents"
	"trip-planner/internal/common/config"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/common/validation"
	"trip-planner/internal/llm"
	"trip-planner/internal/pipeline"
	"trip-planner/internal/pipeline/contextstore"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLLM answers every task with a response its schema accepts, keyed
// off the expected-output marker in the prompt.
type scriptedLLM struct{}

var scriptedResponses = map[string]string{
	"destination_info.md":         `{"overview":"Panama City overview."}`,
	"flight_options.md":           `{"flight_options":[{"airline":"Copa Airlines"}]}`,
	"accommodation_options.md":    `{"accommodation_options":[{"name":"Hotel Central"}]}`,
	"transportation_options.md":   `{"practical_tips":["use the metro"]}`,
	"attraction_options.md":       `{"must_see_attractions":["Casco Viejo"]}`,
	"dining_options.md":           `{"summary":"Good food.","total_options_found":1,"dining_options":[{"name":"Fonda Lo Que Hay","type":"restaurant"}]}`,
	"budget_analysis.md":          "Budget analysis text.",
	"cost_optimization.md":        "Cost optimization text.",
	"structured_itinerary.md":     `{"days":[{"date":"11/01/2025","activities":[{"name":"Arrival"}]}]}`,
	"optimized_routes.md":         "Optimized routes text.",
	"personalized_itinerary.md":   "Personalized itinerary text.",
	"contingency_plans.md":        "Contingency plans text.",
	"validation_report.md":        `{"overall_score":9,"validation_metrics":[{"name":"completeness","score":9}]}`,
	"logistics_verification.md":   "Logistics verified.",
	"final_budget_summary.md":     `{"total_trip_cost":4200,"budget_limit":5000,"currency":"USD","within_budget":true}`,
	"complete_travel_document.md": `{"trip_title":"Panama City Getaway","content":"Full document."}`,
	"itinerary_email.md":          `{"subject":"Your itinerary","body":"Enjoy!","language":"en"}`,
}

func (s *scriptedLLM) Generate(ctx context.Context, req *llm.GenerateRequest) (*llm.GenerateResponse, error) {
	for marker, output := range scriptedResponses {
		if strings.Contains(req.Prompt, "Expected output: "+marker) {
			return &llm.GenerateResponse{Text: output, Confidence: 0.9}, nil
		}
	}
	return nil, fmt.Errorf("unexpected prompt")
}

// failingLLM refuses every generation request.
type failingLLM struct{}

func (f *failingLLM) Generate(ctx context.Context, req *llm.GenerateRequest) (*llm.GenerateResponse, error) {
	return nil, fmt.Errorf("model unavailable")
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return newTestServerWithLLM(t, &scriptedLLM{})
}

func newTestServerWithLLM(t *testing.T, llmClient llm.Client) *Server {
	t.Helper()
	// Background runs can outlive the request; a no-op logger keeps late
	// goroutine logging harmless.
	log := logger.NewNoOpLogger()

	runner, err := pipeline.NewRunner(
		agents.NewRegistry(),
		llmClient,
		nil,
		nil,
		contextstore.NewMemoryStore(),
		nil,
		validation.NewValidator(),
		log,
		pipeline.Options{},
	)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Server.Port = 8080
	return New(cfg, runner, log)
}

const validTripBody = `{
	"origin": "Bogota, Colombia",
	"destination": "Panama City, Panama",
	"start_date": "11/01/2025",
	"end_date": "11/15/2025",
	"budget": "5K USD per person",
	"travelers": 2,
	"trip_type": "Vacations",
	"accomodation": "Hotel",
	"flights": "economic",
	"recipient_email": "user@example.com",
	"locale": "en"
}`

func TestPlanTrip_AsyncAccepted(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/plan-trip", strings.NewReader(validTripBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "accepted", body["status"])
	assert.Equal(t, "Trip planning started in the background.", body["message"])
}

func TestPlanTrip_SyncReturnsResult(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/plan-trip?sync=true", strings.NewReader(validTripBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Contains(t, body["result"], `"subject":"Your itinerary"`)
	assert.Contains(t, body["result"], `"status":"pending"`)
}

func TestPlanTrip_SyncRunFailureIsErrorEnvelope(t *testing.T) {
	srv := newTestServerWithLLM(t, &failingLLM{})

	req := httptest.NewRequest(http.MethodPost, "/plan-trip?sync=true", strings.NewReader(validTripBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestChat_SyncRunFailureIsErrorEnvelope(t *testing.T) {
	srv := newTestServerWithLLM(t, &failingLLM{})

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"I want a beach trip"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestPlanTrip_BadBodyIsErrorEnvelope(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/plan-trip", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestPlanTrip_MissingFieldsRejected(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/plan-trip", strings.NewReader(`{"origin":"Bogota"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["message"], "destination")
	assert.Contains(t, body["message"], "start_date")
}

func TestChat_RunsPipelineWithMessageAsPreferences(t *testing.T) {
	srv := newTestServer(t)

	chatBody := `{"message":"somewhere warm with good food","history":[{"role":"user","content":"hi"}]}`
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(chatBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.NotEmpty(t, body["result"])
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"  "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["message"], "message is required")
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpointRegistered(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
