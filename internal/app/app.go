// internal/app/app.go
package app

import (
	"context"
	"fmt"

	"trip-planner/internal/agents"
	"trip-planner/internal/common/config"
	"trip-planner/internal/common/database"
	"trip-planner/internal/common/logger"
	"trip-planner/internal/common/observability"
	"trip-planner/internal/common/validation"
	"trip-planner/internal/llm"
	"trip-planner/internal/pipeline"
	"trip-planner/internal/pipeline/contextstore"
	"trip-planner/internal/pipeline/runstore"
	"trip-planner/internal/tools/email"
	"trip-planner/internal/tools/websearch"
)

// App bundles the wired application components shared by the server and CLI
// binaries.
type App struct {
	Config   *config.Config
	Logger   logger.Logger
	Runner   *pipeline.Runner
	RunStore *runstore.Store
	Obs      *observability.Observability

	postgres *database.PostgresClient
	redis    *database.RedisClient
}

// New wires the full application from configuration: storage clients, tools,
// LLM client and the pipeline runner.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	obs := observability.New(cfg.App.Name, cfg.Telemetry.Disabled)

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	rd, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		pg.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	llmClient := llm.NewClient(&llm.Config{
		BaseURL:     cfg.APIs.GenAI.BaseURL,
		APIKey:      cfg.APIs.GenAI.APIKey,
		Model:       cfg.APIs.GenAI.Model,
		MaxTokens:   cfg.APIs.GenAI.MaxTokens,
		Temperature: cfg.APIs.GenAI.Temperature,
		Timeout:     config.GetDuration(cfg.APIs.GenAI.Timeout),
	}, log)

	var search websearch.Searcher
	if cfg.APIs.WebSearch.BaseURL != "" {
		search = websearch.NewClient(&websearch.Config{
			BaseURL:  cfg.APIs.WebSearch.BaseURL,
			APIKey:   cfg.APIs.WebSearch.APIKey,
			EngineID: cfg.APIs.WebSearch.EngineID,
			Timeout:  config.GetDuration(cfg.APIs.WebSearch.Timeout),
		}, log)
	}

	sender, err := email.NewSender(ctx, &email.Config{
		Provider:     cfg.Mail.Provider,
		FromEmail:    cfg.Mail.FromEmail,
		AWSRegion:    cfg.Mail.AWS.Region,
		SMTPHost:     cfg.Mail.SMTP.Host,
		SMTPPort:     cfg.Mail.SMTP.Port,
		SMTPAddress:  cfg.Mail.SMTP.Address,
		SMTPPassword: cfg.Mail.SMTP.Password,
	}, log)
	if err != nil {
		pg.Close()
		rd.Close()
		return nil, fmt.Errorf("init email sender: %w", err)
	}

	ctxStore := contextstore.NewRedisStore(rd, config.GetDuration(cfg.Pipeline.ContextTTL*60*1000))
	runStore := runstore.New(pg.GetDB())

	runner, err := pipeline.NewRunner(
		agents.NewRegistry(),
		llmClient,
		search,
		sender,
		ctxStore,
		runStore,
		validation.NewValidator(),
		log,
		pipeline.Options{
			TaskTimeout:      config.GetDuration(cfg.Pipeline.TaskTimeout),
			SchemaMaxRepairs: cfg.Pipeline.SchemaMaxRepairs,
			Obs:              obs,
		},
	)
	if err != nil {
		pg.Close()
		rd.Close()
		return nil, fmt.Errorf("init pipeline: %w", err)
	}

	return &App{
		Config:   cfg,
		Logger:   log,
		Runner:   runner,
		RunStore: runStore,
		Obs:      obs,
		postgres: pg,
		redis:    rd,
	}, nil
}

// Close releases storage connections and flushes telemetry.
func (a *App) Close(ctx context.Context) {
	if a.postgres != nil {
		_ = a.postgres.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.Obs != nil {
		a.Obs.Shutdown()
	}
}
