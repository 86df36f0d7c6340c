// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Pipeline  PipelineConfig  `mapstructure:"pipeline"`
	APIs      APIsConfig      `mapstructure:"apis"`
	Mail      MailConfig      `mapstructure:"mail"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	RequestTimeout int `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// PipelineConfig holds settings for the sequential task runner.
type PipelineConfig struct {
	TaskTimeout      int `mapstructure:"task_timeout"`       // milliseconds, per task
	SchemaMaxRepairs int `mapstructure:"schema_max_repairs"` // re-prompt attempts on invalid output
	ContextTTL       int `mapstructure:"context_ttl"`        // minutes, run context retention
}

// APIsConfig holds settings for external API integrations.
type APIsConfig struct {
	GenAI struct {
		BaseURL     string  `mapstructure:"base_url"`
		APIKey      string  `mapstructure:"api_key"`
		Model       string  `mapstructure:"model"`
		MaxTokens   int     `mapstructure:"max_tokens"`
		Temperature float64 `mapstructure:"temperature"`
		Timeout     int     `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"genai"`

	WebSearch struct {
		BaseURL  string `mapstructure:"base_url"`
		APIKey   string `mapstructure:"api_key"`
		EngineID string `mapstructure:"engine_id"`
		Timeout  int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"web_search"`
}

// MailConfig holds settings for the itinerary email tool.
type MailConfig struct {
	Provider  string `mapstructure:"provider"` // "ses" or "smtp"
	FromEmail string `mapstructure:"from_email"`

	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`

	SMTP struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Address  string `mapstructure:"address"`  // MAIL_ADDRESS
		Password string `mapstructure:"password"` // MAIL_APP_PASSWORD
		UseTLS   bool   `mapstructure:"use_tls"`
	} `mapstructure:"smtp"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// TelemetryConfig controls metrics/tracing. Disabled is forced on managed
// runtimes (K_SERVICE present).
type TelemetryConfig struct {
	Disabled bool `mapstructure:"disabled"`
}
