// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/xkilldash9x/reify-cli/api/schemas"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Processing() ProcessingConfig
	Server() ServerConfig
	LLM() LLMConfig
	Deploy() DeployConfig

	// Processing Setters
	SetProcessingConcurrency(int)
	SetOutputDirectory(string)
	SetDefaultLanguage(string)

	// Server Setters
	SetServerPort(int)
}

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg     LoggerConfig     `mapstructure:"logger" yaml:"logger"`
	ProcessingCfg ProcessingConfig `mapstructure:"processing" yaml:"processing"`
	ServerCfg     ServerConfig     `mapstructure:"server" yaml:"server"`
	LLMCfg        LLMConfig        `mapstructure:"llm" yaml:"llm"`
	DeployCfg     DeployConfig     `mapstructure:"deploy" yaml:"deploy"`
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig         { return c.LoggerCfg }
func (c *Config) Processing() ProcessingConfig { return c.ProcessingCfg }
func (c *Config) Server() ServerConfig         { return c.ServerCfg }
func (c *Config) LLM() LLMConfig               { return c.LLMCfg }
func (c *Config) Deploy() DeployConfig         { return c.DeployCfg }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetProcessingConcurrency(n int) { c.ProcessingCfg.MaxConcurrentGenerations = n }
func (c *Config) SetOutputDirectory(dir string)  { c.ProcessingCfg.OutputDirectory = dir }
func (c *Config) SetDefaultLanguage(lang string) { c.ProcessingCfg.DefaultLanguage = lang }
func (c *Config) SetServerPort(port int)         { c.ServerCfg.Port = port }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// ProcessingConfig tunes the conversation processing pipeline.
type ProcessingConfig struct {
	MaxConcurrentGenerations int           `mapstructure:"max_concurrent_generations" yaml:"max_concurrent_generations"`
	DefaultLanguage          string        `mapstructure:"default_language" yaml:"default_language"`
	OutputDirectory          string        `mapstructure:"output_directory" yaml:"output_directory"`
	EnableCaching            bool          `mapstructure:"enable_caching" yaml:"enable_caching"`
	CacheDirectory           string        `mapstructure:"cache_directory" yaml:"cache_directory"`
	CacheTTL                 time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`
	PipelineTimeout          time.Duration `mapstructure:"pipeline_timeout" yaml:"pipeline_timeout"`
	// GenerationTimeout is a budget knob carried in config but not enforced
	// mid-generation; distinct language targets run to completion or failure.
	GenerationTimeout time.Duration `mapstructure:"generation_timeout" yaml:"generation_timeout"`
}

// ServerConfig holds settings for the HTTP API server.
type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Address returns the host:port the server binds to.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LLMProvider defines the supported LLM providers.
type LLMProvider string

const (
	ProviderGemini    LLMProvider = "gemini"
	ProviderOpenAI    LLMProvider = "openai"
	ProviderAnthropic LLMProvider = "anthropic"
)

// LLMConfig defines the optional LLM collaborator. The pipeline is fully
// functional without it; Enabled gates every LLM call site.
type LLMConfig struct {
	Enabled           bool          `mapstructure:"enabled" yaml:"enabled"`
	Provider          LLMProvider   `mapstructure:"provider" yaml:"provider"`
	Model             string        `mapstructure:"model" yaml:"model"`
	APIKey            string        `mapstructure:"api_key" yaml:"-"`
	APITimeout        time.Duration `mapstructure:"api_timeout" yaml:"api_timeout"`
	Temperature       float32       `mapstructure:"temperature" yaml:"temperature"`
	MaxTokens         int           `mapstructure:"max_tokens" yaml:"max_tokens"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute" yaml:"requests_per_minute"`
}

// DeployConfig carries the defaults for cloud deployments.
type DeployConfig struct {
	DefaultProvider string            `mapstructure:"default_provider" yaml:"default_provider"`
	Region          string            `mapstructure:"region" yaml:"region"`
	ProjectID       string            `mapstructure:"project_id" yaml:"project_id"`
	ResourceGroup   string            `mapstructure:"resource_group" yaml:"resource_group"`
	Environment     string            `mapstructure:"environment" yaml:"environment"`
	Credentials     map[string]string `mapstructure:"credentials" yaml:"-"`
	// DeploymentTimeout is a budget knob carried in config but not enforced;
	// a dispatched deployment runs to completion or failure.
	DeploymentTimeout time.Duration `mapstructure:"deployment_timeout" yaml:"deployment_timeout"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "reify-cli")
	v.SetDefault("logger.log_file", "reify.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Processing --
	v.SetDefault("processing.max_concurrent_generations", 5)
	v.SetDefault("processing.default_language", "python")
	v.SetDefault("processing.output_directory", "./generated")
	v.SetDefault("processing.enable_caching", true)
	v.SetDefault("processing.cache_directory", defaultCacheDir())
	v.SetDefault("processing.cache_ttl", "1h")
	v.SetDefault("processing.pipeline_timeout", "2m")
	v.SetDefault("processing.generation_timeout", "30s")

	// -- Server --
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")

	// -- LLM --
	v.SetDefault("llm.enabled", false)
	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.model", "gemini-2.5-flash")
	v.SetDefault("llm.api_timeout", "60s")
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.max_tokens", 8192)
	v.SetDefault("llm.requests_per_minute", 30)

	// -- Deploy --
	v.SetDefault("deploy.default_provider", "aws")
	v.SetDefault("deploy.region", "us-east-1")
	v.SetDefault("deploy.environment", "production")
	v.SetDefault("deploy.deployment_timeout", "5m")
}

func defaultCacheDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return ".reify-cache"
	}
	return filepath.Join(home, ".reify", "cache")
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config

	// Bind environment variables for sensitive data
	v.BindEnv("llm.api_key", "GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY")
	v.BindEnv("deploy.credentials.vercel_token", "VERCEL_TOKEN")
	v.BindEnv("deploy.credentials.netlify_auth_token", "NETLIFY_AUTH_TOKEN")
	v.BindEnv("deploy.credentials.account_id", "AWS_ACCOUNT_ID")
	v.BindEnv("deploy.credentials.subscription_id", "AZURE_SUBSCRIPTION_ID")

	// Unprefixed behavioral knobs; duration values use Go syntax ("30s", "2m")
	v.BindEnv("processing.max_concurrent_generations", "MAX_CONCURRENT_GENERATIONS")
	v.BindEnv("processing.enable_caching", "ENABLE_CACHING")
	v.BindEnv("processing.cache_directory", "CACHE_DIRECTORY")
	v.BindEnv("processing.default_language", "DEFAULT_LANGUAGE")
	v.BindEnv("processing.output_directory", "OUTPUT_DIRECTORY")
	v.BindEnv("processing.pipeline_timeout", "MAX_PROCESSING_TIME")
	v.BindEnv("processing.generation_timeout", "GENERATION_TIMEOUT")
	v.BindEnv("deploy.deployment_timeout", "DEPLOYMENT_TIMEOUT")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Manually load the key if Unmarshal didn't pick it up
	if cfg.LLMCfg.Enabled && cfg.LLMCfg.APIKey == "" {
		cfg.LLMCfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if c.ProcessingCfg.MaxConcurrentGenerations <= 0 {
		return fmt.Errorf("processing.max_concurrent_generations must be a positive integer")
	}
	if _, err := schemas.ParseLanguage(c.ProcessingCfg.DefaultLanguage); err != nil {
		return fmt.Errorf("processing.default_language: %w", err)
	}
	if c.ServerCfg.Port <= 0 || c.ServerCfg.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if err := c.LLMCfg.Validate(); err != nil {
		return fmt.Errorf("llm configuration invalid: %w", err)
	}
	return nil
}

// Validate checks the LLM configuration.
func (l *LLMConfig) Validate() error {
	if !l.Enabled {
		return nil
	}
	switch l.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("unsupported llm provider: %q", l.Provider)
	}
	if l.Model == "" {
		return fmt.Errorf("llm.model is required when the LLM is enabled")
	}
	if l.RequestsPerMinute <= 0 {
		return fmt.Errorf("llm.requests_per_minute must be greater than 0")
	}
	return nil
}
