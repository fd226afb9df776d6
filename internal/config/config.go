package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Slot names. Each content kind is pinned to one of these at configuration time
// so quota exhaustion on one kind's traffic does not starve the others.
const (
	SlotDefault  = "default"
	SlotSummary  = "summary"
	SlotOverview = "overview"
	SlotSections = "sections"
	SlotProblems = "problems"
	SlotQuiz     = "quiz"
)

var slotNames = []string{SlotDefault, SlotSummary, SlotOverview, SlotSections, SlotProblems, SlotQuiz}

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Redis      RedisConfig
	Generation GenerationConfig
	Transcript TranscriptConfig
	Events     EventsConfig
	Tracing    TracingConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GenerationConfig holds the retry policy and the credential slots handed to the
// generation invoker.
type GenerationConfig struct {
	ShortTimeout time.Duration
	LongTimeout  time.Duration
	MaxAttempts  int
	Backoff      time.Duration
	Temperature  float64
	Slots        map[string]SlotConfig
}

type SlotConfig struct {
	Provider  string `yaml:"provider"` // googleai, genai, ollama, openai
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	ServerURL string `yaml:"server_url"`
}

// Configured reports whether the slot carries enough to build a client.
func (s SlotConfig) Configured() bool {
	if s.Provider == "ollama" {
		return s.ServerURL != ""
	}
	return s.APIKey != ""
}

type TranscriptConfig struct {
	BaseURL  string
	Actor    string
	Token    string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type EventsConfig struct {
	NATSURL   string
	NATSToken string
	Subject   string
}

type TracingConfig struct {
	Enabled      bool
	Endpoint     string
	SampleRatio  float64
	ServiceName  string
	Environment  string
	Version      string
	OTLPInsecure bool
	// Headers is a comma separated list of key=value pairs sent to the collector.
	Headers string
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 60)
	viper.SetDefault("server.write_timeout", 60)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("generation.short_timeout", "15s")
	viper.SetDefault("generation.long_timeout", "30s")
	viper.SetDefault("generation.max_attempts", 3)
	viper.SetDefault("generation.backoff", "2s")
	viper.SetDefault("generation.temperature", 0.7)
	viper.SetDefault("generation.slots.default.provider", "googleai")
	viper.SetDefault("generation.slots.default.model", "gemini-2.0-flash")
	viper.SetDefault("transcript.base_url", "https://api.apify.com")
	viper.SetDefault("transcript.actor", "invideoiq~video-transcript-scraper")
	viper.SetDefault("transcript.timeout", "90s")
	viper.SetDefault("transcript.cache_ttl", "24h")
	viper.SetDefault("events.subject", "vidlearn.generation.completed")
	viper.SetDefault("tracing.sample_ratio", 0.1)
	viper.SetDefault("tracing.service_name", "vidlearn")
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	setDefaults()
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  time.Duration(viper.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(viper.GetInt("server.write_timeout")) * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Generation: GenerationConfig{
			ShortTimeout: viper.GetDuration("generation.short_timeout"),
			LongTimeout:  viper.GetDuration("generation.long_timeout"),
			MaxAttempts:  viper.GetInt("generation.max_attempts"),
			Backoff:      viper.GetDuration("generation.backoff"),
			Temperature:  viper.GetFloat64("generation.temperature"),
			Slots:        make(map[string]SlotConfig, len(slotNames)),
		},
		Transcript: TranscriptConfig{
			BaseURL:  viper.GetString("transcript.base_url"),
			Actor:    viper.GetString("transcript.actor"),
			Token:    viper.GetString("transcript.token"),
			Timeout:  viper.GetDuration("transcript.timeout"),
			CacheTTL: viper.GetDuration("transcript.cache_ttl"),
		},
		Events: EventsConfig{
			NATSURL:   viper.GetString("events.nats_url"),
			NATSToken: viper.GetString("events.nats_token"),
			Subject:   viper.GetString("events.subject"),
		},
		Tracing: TracingConfig{
			Enabled:      viper.GetBool("tracing.enabled"),
			Endpoint:     viper.GetString("tracing.endpoint"),
			SampleRatio:  viper.GetFloat64("tracing.sample_ratio"),
			ServiceName:  viper.GetString("tracing.service_name"),
			Environment:  viper.GetString("logger.env"),
			Version:      viper.GetString("tracing.version"),
			OTLPInsecure: viper.GetBool("tracing.otlp_insecure"),
			Headers:      viper.GetString("tracing.headers"),
		},
	}

	for _, name := range slotNames {
		prefix := "generation.slots." + name + "."
		config.Generation.Slots[name] = SlotConfig{
			Provider:  viper.GetString(prefix + "provider"),
			APIKey:    viper.GetString(prefix + "api_key"),
			Model:     viper.GetString(prefix + "model"),
			ServerURL: viper.GetString(prefix + "server_url"),
		}
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides lets deployment secrets win over the YAML file.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		var p int
		if _, err := fmt.Sscanf(port, "%d", &p); err == nil {
			config.Server.Port = p
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if token := os.Getenv("APIFY_TOKEN"); token != "" {
		config.Transcript.Token = token
	}
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		config.Events.NATSURL = natsURL
	}
	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		config.Tracing.Endpoint = endpoint
	}
	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		slot := config.Generation.Slots[SlotDefault]
		slot.APIKey = geminiKey
		config.Generation.Slots[SlotDefault] = slot
	}
	for _, name := range slotNames {
		key := os.Getenv("VIDLEARN_SLOT_" + strings.ToUpper(name) + "_API_KEY")
		if key == "" {
			continue
		}
		slot := config.Generation.Slots[name]
		slot.APIKey = key
		config.Generation.Slots[name] = slot
	}
}

// Slot resolves a named slot, falling back to the default slot when the named one
// has no credentials of its own.
func (g GenerationConfig) Slot(name string) (SlotConfig, bool) {
	if s, ok := g.Slots[name]; ok && s.Configured() {
		if s.Provider == "" {
			s.Provider = g.Slots[SlotDefault].Provider
		}
		if s.Model == "" {
			s.Model = g.Slots[SlotDefault].Model
		}
		return s, true
	}
	s, ok := g.Slots[SlotDefault]
	return s, ok && s.Configured()
}
