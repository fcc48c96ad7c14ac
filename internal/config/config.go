package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/abhisek/learnbot/internal/history"
	"github.com/abhisek/learnbot/internal/llm"
)

// Config is the application-level configuration, resolved once at
// startup from .env plus LEARNBOT_* environment variables.
type Config struct {
	// Port the HTTP server listens on. Default 3978, the Bot Framework
	// Emulator's conventional port.
	Port int

	// Env is "development" or "production".
	Env string

	// DataDir is the root for file-based profile storage.
	DataDir string

	// HistoryDBPath is the sqlite file for quiz history; empty disables
	// the history store.
	HistoryDBPath string

	// QuestionsPerDay is an advisory per-user daily quiz limit.
	QuestionsPerDay int

	// AllowedOrigins is the CORS allow-list.
	AllowedOrigins []string

	LLM llm.Config
}

// Load reads .env if present, then resolves config from the
// environment. Missing values fall back to defaults; a missing .env is
// not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:            3978,
		Env:             "development",
		DataDir:         "data",
		QuestionsPerDay: 5,
		AllowedOrigins:  []string{"http://localhost:3000"},
		LLM:             llm.ConfigFromEnv(),
	}

	if v := os.Getenv("LEARNBOT_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 || p > 65535 {
			return Config{}, fmt.Errorf("invalid LEARNBOT_PORT %q", v)
		}
		cfg.Port = p
	}
	if v := os.Getenv("LEARNBOT_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("LEARNBOT_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if v, ok := os.LookupEnv("LEARNBOT_HISTORY_DB"); ok {
		cfg.HistoryDBPath = v // empty string disables history
	} else {
		path, err := history.DefaultDBPath()
		if err != nil {
			return Config{}, fmt.Errorf("resolve history db path: %w", err)
		}
		cfg.HistoryDBPath = path
	}

	if v := os.Getenv("LEARNBOT_QUESTIONS_PER_DAY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LEARNBOT_QUESTIONS_PER_DAY %q", v)
		}
		cfg.QuestionsPerDay = n
	}

	if v := os.Getenv("LEARNBOT_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}

	return cfg, nil
}

// Validate sanity-checks the configuration, logging warnings for
// recoverable oddities. Only fatal misconfiguration returns an error;
// an unconfigured LLM is a warning because the fallback bank keeps the
// bot fully functional.
func (c Config) Validate(logger *zap.SugaredLogger) error {
	if c.Env != "development" && c.Env != "production" {
		logger.Warnw("unrecognized environment, treating as development", "env", c.Env)
	}

	if c.QuestionsPerDay <= 0 {
		logger.Warnw("non-positive daily question limit, quizzes are unlimited",
			"questions_per_day", c.QuestionsPerDay)
	} else if c.QuestionsPerDay > 50 {
		logger.Warnw("unusually high daily question limit", "questions_per_day", c.QuestionsPerDay)
	}

	if c.HistoryDBPath == "" {
		logger.Warnw("history store disabled, /admin totals will read zero")
	}

	if err := c.LLM.Validate(); err != nil {
		logger.Warnw("llm not configured, questions come from the static bank", "reason", err)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data directory must not be empty")
	}
	return nil
}
