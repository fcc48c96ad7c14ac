package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/learnbot/internal/bot"
	"github.com/abhisek/learnbot/internal/config"
	"github.com/abhisek/learnbot/internal/evaluate"
	"github.com/abhisek/learnbot/internal/history"
	"github.com/abhisek/learnbot/internal/llm"
	"github.com/abhisek/learnbot/internal/profile"
	"github.com/abhisek/learnbot/internal/quiz"
	"github.com/abhisek/learnbot/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bot webhook server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP port to listen on (overrides LEARNBOT_PORT)")
}

func runServe(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetInt("port"); p > 0 {
		cfg.Port = p
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if err := cfg.Validate(sugar); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	profiles, err := profile.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open profile store: %w", err)
	}

	var events *history.Store
	if cfg.HistoryDBPath != "" {
		events, err = history.Open(cfg.HistoryDBPath)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer events.Close()
	}

	// An unusable LLM config degrades to fallback-only questions rather
	// than refusing to start.
	llmCfg := cfg.LLM
	if llmCfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			sugar.Infow("llm provider discovered from standard env keys", "provider", discovered.Provider)
			llmCfg = discovered
		}
	}

	var generator quiz.Generator
	var eventRepo history.EventRepo
	if events != nil {
		eventRepo = events
	}
	provider, err := llm.NewProvider(ctx, llmCfg, eventRepo, sugar)
	if err != nil {
		sugar.Warnw("llm unavailable, serving questions from the static bank", "error", err)
	} else {
		generator = quiz.NewGenerator(provider, quiz.DefaultConfig())
	}

	questions := quiz.NewProvider(generator, quiz.NewFallback(), llmCfg.Timeout, sugar)
	evaluator := evaluate.New(profiles, events, sugar)
	sessions := bot.NewSessionStore()
	handler := bot.NewHandler(profiles, questions, evaluator, sessions, events, sugar)

	srv := server.New(handler, server.Options{
		Port:           cfg.Port,
		Env:            cfg.Env,
		AllowedOrigins: cfg.AllowedOrigins,
	}, sugar)

	sugar.Infow("learnbot starting",
		"port", cfg.Port,
		"env", cfg.Env,
		"data_dir", cfg.DataDir,
		"history_db", cfg.HistoryDBPath,
		"llm_provider", llmCfg.Provider)

	return srv.Run(ctx)
}

// resolveConfig loads the environment config and applies persistent
// flag overrides.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if d, _ := cmd.Flags().GetString("data-dir"); d != "" {
		cfg.DataDir = d
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := history.EnsureDir(p); err != nil {
			return config.Config{}, err
		}
		cfg.HistoryDBPath = p
	}
	return cfg, nil
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
