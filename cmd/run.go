package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fadi/mendly/internal/app"
	"github.com/fadi/mendly/internal/breathing"
	"github.com/fadi/mendly/internal/companion"
	"github.com/fadi/mendly/internal/config"
	"github.com/fadi/mendly/internal/journey"
	"github.com/fadi/mendly/internal/llm"
	"github.com/fadi/mendly/internal/mood"
	"github.com/fadi/mendly/internal/screens/chat"
	"github.com/fadi/mendly/internal/screens/home"
	"github.com/fadi/mendly/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI. The
// app still starts without a database; history features are then shown as
// unavailable.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	svc := home.Services{Catalog: catalog, Log: logger}

	var eventRepo store.EventRepo
	var chatRepo store.ChatRepo
	var moodRepo store.MoodRepo

	st, err := openStore(cmd)
	if err != nil {
		logger.Warn("history unavailable", zap.Error(err))
	} else {
		defer st.Close()
		eventRepo, chatRepo, moodRepo = st.EventRepo(), st.ChatRepo(), st.MoodRepo()

		svc.Moods = mood.NewService(moodRepo)
		svc.Journey = journey.NewService(svc.Moods, st.BreathingRepo(), st.ScreeningRepo())
		svc.Screenings = st.ScreeningRepo()
		svc.Breathing = st.BreathingRepo()
	}

	responder, err := newResponder(ctx, eventRepo)
	if err != nil {
		return err
	}
	svc.NewChat = func() chat.Sender {
		return companion.NewSession(responder, chatRepo, moodRepo, logger)
	}

	return app.Run(app.Options{Services: svc})
}

// loadCatalog returns the built-in programs plus any from the configured
// programs file.
func loadCatalog() (*breathing.Catalog, error) {
	catalog := breathing.DefaultCatalog()
	n, err := catalog.LoadFile(cfg.Breathing.ProgramsFile)
	if err != nil {
		return nil, fmt.Errorf("load breathing programs from %s: %w", cfg.Breathing.ProgramsFile, err)
	}
	if n > 0 {
		logger.Info("loaded breathing programs", zap.Int("count", n), zap.String("file", cfg.Breathing.ProgramsFile))
	}
	return catalog, nil
}

// newResponder picks how chat replies are produced. In auto mode a missing
// or broken provider falls back to scripted replies.
func newResponder(ctx context.Context, eventRepo store.EventRepo) (companion.Responder, error) {
	mode := cfg.Companion.Mode
	if mode == config.CompanionScripted {
		return companion.Scripted{}, nil
	}

	llmCfg := llm.ConfigFromEnv()
	llmCfg.Override(cfg.LLM.Provider, cfg.LLM.Model, cfg.LLM.APIKey, cfg.LLM.BaseURL)

	provider, err := llm.NewProvider(ctx, llmCfg, eventRepo, logger)
	if err != nil {
		if mode == config.CompanionLLM {
			return nil, fmt.Errorf("companion.mode is llm: %w", err)
		}
		if errors.Is(err, llm.ErrNotConfigured) {
			logger.Info("no LLM provider configured, using scripted replies")
		} else {
			logger.Warn("LLM provider unavailable, using scripted replies", zap.Error(err))
		}
		return companion.Scripted{}, nil
	}
	logger.Info("companion using LLM", zap.String("provider", llmCfg.Provider), zap.String("model", provider.ModelID()))
	return companion.NewLLM(provider, companion.DefaultLLMConfig(), logger), nil
}
