package main

import (
	"context"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"appcanvas/internal/builder"
	"appcanvas/internal/config"
	"appcanvas/internal/genai"
	"appcanvas/internal/logging"
	"appcanvas/internal/secrets"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer closer.Close()

	apiKey := resolveAPIKey(cfg)
	if apiKey == "" {
		logger.Warn().Msg("no API key configured; AI generation will fail until one is set")
	}
	provider := genai.NewGeminiClient(apiKey, cfg.Gen.TextModel, cfg.Gen.ImageModel)

	m := builder.New(ctx, provider, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited with error")
		log.Fatalf("run: %v", err)
	}
}

// resolveAPIKey checks, in order: the configured env var, the secret store,
// the config file itself.
func resolveAPIKey(cfg config.Config) string {
	if cfg.Gen.APIKeyEnv != "" {
		if key := os.Getenv(cfg.Gen.APIKeyEnv); key != "" {
			return key
		}
	}
	if key, err := secrets.FetchProviderKey("gemini"); err == nil && key != "" {
		return key
	}
	return cfg.Gen.APIKey
}
