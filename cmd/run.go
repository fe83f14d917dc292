package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/oguzhan/hoca/internal/app"
	"github.com/oguzhan/hoca/internal/llm"
	"github.com/oguzhan/hoca/internal/media"
	"github.com/oguzhan/hoca/internal/quiz"
	"github.com/oguzhan/hoca/internal/store"
	"github.com/oguzhan/hoca/internal/tutor"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cfg, err := llm.ResolveConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Model provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set GEMINI_API_KEY (or OPENAI/ANTHROPIC/OPENROUTER) and retry.")
		return err
	}

	provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
	if err != nil {
		return fmt.Errorf("initialize provider: %w", err)
	}

	resolver, err := buildResolver(ctx, cfg, provider)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Media generation unavailable:", err)
	}

	opts := app.Options{
		Tutor:  tutor.NewService(provider, resolver, tutor.DefaultConfig()),
		Engine: quiz.NewEngine(provider, quiz.DefaultConfig()),
	}

	return app.Run(opts)
}

// buildResolver wires image and video generation. It needs a Gemini API
// key; without one /resim and /video degrade to fallback replies.
func buildResolver(ctx context.Context, cfg llm.Config, provider llm.Provider) (*media.Resolver, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("no Gemini API key")
	}

	gp, err := llm.NewGeminiProvider(ctx, cfg.Gemini)
	if err != nil {
		return nil, err
	}

	gen := media.NewGeminiGenerator(gp.Client(), media.DefaultGeminiConfig())
	return media.NewResolver(gen, provider, media.DefaultConfig()), nil
}
