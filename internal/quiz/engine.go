package quiz

import (
	"context"

	"github.com/oguzhan/hoca/internal/chat"
	"github.com/oguzhan/hoca/internal/llm"
	"github.com/oguzhan/hoca/internal/protocol"
)

// Config controls batch generation.
type Config struct {
	// MaxTokens caps the batch response. Marathon batches are large.
	MaxTokens int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{MaxTokens: 8192}
}

// Engine generates question batches and tracks which round is current.
// Batches resolve asynchronously; a generation counter pairs each response
// with the round that requested it so an abandoned round's batch, arriving
// late, is discarded instead of corrupting the new one.
type Engine struct {
	provider   llm.Provider
	cfg        Config
	generation int
	session    *Session
}

// NewEngine creates a quiz engine over the given provider.
func NewEngine(provider llm.Provider, cfg Config) *Engine {
	return &Engine{provider: provider, cfg: cfg}
}

// Begin starts a new round and returns its generation tag. Any batch still
// in flight for a previous round becomes stale immediately.
func (e *Engine) Begin(mode Mode) int {
	e.generation++
	e.session = NewSession(mode)
	return e.generation
}

// Session returns the current round, or nil before the first Begin.
func (e *Engine) Session() *Session { return e.session }

// Fetch generates the question batch for a round. Malformed and ungradable
// items are dropped; the result may be shorter than requested, down to
// empty.
func (e *Engine) Fetch(ctx context.Context, mode Mode, subject string) ([]chat.Message, error) {
	ctx = llm.WithPurpose(ctx, "quiz-batch")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: batchSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildBatchRequest(mode, subject)},
		},
		MaxTokens: e.cfg.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	items := protocol.ParseBatch(resp.Text())
	kept := items[:0]
	for _, item := range items {
		if !item.Gradable() {
			continue
		}
		kept = append(kept, item)
	}
	if max := mode.ItemCount(); len(kept) > max {
		kept = kept[:max]
	}
	return kept, nil
}

// Install delivers a fetched batch to the round tagged with generation.
// Stale deliveries return false and change nothing. A nil or empty batch
// (including a failed fetch) moves the round to PhaseEmpty.
func (e *Engine) Install(generation int, items []chat.Message) bool {
	if generation != e.generation || e.session == nil {
		return false
	}
	e.session.Install(items)
	return true
}
