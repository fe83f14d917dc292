package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "hoca-test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"tutor", "quiz-batch", "tutor"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      purpose,
			InputTokens:  10 + i,
			OutputTokens: 20 + i,
			LatencyMs:    int64(100 * (i + 1)),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Purpose != "tutor" || events[0].LatencyMs != 300 {
		t.Errorf("unexpected first event: %+v", events[0])
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "quiz-batch"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("expected 1 quiz-batch event, got %d", len(filtered))
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 events with limit, got %d", len(limited))
	}
}

func TestEventRepo_GetByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "describe-image",
		Success:      false,
		ErrorMessage: "model provider unavailable",
		RequestBody:  "[user]\nbir kedi çiz\n",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}
	if e.Success {
		t.Error("expected failed event")
	}
	if e.ErrorMessage == "" || e.RequestBody == "" {
		t.Errorf("bodies not persisted: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing event, got %+v", missing)
	}
}

func TestEventRepo_UsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "tutor", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "tutor", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-pro", Purpose: "quiz-batch", InputTokens: 50, OutputTokens: 2000, LatencyMs: 900, Success: true},
	}
	for i, data := range seed {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	// Ordered by total tokens, quiz-batch (2050) ahead of tutor (600).
	if byPurpose[0].Purpose != "quiz-batch" {
		t.Errorf("expected quiz-batch first, got %q", byPurpose[0].Purpose)
	}
	var tutorStat *LLMUsageStat
	for i := range byPurpose {
		if byPurpose[i].Purpose == "tutor" {
			tutorStat = &byPurpose[i]
		}
	}
	if tutorStat == nil {
		t.Fatal("tutor purpose missing from aggregation")
	}
	if tutorStat.Calls != 2 || tutorStat.InputTokens != 400 || tutorStat.OutputTokens != 200 {
		t.Errorf("unexpected tutor stat: %+v", tutorStat)
	}
	if tutorStat.AvgLatencyMs != 300 {
		t.Errorf("expected avg latency 300, got %d", tutorStat.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(byModel))
	}
	if byModel[0].Model != "gemini-2.5-pro" {
		t.Errorf("expected gemini-2.5-pro first, got %q", byModel[0].Model)
	}
	if byModel[1].Calls != 2 {
		t.Errorf("expected 2 flash calls, got %d", byModel[1].Calls)
	}
}

func TestStore_Reset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "tutor"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	events, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty log after reset, got %d events", len(events))
	}
}
