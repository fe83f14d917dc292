package quiz

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/oguzhan/hoca/internal/chat"
	"github.com/oguzhan/hoca/internal/llm"
)

func makeItems(n int) []chat.Message {
	items := make([]chat.Message, n)
	for i := range items {
		items[i] = chat.Message{
			Speaker:      chat.SpeakerTutor,
			Presentation: chat.PresentationQuiz,
			Body:         "soru",
			Options: []chat.Option{
				{Label: chat.LabelA, Text: "bir"},
				{Label: chat.LabelB, Text: "iki"},
				{Label: chat.LabelC, Text: "üç"},
				{Label: chat.LabelD, Text: "dört"},
			},
			CorrectLabel: chat.LabelA,
			CloseLabel:   chat.LabelB,
		}
	}
	return items
}

func activeSession(t *testing.T, n int) *Session {
	t.Helper()
	s := NewSession(ModeShort)
	s.Install(makeItems(n))
	if s.Phase() != PhaseActive {
		t.Fatalf("phase = %v, want active", s.Phase())
	}
	return s
}

func TestSessionAllCorrect(t *testing.T) {
	s := activeSession(t, 5)
	for i := 0; i < 5; i++ {
		if _, ok := s.Submit(chat.LabelA); !ok {
			t.Fatalf("submit %d rejected", i)
		}
		s.Advance()
	}
	if s.Phase() != PhaseFinished {
		t.Errorf("phase = %v, want finished", s.Phase())
	}
	if got := s.FinalScore(); got != 100 {
		t.Errorf("final score = %d, want 100", got)
	}
}

func TestSessionAllIncorrect(t *testing.T) {
	s := activeSession(t, 5)
	for i := 0; i < 5; i++ {
		outcome, _ := s.Submit(chat.LabelD)
		if outcome != OutcomeIncorrect {
			t.Errorf("outcome = %v, want incorrect", outcome)
		}
		s.Advance()
	}
	if got := s.FinalScore(); got != 0 {
		t.Errorf("final score = %d, want 0", got)
	}
}

func TestSessionMixedScore(t *testing.T) {
	// 3 correct + 2 close out of 5: 3*20 + 2*10 = 80.
	s := activeSession(t, 5)
	picks := []chat.Label{chat.LabelA, chat.LabelA, chat.LabelA, chat.LabelB, chat.LabelB}
	for _, p := range picks {
		s.Submit(p)
		s.Advance()
	}
	if got := s.FinalScore(); got != 80 {
		t.Errorf("final score = %d, want 80", got)
	}
	if s.CountOutcome(OutcomeClose) != 2 {
		t.Errorf("close count = %d, want 2", s.CountOutcome(OutcomeClose))
	}
}

func TestSessionDoubleSubmitIgnored(t *testing.T) {
	s := activeSession(t, 5)
	if _, ok := s.Submit(chat.LabelD); !ok {
		t.Fatal("first submit rejected")
	}
	if _, ok := s.Submit(chat.LabelA); ok {
		t.Error("second submit on the same item must be ignored")
	}
	if s.Score() != 0 {
		t.Errorf("score = %v, want 0 after rejected retry", s.Score())
	}
}

func TestSessionCloseEqualsCorrectNoPartialCredit(t *testing.T) {
	items := makeItems(1)
	items[0].CloseLabel = items[0].CorrectLabel
	s := NewSession(ModeShort)
	s.Install(items)

	outcome, ok := s.Submit(items[0].CorrectLabel)
	if !ok || outcome != OutcomeCorrect {
		t.Fatalf("outcome = %v, want correct", outcome)
	}

	s2 := NewSession(ModeShort)
	s2.Install(func() []chat.Message {
		it := makeItems(1)
		it[0].CloseLabel = it[0].CorrectLabel
		return it
	}())
	outcome, _ = s2.Submit(chat.LabelB)
	if outcome != OutcomeIncorrect {
		t.Errorf("outcome = %v, want incorrect when close duplicates correct", outcome)
	}
	if s2.Score() != 0 {
		t.Errorf("score = %v, want 0", s2.Score())
	}
}

func TestSessionAdvanceRequiresAnswer(t *testing.T) {
	s := activeSession(t, 2)
	s.Advance()
	if s.Cursor() != 0 {
		t.Error("advance before grading must not move the cursor")
	}
}

func TestSessionEmptyBatch(t *testing.T) {
	s := NewSession(ModeShort)
	s.Install(nil)
	if s.Phase() != PhaseEmpty {
		t.Errorf("phase = %v, want empty", s.Phase())
	}
	if _, ok := s.Current(); ok {
		t.Error("empty session must not expose a current item")
	}
}

func TestEngineStaleBatchDiscarded(t *testing.T) {
	e := NewEngine(llm.NewMockProvider(), DefaultConfig())

	first := e.Begin(ModeShort)
	second := e.Begin(ModeShort)

	if e.Install(first, makeItems(5)) {
		t.Error("stale batch must be discarded")
	}
	if e.Session().Phase() != PhaseLoading {
		t.Errorf("phase = %v, want loading after stale delivery", e.Session().Phase())
	}

	if !e.Install(second, makeItems(5)) {
		t.Fatal("current batch rejected")
	}
	if e.Session().Phase() != PhaseActive {
		t.Errorf("phase = %v, want active", e.Session().Phase())
	}
}

func TestEngineFetchFiltersUngradable(t *testing.T) {
	raw := "SORU: 2 + 2 kaçtır?\nA) 3 B) 4 C) 5 D) 6\nCEVAP: B\nYAKIN: A\n" +
		"---\n" +
		"SORU: Cevapsız soru\nA) bir B) iki C) üç D) dört\n" + // no CEVAP marker
		"---\n" +
		"Sadece düz metin, soru değil.\n" +
		"---\n" +
		"SORU: Başkent neresidir?\nA) Ankara B) İstanbul C) İzmir D) Bursa\nCEVAP: A\nYAKIN: B"
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	e := NewEngine(provider, DefaultConfig())

	items, err := e.Fetch(context.Background(), ModeShort, "")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2 gradable", len(items))
	}
	for _, item := range items {
		if !item.Gradable() {
			t.Errorf("kept ungradable item: %+v", item)
		}
	}
}

func TestEngineFetchRequestShape(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("")})
	e := NewEngine(provider, DefaultConfig())

	if _, err := e.Fetch(context.Background(), ModeMarathon, "matematik"); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	call := provider.LastCall()
	body := call.Messages[0].Content
	if !strings.Contains(body, "100 soru") {
		t.Errorf("marathon request missing item count: %q", body)
	}
	if !strings.Contains(body, "matematik") {
		t.Errorf("request missing subject: %q", body)
	}
}
