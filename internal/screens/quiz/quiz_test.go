package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/oguzhan/hoca/internal/chat"
	"github.com/oguzhan/hoca/internal/llm"
	qz "github.com/oguzhan/hoca/internal/quiz"
	"github.com/oguzhan/hoca/internal/router"
	"github.com/oguzhan/hoca/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

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

// startedScreen begins a round and delivers a batch, leaving the round active.
func startedScreen(t *testing.T, n int) *QuizScreen {
	t.Helper()
	engine := qz.NewEngine(llm.NewMockProvider(), qz.DefaultConfig())
	s := New(engine, qz.ModeShort, "")
	s.startRound()

	scr, _ := s.Update(batchMsg{Generation: s.generation, Items: makeItems(n)})
	s = scr.(*QuizScreen)
	if s.engine.Session().Phase() != qz.PhaseActive {
		t.Fatalf("phase = %v, want active", s.engine.Session().Phase())
	}
	return s
}

func TestQuizScreen_Title(t *testing.T) {
	engine := qz.NewEngine(llm.NewMockProvider(), qz.DefaultConfig())
	if got := New(engine, qz.ModeShort, "").Title(); got == "" {
		t.Error("expected non-empty title")
	}
}

func TestQuizScreen_EmptyBatchGoesRetryable(t *testing.T) {
	engine := qz.NewEngine(llm.NewMockProvider(), qz.DefaultConfig())
	s := New(engine, qz.ModeShort, "fen")
	s.startRound()

	scr, _ := s.Update(batchMsg{Generation: s.generation})
	s = scr.(*QuizScreen)
	if s.engine.Session().Phase() != qz.PhaseEmpty {
		t.Errorf("phase = %v, want empty", s.engine.Session().Phase())
	}

	// R starts a fresh round.
	scr, cmd := s.Update(keyPress('r'))
	s = scr.(*QuizScreen)
	if cmd == nil {
		t.Error("expected a fetch command on retry")
	}
	if s.engine.Session().Phase() != qz.PhaseLoading {
		t.Errorf("phase = %v, want loading after retry", s.engine.Session().Phase())
	}
}

func TestQuizScreen_StaleBatchIgnored(t *testing.T) {
	s := startedScreen(t, 2)
	stale := s.generation - 1

	scr, _ := s.Update(batchMsg{Generation: stale, Items: makeItems(5)})
	s = scr.(*QuizScreen)
	if got := s.engine.Session().Len(); got != 2 {
		t.Errorf("session length = %d, want 2 (stale batch must not install)", got)
	}
}

func TestQuizScreen_AnswerStartsFeedbackTimer(t *testing.T) {
	s := startedScreen(t, 2)

	scr, cmd := s.Update(keyPress('a'))
	s = scr.(*QuizScreen)
	if !s.showingFeedback {
		t.Error("expected feedback to be showing after an answer")
	}
	if cmd == nil {
		t.Error("expected a tick command after an answer")
	}
	if !s.engine.Session().Answered() {
		t.Error("expected the answer to be recorded")
	}

	// Further answer keys are ignored while feedback is up.
	scr, _ = s.Update(keyPress('b'))
	s = scr.(*QuizScreen)
	if outcome, _ := s.engine.Session().OutcomeAt(0); outcome != qz.OutcomeCorrect {
		t.Errorf("outcome = %v, want correct (second key must not overwrite)", outcome)
	}
}

func TestQuizScreen_FeedbackTickAdvances(t *testing.T) {
	s := startedScreen(t, 2)

	scr, _ := s.Update(keyPress('a'))
	s = scr.(*QuizScreen)

	scr, _ = s.Update(feedbackTickMsg{Generation: s.generation})
	s = scr.(*QuizScreen)
	if s.showingFeedback {
		t.Error("expected feedback to be cleared")
	}
	if got := s.engine.Session().Cursor(); got != 1 {
		t.Errorf("cursor = %d, want 1", got)
	}
}

func TestQuizScreen_StaleFeedbackTickIgnored(t *testing.T) {
	s := startedScreen(t, 2)

	scr, _ := s.Update(keyPress('a'))
	s = scr.(*QuizScreen)

	scr, _ = s.Update(feedbackTickMsg{Generation: s.generation - 1})
	s = scr.(*QuizScreen)
	if !s.showingFeedback {
		t.Error("stale tick must not clear feedback")
	}
	if got := s.engine.Session().Cursor(); got != 0 {
		t.Errorf("cursor = %d, want 0 (stale tick must not advance)", got)
	}
}

func TestQuizScreen_FinishedRoundPopsOnEnter(t *testing.T) {
	s := startedScreen(t, 1)

	scr, _ := s.Update(keyPress('b'))
	s = scr.(*QuizScreen)
	scr, _ = s.Update(feedbackTickMsg{Generation: s.generation})
	s = scr.(*QuizScreen)
	if s.engine.Session().Phase() != qz.PhaseFinished {
		t.Fatalf("phase = %v, want finished", s.engine.Session().Phase())
	}

	var got screen.Screen = s
	got, cmd := got.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected enter to pop back to the menu")
	}
	_ = got
}

func TestQuizScreen_ViewNonEmptyPerPhase(t *testing.T) {
	engine := qz.NewEngine(llm.NewMockProvider(), qz.DefaultConfig())
	s := New(engine, qz.ModeShort, "")
	s.startRound()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}

	scr, _ := s.Update(batchMsg{Generation: s.generation, Items: makeItems(2)})
	s = scr.(*QuizScreen)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty active view")
	}
}
