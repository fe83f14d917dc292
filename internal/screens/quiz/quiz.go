package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/oguzhan/hoca/internal/quiz"
	"github.com/oguzhan/hoca/internal/router"
	"github.com/oguzhan/hoca/internal/screen"
	"github.com/oguzhan/hoca/internal/ui/components"
	"github.com/oguzhan/hoca/internal/ui/layout"
)

// QuizScreen runs one assessment round.
type QuizScreen struct {
	engine  *qz.Engine
	mode    qz.Mode
	subject string

	generation      int
	mc              components.MultiChoice
	showingFeedback bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen. An empty subject mixes the whole catalog.
func New(engine *qz.Engine, mode qz.Mode, subject string) *QuizScreen {
	return &QuizScreen{engine: engine, mode: mode, subject: subject}
}

func (s *QuizScreen) Init() tea.Cmd {
	return s.startRound()
}

func (s *QuizScreen) Title() string {
	return s.mode.String()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	session := s.engine.Session()
	if session == nil {
		return nil
	}
	switch session.Phase() {
	case qz.PhaseActive:
		if s.showingFeedback {
			return nil
		}
		return []layout.KeyHint{
			{Key: "A-D", Description: "Cevapla"},
			{Key: "↑/↓", Description: "Seç"},
			{Key: "Esc", Description: "Bırak"},
		}
	case qz.PhaseEmpty:
		return []layout.KeyHint{
			{Key: "R", Description: "Tekrar dene"},
			{Key: "Esc", Description: "Geri"},
		}
	case qz.PhaseFinished:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ana menü"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Geri"},
	}
}

// startRound begins a fresh round and kicks off batch generation.
func (s *QuizScreen) startRound() tea.Cmd {
	s.generation = s.engine.Begin(s.mode)
	s.showingFeedback = false
	return s.fetchBatch()
}

func (s *QuizScreen) fetchBatch() tea.Cmd {
	generation := s.generation
	return func() tea.Msg {
		items, err := s.engine.Fetch(context.Background(), s.mode, s.subject)
		if err != nil {
			// Empty delivery moves the round to its retryable state.
			return batchMsg{Generation: generation}
		}
		return batchMsg{Generation: generation, Items: items}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchMsg:
		return s.handleBatch(msg)

	case feedbackTickMsg:
		return s.handleFeedbackDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleBatch(msg batchMsg) (screen.Screen, tea.Cmd) {
	if !s.engine.Install(msg.Generation, msg.Items) {
		return s, nil
	}
	if item, ok := s.engine.Session().Current(); ok {
		s.mc = components.NewMultiChoice(item)
	}
	return s, nil
}

func (s *QuizScreen) handleFeedbackDone(msg feedbackTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Generation != s.generation {
		return s, nil
	}
	s.showingFeedback = false

	session := s.engine.Session()
	session.Advance()
	if item, ok := session.Current(); ok {
		s.mc = components.NewMultiChoice(item)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	session := s.engine.Session()
	if session == nil {
		return s, nil
	}

	switch session.Phase() {
	case qz.PhaseLoading:
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case qz.PhaseEmpty:
		switch key {
		case "r", "R":
			return s, s.startRound()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case qz.PhaseFinished:
		switch key {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case qz.PhaseActive:
		if s.showingFeedback {
			return s, nil
		}
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

		wasSubmitted := s.mc.Submitted
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if !wasSubmitted && s.mc.Submitted {
			session.Submit(s.mc.Chosen)
			s.showingFeedback = true
			generation := s.generation
			return s, tea.Tick(qz.FeedbackDelay, func(time.Time) tea.Msg {
				return feedbackTickMsg{Generation: generation}
			})
		}
		return s, cmd
	}

	return s, nil
}
