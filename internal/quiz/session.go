// Package quiz runs timed assessment rounds built from model-generated
// question batches.
package quiz

import (
	"math"
	"time"

	"github.com/oguzhan/hoca/internal/chat"
)

// Mode selects the round length.
type Mode int

const (
	// ModeShort is a quick five-question round.
	ModeShort Mode = iota

	// ModeMarathon is the long-form hundred-question round.
	ModeMarathon
)

// ItemCount returns the number of questions requested for the mode.
func (m Mode) ItemCount() int {
	if m == ModeMarathon {
		return 100
	}
	return 5
}

func (m Mode) String() string {
	if m == ModeMarathon {
		return "maraton"
	}
	return "kısa sınav"
}

// Phase is the session lifecycle state.
type Phase int

const (
	// PhaseLoading means the question batch is being generated.
	PhaseLoading Phase = iota

	// PhaseActive means questions are being presented and answered.
	PhaseActive

	// PhaseFinished means every item has been answered.
	PhaseFinished

	// PhaseEmpty means generation yielded no usable items; the round
	// can be retried.
	PhaseEmpty
)

// Outcome grades one submitted answer.
type Outcome int

const (
	OutcomeIncorrect Outcome = iota
	OutcomeClose
	OutcomeCorrect
)

// FeedbackDelay is how long the graded state of an item stays on screen
// before the round advances.
const FeedbackDelay = 1500 * time.Millisecond

// Session is one assessment round. It is owned exclusively by the screen
// driving it and is never shared across goroutines.
type Session struct {
	mode     Mode
	phase    Phase
	items    []chat.Message
	cursor   int
	outcomes map[int]Outcome
	score    float64
}

// NewSession creates a round in PhaseLoading.
func NewSession(mode Mode) *Session {
	return &Session{
		mode:     mode,
		phase:    PhaseLoading,
		outcomes: make(map[int]Outcome),
	}
}

// Mode returns the round's mode.
func (s *Session) Mode() Mode { return s.mode }

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Install accepts the generated batch and activates the round. An empty
// batch moves the session to PhaseEmpty instead.
func (s *Session) Install(items []chat.Message) {
	if s.phase != PhaseLoading {
		return
	}
	if len(items) == 0 {
		s.phase = PhaseEmpty
		return
	}
	s.items = items
	s.phase = PhaseActive
}

// Len returns the number of items in the round.
func (s *Session) Len() int { return len(s.items) }

// Cursor returns the zero-based index of the current item.
func (s *Session) Cursor() int { return s.cursor }

// Current returns the item under the cursor and whether one exists.
func (s *Session) Current() (chat.Message, bool) {
	if s.phase != PhaseActive || s.cursor >= len(s.items) {
		return chat.Message{}, false
	}
	return s.items[s.cursor], true
}

// Answered reports whether the current item has been graded.
func (s *Session) Answered() bool {
	_, ok := s.outcomes[s.cursor]
	return ok
}

// OutcomeAt returns the grade of the item at index i, if it was answered.
func (s *Session) OutcomeAt(i int) (Outcome, bool) {
	o, ok := s.outcomes[i]
	return o, ok
}

// Submit grades the selected label against the current item. The first
// submission per item wins; repeats are ignored. A fully correct answer is
// worth 100/n points and the designated near-miss 50/n, where n is the
// round length.
func (s *Session) Submit(label chat.Label) (Outcome, bool) {
	item, ok := s.Current()
	if !ok || s.Answered() {
		return 0, false
	}

	n := float64(len(s.items))
	outcome := OutcomeIncorrect
	switch {
	case label == item.CorrectLabel:
		outcome = OutcomeCorrect
		s.score += 100 / n
	case label == item.CloseLabel && item.CloseLabel != item.CorrectLabel:
		// A close label that duplicates the correct one is a
		// malformed item; it never awards partial credit.
		outcome = OutcomeClose
		s.score += 50 / n
	}

	s.outcomes[s.cursor] = outcome
	return outcome, true
}

// Advance moves to the next item once the current one is graded. After the
// last item the session is finished.
func (s *Session) Advance() {
	if s.phase != PhaseActive || !s.Answered() {
		return
	}
	s.cursor++
	if s.cursor >= len(s.items) {
		s.phase = PhaseFinished
	}
}

// Score returns the running score.
func (s *Session) Score() float64 { return s.score }

// FinalScore returns the score rounded to the nearest integer.
func (s *Session) FinalScore() int {
	return int(math.Round(s.score))
}

// CountOutcome returns how many answered items received the given grade.
func (s *Session) CountOutcome(want Outcome) int {
	n := 0
	for _, o := range s.outcomes {
		if o == want {
			n++
		}
	}
	return n
}
