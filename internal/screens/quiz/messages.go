package quiz

import convo "github.com/oguzhan/hoca/internal/chat"

// batchMsg delivers a generated question batch, tagged with the round that
// requested it so stale deliveries can be discarded.
type batchMsg struct {
	Generation int
	Items      []convo.Message
}

// feedbackTickMsg ends the graded-item display period.
type feedbackTickMsg struct {
	Generation int
}
