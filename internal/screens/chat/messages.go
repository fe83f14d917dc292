package chat

import convo "github.com/oguzhan/hoca/internal/chat"

// replyMsg delivers the tutor's resolved reply for a sent turn.
type replyMsg struct {
	Reply convo.Message
	Err   error
}

// feedbackDoneMsg unlocks the composer after a graded check-question.
type feedbackDoneMsg struct{}
