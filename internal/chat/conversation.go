package chat

import "github.com/google/uuid"

// Conversation is an ordered, append-only log of messages for one subject.
// It is owned exclusively by the flow that created it and is never mutated
// concurrently; the busy flag serializes generation requests, not memory
// access.
type Conversation struct {
	id       string
	subject  string
	messages []Message
	busy     bool
}

// NewConversation creates an empty conversation for the given subject.
func NewConversation(subject string) *Conversation {
	return &Conversation{
		id:      uuid.New().String(),
		subject: subject,
	}
}

// ID returns the conversation's unique identifier.
func (c *Conversation) ID() string { return c.id }

// Subject returns the subject this conversation covers.
func (c *Conversation) Subject() string { return c.subject }

// Append adds a message to the end of the log. Messages are never
// reordered, edited, or removed.
func (c *Conversation) Append(msg Message) {
	c.messages = append(c.messages, msg)
}

// Messages returns the log in causal order. The returned slice is a copy;
// mutating it does not affect the conversation.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages in the log.
func (c *Conversation) Len() int { return len(c.messages) }

// Last returns the most recent message and whether one exists.
func (c *Conversation) Last() (Message, bool) {
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// Busy reports whether a generation request is outstanding for this
// conversation. Callers must not dispatch while Busy is true.
func (c *Conversation) Busy() bool { return c.busy }

// BeginRequest marks a generation request in flight. Returns false if one
// is already outstanding — at most one request per conversation at a time.
func (c *Conversation) BeginRequest() bool {
	if c.busy {
		return false
	}
	c.busy = true
	return true
}

// EndRequest clears the in-flight marker.
func (c *Conversation) EndRequest() {
	c.busy = false
}
