package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	convo "github.com/oguzhan/hoca/internal/chat"
	"github.com/oguzhan/hoca/internal/quiz"
	"github.com/oguzhan/hoca/internal/router"
	"github.com/oguzhan/hoca/internal/screen"
	"github.com/oguzhan/hoca/internal/speech"
	"github.com/oguzhan/hoca/internal/tutor"
	"github.com/oguzhan/hoca/internal/ui/components"
	"github.com/oguzhan/hoca/internal/ui/layout"
)

// ChatScreen hosts one tutoring conversation.
type ChatScreen struct {
	svc  *tutor.Service
	conv *convo.Conversation

	input   components.TextInput
	waiting bool
	hint    string

	// mcActive is true while the last tutor reply is an unanswered
	// check-question; the composer is locked until it is graded.
	mcActive bool
	mc       components.MultiChoice

	// voiced is cleared after the first playback failure; the modality
	// stays off for the rest of the session.
	speaker speech.Speaker
	voiced  bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen with a fresh conversation for the subject.
func New(svc *tutor.Service, subject string) *ChatScreen {
	return &ChatScreen{
		svc:     svc,
		conv:    convo.NewConversation(subject),
		input:   components.NewTextInput("Bir şey sor, /resim veya /video dene...", 500),
		speaker: speech.Noop{},
		voiced:  true,
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return c.conv.Subject()
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	if c.mcActive {
		return []layout.KeyHint{
			{Key: "A-D", Description: "Cevapla"},
			{Key: "↑/↓", Description: "Seç"},
			{Key: "Enter", Description: "Onayla"},
		}
	}
	if c.waiting {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Geri"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Gönder"},
		{Key: "Esc", Description: "Geri"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		return c.handleReply(msg)

	case feedbackDoneMsg:
		c.mcActive = false
		return c, c.input.Focus()

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if !c.waiting && !c.mcActive {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	return c, nil
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return c, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if c.mcActive {
		wasSubmitted := c.mc.Submitted
		var cmd tea.Cmd
		c.mc, cmd = c.mc.Update(msg)
		if !wasSubmitted && c.mc.Submitted {
			return c, tea.Tick(quiz.FeedbackDelay, func(time.Time) tea.Msg {
				return feedbackDoneMsg{}
			})
		}
		return c, cmd
	}

	if c.waiting {
		return c, nil
	}

	if key == "enter" {
		text := strings.TrimSpace(c.input.Value())
		if text == "" {
			return c, nil
		}
		c.input.Reset()
		c.input.Blur()
		c.waiting = true
		c.hint = ""
		return c, c.send(text)
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send runs the full turn off the UI goroutine.
func (c *ChatScreen) send(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := c.svc.Reply(context.Background(), c.conv, text, convo.Attachment{})
		return replyMsg{Reply: reply, Err: err}
	}
}

func (c *ChatScreen) handleReply(msg replyMsg) (screen.Screen, tea.Cmd) {
	c.waiting = false

	if msg.Err != nil {
		if errors.Is(msg.Err, tutor.ErrBusy) {
			c.hint = "Önce mevcut cevabı bekle."
		} else {
			c.hint = msg.Err.Error()
		}
		return c, c.input.Focus()
	}

	if msg.Reply.IsQuiz() && len(msg.Reply.Options) > 0 {
		c.mc = components.NewMultiChoice(msg.Reply)
		c.mcActive = true
		return c, nil
	}

	if c.voiced {
		if err := c.speaker.Say(msg.Reply.Body, speech.VoiceFemale); err != nil {
			c.voiced = false
		}
	}

	return c, c.input.Focus()
}
