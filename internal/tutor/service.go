// Package tutor orchestrates one user turn end to end: routing, model
// calls, media generation, and conversation bookkeeping.
package tutor

import (
	"context"
	"errors"

	"github.com/oguzhan/hoca/internal/chat"
	"github.com/oguzhan/hoca/internal/llm"
	"github.com/oguzhan/hoca/internal/media"
	"github.com/oguzhan/hoca/internal/protocol"
)

// ErrBusy is returned when a conversation already has a request in flight.
var ErrBusy = errors.New("tutor: request already in flight for this conversation")

// Fallback replies shown when generation fails. The student always gets an
// answer; errors never surface raw.
const (
	fallbackReply        = "Şu anda cevap veremiyorum, biraz sonra tekrar dener misin?"
	fallbackImageReply   = "Görseli oluşturamadım, başka bir konu deneyelim mi?"
	fallbackVideoReply   = "Videoyu oluşturamadım, başka bir konu deneyelim mi?"
	fallbackVideoTimeout = "Video hazırlamak şu an çok uzun sürüyor, biraz sonra tekrar deneyelim."
)

// Config controls the dialogue request shape.
type Config struct {
	// MaxTokens caps each tutoring response.
	MaxTokens int

	// HistoryWindow is the maximum number of prior messages sent as
	// context. Zero means the full conversation.
	HistoryWindow int

	// WebSearch asks providers that support it to ground answers with
	// search results.
	WebSearch bool
}

// DefaultConfig returns the default dialogue configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     2048,
		HistoryWindow: 40,
	}
}

// Service answers user turns. A single Service is shared across
// conversations; per-conversation serialization is the busy flag.
type Service struct {
	provider llm.Provider
	resolver *media.Resolver
	cfg      Config
}

// NewService creates a tutoring service. The resolver may be nil when media
// commands are not wired; they then fall back like any other failure.
func NewService(provider llm.Provider, resolver *media.Resolver, cfg Config) *Service {
	return &Service{provider: provider, resolver: resolver, cfg: cfg}
}

// Reply processes one user turn: it appends the user message, routes it,
// and appends exactly one fully-resolved tutor message. Generation failures
// degrade to a fallback reply rather than an error; the only error return
// is ErrBusy.
func (s *Service) Reply(ctx context.Context, conv *chat.Conversation, text string, attachment chat.Attachment) (chat.Message, error) {
	if !conv.BeginRequest() {
		return chat.Message{}, ErrBusy
	}
	defer conv.EndRequest()

	action := chat.Dispatch(text, attachment)

	conv.Append(chat.Message{
		Speaker:      chat.SpeakerUser,
		Body:         text,
		Attachment:   attachment,
		Presentation: chat.PresentationPlain,
	})

	var reply chat.Message
	switch action.Kind {
	case chat.ActionImage:
		reply = s.generateMedia(ctx, media.KindImage, action.Text)
	case chat.ActionVideo:
		reply = s.generateMedia(ctx, media.KindVideo, action.Text)
	default:
		reply = s.converse(ctx, conv, action)
	}

	conv.Append(reply)
	return reply, nil
}

// converse sends the dialogue history to the model and parses the response
// for an embedded check-question.
func (s *Service) converse(ctx context.Context, conv *chat.Conversation, action chat.Action) chat.Message {
	ctx = llm.WithPurpose(ctx, "tutor")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Messages:  s.buildHistory(conv),
		Image:     action.Attachment.Data,
		ImageMIME: action.Attachment.MIMEType,
		MaxTokens: s.cfg.MaxTokens,
		WebSearch: s.cfg.WebSearch,
	})
	if err != nil {
		return chat.TutorText(fallbackReply)
	}
	return protocol.ParseMessage(resp.Text())
}

// buildHistory maps the conversation log onto model messages, windowed to
// the most recent turns. Prior quiz replies are re-serialized into wire
// text so the model stays consistent with its own format.
func (s *Service) buildHistory(conv *chat.Conversation) []llm.Message {
	messages := conv.Messages()
	if s.cfg.HistoryWindow > 0 && len(messages) > s.cfg.HistoryWindow {
		messages = messages[len(messages)-s.cfg.HistoryWindow:]
	}

	out := make([]llm.Message, 0, len(messages))
	for i, m := range messages {
		role := llm.RoleUser
		content := m.Body
		switch m.Speaker {
		case chat.SpeakerTutor:
			role = llm.RoleAssistant
			content = protocol.FormatMessage(m)
		case chat.SpeakerUser:
			if i == 0 {
				content = buildUserContext(conv.Subject(), content)
			}
		}
		out = append(out, llm.Message{Role: role, Content: content})
	}
	return out
}

// generateMedia runs one media job synchronously and converts failures to
// fallback replies.
func (s *Service) generateMedia(ctx context.Context, kind media.Kind, prompt string) chat.Message {
	if s.resolver == nil {
		return chat.TutorText(fallbackReply)
	}

	job := media.NewJob(kind, prompt)
	msg, err := s.resolver.Resolve(ctx, job)
	if err != nil {
		var timeout *media.ErrGenerationTimeout
		switch {
		case errors.As(err, &timeout):
			return chat.TutorText(fallbackVideoTimeout)
		case kind == media.KindImage:
			return chat.TutorText(fallbackImageReply)
		default:
			return chat.TutorText(fallbackVideoReply)
		}
	}
	return *msg
}
