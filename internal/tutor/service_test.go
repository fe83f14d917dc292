package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/oguzhan/hoca/internal/chat"
	"github.com/oguzhan/hoca/internal/llm"
	"github.com/oguzhan/hoca/internal/media"
)

func testResolver(gen *media.MockGenerator, provider llm.Provider) *media.Resolver {
	cfg := media.DefaultConfig()
	cfg.PollInterval = time.Millisecond
	cfg.Timeout = 50 * time.Millisecond
	return media.NewResolver(gen, provider, cfg)
}

func TestReplyPlainTutorTurn(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Fotosentez, bitkilerin güneş ışığıyla besin üretmesidir."),
	})
	svc := NewService(provider, nil, DefaultConfig())
	conv := chat.NewConversation("fen")

	reply, err := svc.Reply(context.Background(), conv, "Fotosentez nedir?", chat.Attachment{})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}

	if reply.Speaker != chat.SpeakerTutor || reply.IsQuiz() {
		t.Errorf("reply = %+v, want plain tutor message", reply)
	}
	if conv.Len() != 2 {
		t.Fatalf("conversation length = %d, want 2", conv.Len())
	}
	if conv.Busy() {
		t.Error("busy flag not released after Reply")
	}

	// The first user turn carries the subject context.
	call := provider.LastCall()
	if !strings.Contains(call.Messages[0].Content, "Ders: fen") {
		t.Errorf("first turn missing subject context: %q", call.Messages[0].Content)
	}
}

func TestReplyParsesCheckQuestion(t *testing.T) {
	raw := "Harika soru! Şimdi bakalım:\n" +
		"SORU: 2 + 2 kaçtır?\n" +
		"A) 3 B) 4 C) 5 D) 22\n" +
		"CEVAP: B\n" +
		"YAKIN: A"
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	svc := NewService(provider, nil, DefaultConfig())
	conv := chat.NewConversation("matematik")

	reply, err := svc.Reply(context.Background(), conv, "Toplama öğret", chat.Attachment{})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}

	if !reply.IsQuiz() {
		t.Fatal("expected a quiz reply")
	}
	if reply.CorrectLabel != chat.LabelB || reply.CloseLabel != chat.LabelA {
		t.Errorf("labels = %q/%q, want B/A", reply.CorrectLabel, reply.CloseLabel)
	}
	if len(reply.Options) != 4 {
		t.Errorf("options = %d, want 4", len(reply.Options))
	}
}

func TestReplyBusyConversation(t *testing.T) {
	provider := llm.NewMockProvider()
	svc := NewService(provider, nil, DefaultConfig())
	conv := chat.NewConversation("fen")

	if !conv.BeginRequest() {
		t.Fatal("BeginRequest failed on fresh conversation")
	}

	_, err := svc.Reply(context.Background(), conv, "merhaba", chat.Attachment{})
	if err != ErrBusy {
		t.Fatalf("error = %v, want ErrBusy", err)
	}
	if conv.Len() != 0 {
		t.Error("busy rejection must not append any messages")
	}
	if provider.CallCount() != 0 {
		t.Error("busy rejection must not call the provider")
	}
}

func TestReplyProviderFailureFallsBack(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(provider, nil, DefaultConfig())
	conv := chat.NewConversation("fen")

	reply, err := svc.Reply(context.Background(), conv, "merhaba", chat.Attachment{})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply.Body != fallbackReply {
		t.Errorf("body = %q, want fallback reply", reply.Body)
	}
	if conv.Len() != 2 {
		t.Errorf("conversation length = %d, want user + fallback", conv.Len())
	}
	if conv.Busy() {
		t.Error("busy flag not released after failure")
	}
}

func TestReplyImageCommand(t *testing.T) {
	gen := &media.MockGenerator{
		ImageResult: &media.Image{Data: []byte{1, 2, 3}, MIMEType: "image/png"},
	}
	describe := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("İşte güneş sistemi!"),
	})
	svc := NewService(llm.NewMockProvider(), testResolver(gen, describe), DefaultConfig())
	conv := chat.NewConversation("fen")

	reply, err := svc.Reply(context.Background(), conv, "/resim güneş sistemi", chat.Attachment{})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}

	if reply.Attachment.Kind != chat.AttachmentImage {
		t.Fatalf("attachment kind = %q, want image", reply.Attachment.Kind)
	}
	if gen.ImageCalls != 1 {
		t.Errorf("image calls = %d, want 1", gen.ImageCalls)
	}
	// The command never reaches the dialogue model.
	if describe.LastCall().ImageMIME != "image/png" {
		t.Error("describe call missing image payload")
	}
}

func TestReplyVideoCommand(t *testing.T) {
	gen := &media.MockGenerator{
		PollStates: []media.MockVideoState{{Done: true, URI: "https://example.com/v.mp4"}},
	}
	svc := NewService(llm.NewMockProvider(), testResolver(gen, nil), DefaultConfig())
	conv := chat.NewConversation("fen")

	reply, err := svc.Reply(context.Background(), conv, "/video yağmur döngüsü", chat.Attachment{})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply.Attachment.Kind != chat.AttachmentVideo || reply.Attachment.URI == "" {
		t.Errorf("attachment = %+v, want video with URI", reply.Attachment)
	}
}

func TestReplyMediaFailureFallsBack(t *testing.T) {
	gen := &media.MockGenerator{} // empty image result
	svc := NewService(llm.NewMockProvider(), testResolver(gen, nil), DefaultConfig())
	conv := chat.NewConversation("fen")

	reply, err := svc.Reply(context.Background(), conv, "/resim kara delik", chat.Attachment{})
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply.Body != fallbackImageReply {
		t.Errorf("body = %q, want image fallback", reply.Body)
	}
	if !reply.Attachment.None() {
		t.Error("fallback reply must not carry an attachment")
	}
}

func TestReplyHistoryWindow(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("tamam")})
	cfg := DefaultConfig()
	cfg.HistoryWindow = 3
	svc := NewService(provider, nil, cfg)

	conv := chat.NewConversation("fen")
	for i := 0; i < 6; i++ {
		conv.Append(chat.UserText("eski soru"))
		conv.Append(chat.TutorText("eski cevap"))
	}

	if _, err := svc.Reply(context.Background(), conv, "yeni soru", chat.Attachment{}); err != nil {
		t.Fatalf("Reply: %v", err)
	}

	call := provider.LastCall()
	if len(call.Messages) != 3 {
		t.Errorf("history length = %d, want 3", len(call.Messages))
	}
	last := call.Messages[len(call.Messages)-1]
	if last.Role != llm.RoleUser || last.Content != "yeni soru" {
		t.Errorf("last message = %+v, want the new user turn", last)
	}
}

func TestReplyQuizHistoryReserialized(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("devam")})
	svc := NewService(provider, nil, DefaultConfig())

	conv := chat.NewConversation("matematik")
	conv.Append(chat.UserText("soru sor"))
	conv.Append(chat.Message{
		Speaker:      chat.SpeakerTutor,
		Presentation: chat.PresentationQuiz,
		Body:         "2 + 2 kaçtır?",
		Options: []chat.Option{
			{Label: chat.LabelA, Text: "3"},
			{Label: chat.LabelB, Text: "4"},
		},
		CorrectLabel: chat.LabelB,
	})

	if _, err := svc.Reply(context.Background(), conv, "B", chat.Attachment{}); err != nil {
		t.Fatalf("Reply: %v", err)
	}

	call := provider.LastCall()
	quizTurn := call.Messages[1]
	if quizTurn.Role != llm.RoleAssistant {
		t.Fatalf("role = %q, want assistant", quizTurn.Role)
	}
	for _, want := range []string{"SORU:", "A) 3", "B) 4", "CEVAP: B"} {
		if !strings.Contains(quizTurn.Content, want) {
			t.Errorf("reserialized quiz turn missing %q:\n%s", want, quizTurn.Content)
		}
	}
}
