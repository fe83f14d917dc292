package media

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/oguzhan/hoca/internal/chat"
	"github.com/oguzhan/hoca/internal/llm"
)

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.PollInterval = time.Millisecond
	cfg.Timeout = 100 * time.Millisecond
	return cfg
}

func TestResolveImage(t *testing.T) {
	gen := &MockGenerator{
		ImageResult: &Image{Data: []byte{0x89, 0x50}, MIMEType: "image/png"},
	}
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Bak, bu bir fotosentez şeması!"),
	})
	r := NewResolver(gen, provider, fastConfig())

	job := NewJob(KindImage, "fotosentez")
	msg, err := r.Resolve(context.Background(), job)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if job.State != StateReady {
		t.Errorf("job state = %q, want %q", job.State, StateReady)
	}
	if msg.Speaker != chat.SpeakerTutor {
		t.Errorf("speaker = %q, want tutor", msg.Speaker)
	}
	if msg.Attachment.Kind != chat.AttachmentImage {
		t.Errorf("attachment kind = %q, want image", msg.Attachment.Kind)
	}
	if len(msg.Attachment.Data) == 0 {
		t.Error("attachment carries no image bytes")
	}
	if msg.Body != "Bak, bu bir fotosentez şeması!" {
		t.Errorf("body = %q", msg.Body)
	}

	call := provider.LastCall()
	if len(call.Image) == 0 || call.ImageMIME != "image/png" {
		t.Error("description request did not carry the rendered image")
	}
}

func TestResolveImageNoPayload(t *testing.T) {
	// Backends may return success with an empty batch (e.g. filtered
	// output). That is a generation failure, not a blank message.
	gen := &MockGenerator{}
	r := NewResolver(gen, llm.NewMockProvider(), fastConfig())

	job := NewJob(KindImage, "prompt")
	_, err := r.Resolve(context.Background(), job)

	var genErr *ErrGenerationFailed
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want *ErrGenerationFailed", err)
	}
	if job.State != StateFailed {
		t.Errorf("job state = %q, want %q", job.State, StateFailed)
	}
}

func TestResolveImageWithoutProvider(t *testing.T) {
	gen := &MockGenerator{
		ImageResult: &Image{Data: []byte{1}, MIMEType: "image/png"},
	}
	r := NewResolver(gen, nil, fastConfig())

	msg, err := r.Resolve(context.Background(), NewJob(KindImage, "uzay"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if msg.Body == "" {
		t.Error("expected fallback caption without a provider")
	}
}

func TestResolveVideoPollsUntilReady(t *testing.T) {
	gen := &MockGenerator{
		PollStates: []MockVideoState{
			{Done: false},
			{Done: false},
			{Done: true, URI: "https://example.com/video.mp4"},
		},
	}
	r := NewResolver(gen, nil, fastConfig())

	job := NewJob(KindVideo, "gezegenler")
	msg, err := r.Resolve(context.Background(), job)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if gen.PollCalls != 3 {
		t.Errorf("poll calls = %d, want 3", gen.PollCalls)
	}
	if job.State != StateReady {
		t.Errorf("job state = %q, want %q", job.State, StateReady)
	}
	if job.ResultURI != "https://example.com/video.mp4" {
		t.Errorf("result URI = %q", job.ResultURI)
	}
	if msg.Attachment.Kind != chat.AttachmentVideo || msg.Attachment.URI == "" {
		t.Errorf("attachment = %+v, want video with URI", msg.Attachment)
	}
}

func TestResolveVideoTimeout(t *testing.T) {
	// A handle that never completes must not poll forever.
	gen := &MockGenerator{}
	cfg := fastConfig()
	cfg.Timeout = 5 * time.Millisecond
	r := NewResolver(gen, nil, cfg)

	job := NewJob(KindVideo, "prompt")
	_, err := r.Resolve(context.Background(), job)

	var timeoutErr *ErrGenerationTimeout
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("error = %v, want *ErrGenerationTimeout", err)
	}
	if job.State != StateFailed {
		t.Errorf("job state = %q, want %q", job.State, StateFailed)
	}
}

func TestResolveVideoDoneWithoutURI(t *testing.T) {
	gen := &MockGenerator{
		PollStates: []MockVideoState{{Done: true}},
	}
	r := NewResolver(gen, nil, fastConfig())

	job := NewJob(KindVideo, "prompt")
	_, err := r.Resolve(context.Background(), job)

	var genErr *ErrGenerationFailed
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want *ErrGenerationFailed", err)
	}
	if genErr.Kind != KindVideo {
		t.Errorf("kind = %q, want video", genErr.Kind)
	}
}

func TestResolveVideoStartFailure(t *testing.T) {
	gen := &MockGenerator{StartErr: errors.New("quota exceeded")}
	r := NewResolver(gen, nil, fastConfig())

	job := NewJob(KindVideo, "prompt")
	_, err := r.Resolve(context.Background(), job)

	var genErr *ErrGenerationFailed
	if !errors.As(err, &genErr) {
		t.Fatalf("error = %v, want *ErrGenerationFailed", err)
	}
	if !errors.Is(err, genErr.Err) {
		t.Error("expected wrapped cause")
	}
	if gen.PollCalls != 0 {
		t.Error("should not poll after a failed start")
	}
}

func TestResolveCancelled(t *testing.T) {
	gen := &MockGenerator{}
	r := NewResolver(gen, nil, fastConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := NewJob(KindVideo, "prompt")
	_, err := r.Resolve(ctx, job)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
