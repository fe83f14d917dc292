package media

import (
	"context"
	"fmt"
	"time"

	"github.com/oguzhan/hoca/internal/chat"
	"github.com/oguzhan/hoca/internal/llm"
)

// Config controls resolver timing and the description request.
type Config struct {
	// PollInterval is the wait between video status queries.
	PollInterval time.Duration

	// Timeout bounds the total wall-clock time spent polling one video
	// job. Exceeding it surfaces ErrGenerationTimeout.
	Timeout time.Duration

	// DescribeMaxTokens caps the image-description response.
	DescribeMaxTokens int
}

// DefaultConfig returns the default resolver configuration.
func DefaultConfig() Config {
	return Config{
		PollInterval:      5 * time.Second,
		Timeout:           5 * time.Minute,
		DescribeMaxTokens: 512,
	}
}

const describeSystemPrompt = `Sen çocuklara ders anlatan neşeli bir öğretmensin.
Sana bir görsel ve onu üretmek için kullanılan konu verilecek.
Görseli öğrenciye kısa, merak uyandıran ve öğretici bir dille anlat.
Sadece açıklamayı yaz; başlık veya madde işareti kullanma.`

// Resolver drives media jobs to completion. It owns each job exclusively
// from start to resolution; everything else in the engine is a synchronous
// transformation.
type Resolver struct {
	gen      Generator
	provider llm.Provider
	cfg      Config
}

// NewResolver creates a resolver over the given backend and text provider.
// The provider is used for the follow-up image description call and may be
// nil, in which case image messages carry a canned caption.
func NewResolver(gen Generator, provider llm.Provider, cfg Config) *Resolver {
	return &Resolver{gen: gen, provider: provider, cfg: cfg}
}

// Resolve drives job to a terminal state and composes the tutor message
// carrying the result. On error the job is left in StateFailed and the
// returned error is one of *ErrGenerationFailed, *ErrGenerationTimeout, or
// a context error.
func (r *Resolver) Resolve(ctx context.Context, job *Job) (*chat.Message, error) {
	switch job.Kind {
	case KindImage:
		return r.resolveImage(ctx, job)
	case KindVideo:
		return r.resolveVideo(ctx, job)
	default:
		job.State = StateFailed
		return nil, fmt.Errorf("unknown media kind %q", job.Kind)
	}
}

func (r *Resolver) resolveImage(ctx context.Context, job *Job) (*chat.Message, error) {
	img, err := r.gen.GenerateImage(ctx, job.Prompt)
	if err != nil {
		job.State = StateFailed
		return nil, &ErrGenerationFailed{Kind: KindImage, Err: err}
	}
	if img == nil || len(img.Data) == 0 {
		job.State = StateFailed
		return nil, &ErrGenerationFailed{Kind: KindImage}
	}

	body, err := r.describeImage(ctx, job.Prompt, img)
	if err != nil {
		job.State = StateFailed
		return nil, err
	}

	job.State = StateReady
	return &chat.Message{
		Speaker:      chat.SpeakerTutor,
		Body:         body,
		Presentation: chat.PresentationPlain,
		Attachment: chat.Attachment{
			Kind:     chat.AttachmentImage,
			Data:     img.Data,
			MIMEType: img.MIMEType,
		},
	}, nil
}

// describeImage issues the follow-up descriptive-text call, passing both
// the rendered image and the original prompt.
func (r *Resolver) describeImage(ctx context.Context, prompt string, img *Image) (string, error) {
	if r.provider == nil {
		return "İşte istediğin görsel: " + prompt, nil
	}

	ctx = llm.WithPurpose(ctx, "describe-image")
	resp, err := r.provider.Generate(ctx, llm.Request{
		System: describeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Konu: " + prompt},
		},
		Image:     img.Data,
		ImageMIME: img.MIMEType,
		MaxTokens: r.cfg.DescribeMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("describe image: %w", err)
	}
	return resp.Text(), nil
}

func (r *Resolver) resolveVideo(ctx context.Context, job *Job) (*chat.Message, error) {
	handle, err := r.gen.StartVideo(ctx, job.Prompt)
	if err != nil {
		job.State = StateFailed
		return nil, &ErrGenerationFailed{Kind: KindVideo, Err: err}
	}

	job.State = StatePolling
	start := time.Now()

	for !handle.Done() {
		if elapsed := time.Since(start); elapsed > r.cfg.Timeout {
			job.State = StateFailed
			return nil, &ErrGenerationTimeout{Kind: KindVideo, Elapsed: elapsed}
		}

		select {
		case <-ctx.Done():
			job.State = StateFailed
			return nil, ctx.Err()
		case <-time.After(r.cfg.PollInterval):
		}

		handle, err = r.gen.PollVideo(ctx, handle)
		if err != nil {
			job.State = StateFailed
			return nil, &ErrGenerationFailed{Kind: KindVideo, Err: err}
		}
	}

	uri := handle.ResultURI()
	if uri == "" {
		job.State = StateFailed
		return nil, &ErrGenerationFailed{Kind: KindVideo}
	}

	job.State = StateReady
	job.ResultURI = uri
	return &chat.Message{
		Speaker:      chat.SpeakerTutor,
		Body:         "Videon hazır! İyi seyirler: " + job.Prompt,
		Presentation: chat.PresentationPlain,
		Attachment: chat.Attachment{
			Kind: chat.AttachmentVideo,
			URI:  uri,
		},
	}, nil
}
