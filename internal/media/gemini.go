package media

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiConfig holds model selection and rendering parameters for the
// Gemini media backend.
type GeminiConfig struct {
	ImageModel  string // Default: "imagen-4.0-generate-001"
	VideoModel  string // Default: "veo-3.0-generate-001"
	AspectRatio string // Default: "16:9"
	Resolution  string // Default: "720p"
}

// DefaultGeminiConfig returns the default backend configuration.
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		ImageModel:  "imagen-4.0-generate-001",
		VideoModel:  "veo-3.0-generate-001",
		AspectRatio: "16:9",
		Resolution:  "720p",
	}
}

// GeminiGenerator implements Generator using the Google Gemini SDK
// (Imagen for images, Veo for video).
type GeminiGenerator struct {
	client *genai.Client
	cfg    GeminiConfig
}

// NewGeminiGenerator creates a media backend over an existing SDK client.
// The client is shared with the text provider so both use one connection
// and API key.
func NewGeminiGenerator(client *genai.Client, cfg GeminiConfig) *GeminiGenerator {
	return &GeminiGenerator{client: client, cfg: cfg}
}

func (g *GeminiGenerator) GenerateImage(ctx context.Context, prompt string) (*Image, error) {
	resp, err := g.client.Models.GenerateImages(ctx, g.cfg.ImageModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    g.cfg.AspectRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}

	// The API may answer without a payload (e.g. safety filtering).
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, nil
	}

	img := resp.GeneratedImages[0].Image
	return &Image{
		Data:     img.ImageBytes,
		MIMEType: img.MIMEType,
	}, nil
}

// geminiVideoHandle wraps the SDK's long-running operation.
type geminiVideoHandle struct {
	op *genai.GenerateVideosOperation
}

func (h *geminiVideoHandle) Done() bool {
	return h.op.Done
}

func (h *geminiVideoHandle) ResultURI() string {
	if h.op.Response == nil || len(h.op.Response.GeneratedVideos) == 0 {
		return ""
	}
	v := h.op.Response.GeneratedVideos[0].Video
	if v == nil {
		return ""
	}
	return v.URI
}

func (g *GeminiGenerator) StartVideo(ctx context.Context, prompt string) (VideoHandle, error) {
	op, err := g.client.Models.GenerateVideos(ctx, g.cfg.VideoModel, prompt, nil, &genai.GenerateVideosConfig{
		AspectRatio: g.cfg.AspectRatio,
		Resolution:  g.cfg.Resolution,
	})
	if err != nil {
		return nil, fmt.Errorf("start video job: %w", err)
	}
	return &geminiVideoHandle{op: op}, nil
}

func (g *GeminiGenerator) PollVideo(ctx context.Context, handle VideoHandle) (VideoHandle, error) {
	h, ok := handle.(*geminiVideoHandle)
	if !ok {
		return nil, fmt.Errorf("poll video: foreign handle %T", handle)
	}
	op, err := g.client.Operations.GetVideosOperation(ctx, h.op, nil)
	if err != nil {
		return nil, fmt.Errorf("poll video job: %w", err)
	}
	return &geminiVideoHandle{op: op}, nil
}
