package media

import "context"

// Image is an inline image payload returned by a backend.
type Image struct {
	Data     []byte
	MIMEType string
}

// VideoHandle is an opaque reference to a long-running video job.
// Implementations carry whatever the backend needs to re-query status.
type VideoHandle interface {
	// Done reports whether the backend considers the job finished
	// (successfully or not).
	Done() bool

	// ResultURI returns the video URI, or "" when the job finished
	// without producing one.
	ResultURI() string
}

// Generator is the media-generation backend boundary.
type Generator interface {
	// GenerateImage renders one image for the prompt. A (nil, nil) return
	// means the backend answered without an image payload; the caller
	// decides how to surface that.
	GenerateImage(ctx context.Context, prompt string) (*Image, error)

	// StartVideo begins a long-running video job and returns its handle.
	StartVideo(ctx context.Context, prompt string) (VideoHandle, error)

	// PollVideo re-queries job status and returns the updated handle.
	PollVideo(ctx context.Context, handle VideoHandle) (VideoHandle, error)
}
