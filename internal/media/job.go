// Package media drives asynchronous image and video generation requests to
// completion and composes the resulting tutor messages.
package media

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies the media type of a job.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// State is the lifecycle state of a job.
//
// Image jobs resolve in a single round trip (requested → ready|failed).
// Video jobs pass through polling.
type State string

const (
	StateRequested State = "requested"
	StatePolling   State = "polling"
	StateReady     State = "ready"
	StateFailed    State = "failed"
)

// Job is one outstanding or completed generation request. A job is owned
// exclusively by the resolver driving it until resolution.
type Job struct {
	ID     string
	Kind   Kind
	Prompt string
	State  State

	// ResultURI is set only when State is StateReady and the result is
	// addressable by URI (video jobs).
	ResultURI string

	StartedAt time.Time
}

// NewJob creates a job in the requested state.
func NewJob(kind Kind, prompt string) *Job {
	return &Job{
		ID:        uuid.New().String(),
		Kind:      kind,
		Prompt:    prompt,
		State:     StateRequested,
		StartedAt: time.Now(),
	}
}

// ErrGenerationFailed indicates the backend returned no usable payload.
type ErrGenerationFailed struct {
	Kind Kind
	Err  error
}

func (e *ErrGenerationFailed) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s generation failed: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s generation returned no payload", e.Kind)
}

func (e *ErrGenerationFailed) Unwrap() error { return e.Err }

// ErrGenerationTimeout indicates polling exceeded the configured bound.
type ErrGenerationTimeout struct {
	Kind    Kind
	Elapsed time.Duration
}

func (e *ErrGenerationTimeout) Error() string {
	return fmt.Sprintf("%s generation timed out after %s", e.Kind, e.Elapsed.Round(time.Second))
}
