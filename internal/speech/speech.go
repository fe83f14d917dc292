// Package speech defines the capture and playback boundaries. Both devices
// are UI-bound and fire-and-forget; the engine never retries them and a
// missing capability only disables the affected modality for the session.
package speech

import "context"

// ErrUnsupported indicates the runtime environment has no speech capability.
type ErrUnsupported struct {
	Capability string
}

func (e *ErrUnsupported) Error() string {
	return "speech capability unavailable: " + e.Capability
}

// VoiceGender is the preferred synthesis voice.
type VoiceGender string

const (
	VoiceFemale VoiceGender = "female"
	VoiceMale   VoiceGender = "male"
)

// Recognizer captures at most one final transcript per invocation.
type Recognizer interface {
	// Listen blocks until a final transcript is available or the context
	// is done. Returns *ErrUnsupported when capture is unavailable.
	Listen(ctx context.Context) (string, error)
}

// Speaker reads text aloud. Playback is fire-and-forget: Say returns once
// the utterance is queued, and errors only for unsupported runtimes.
type Speaker interface {
	Say(text string, voice VoiceGender) error
}

// Noop implements both interfaces for runtimes without audio hardware.
type Noop struct{}

func (Noop) Listen(context.Context) (string, error) {
	return "", &ErrUnsupported{Capability: "capture"}
}

func (Noop) Say(string, VoiceGender) error {
	return &ErrUnsupported{Capability: "playback"}
}
