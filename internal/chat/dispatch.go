package chat

import "strings"

// Command prefixes for generated-media requests. Matching is exact-prefix
// and case-sensitive; the image prefix is checked first.
const (
	ImageCommandPrefix = "/resim "
	VideoCommandPrefix = "/video "
)

// ActionKind discriminates dispatch results.
type ActionKind int

const (
	// ActionTutor routes the full input to the tutoring dialogue.
	ActionTutor ActionKind = iota

	// ActionImage starts an image-generation job for the prompt.
	ActionImage

	// ActionVideo starts a video-generation job for the prompt.
	ActionVideo
)

// Action is the routing decision for one piece of user input.
type Action struct {
	Kind ActionKind

	// Text is the full user text for ActionTutor, or the command
	// remainder (the media prompt) for ActionImage/ActionVideo.
	Text string

	// Attachment is carried through unchanged for ActionTutor only.
	Attachment Attachment
}

// Dispatch inspects user input for media-command prefixes and routes it.
// First match wins; the remainder after a matched prefix is passed through
// with no further interpretation.
func Dispatch(text string, attachment Attachment) Action {
	if rest, ok := strings.CutPrefix(text, ImageCommandPrefix); ok {
		return Action{Kind: ActionImage, Text: rest}
	}
	if rest, ok := strings.CutPrefix(text, VideoCommandPrefix); ok {
		return Action{Kind: ActionVideo, Text: rest}
	}
	return Action{Kind: ActionTutor, Text: text, Attachment: attachment}
}
