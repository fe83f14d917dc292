package chat

// Speaker identifies who produced a message.
type Speaker string

const (
	SpeakerUser  Speaker = "user"
	SpeakerTutor Speaker = "tutor"
)

// Presentation controls how a message body is rendered.
type Presentation string

const (
	// PresentationPlain renders the body as prose.
	PresentationPlain Presentation = "plain"

	// PresentationQuiz renders the body as a question stem plus options.
	PresentationQuiz Presentation = "quiz"
)

// Label is one of the four fixed option identifiers.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
)

// Labels lists the option labels in display order.
var Labels = []Label{LabelA, LabelB, LabelC, LabelD}

// AttachmentKind discriminates the attachment union.
type AttachmentKind string

const (
	AttachmentNone  AttachmentKind = "none"
	AttachmentImage AttachmentKind = "image"
	AttachmentVideo AttachmentKind = "video"
)

// Attachment is an optional media payload carried by a message.
// Images carry inline bytes (Data + MIMEType) or a URI; videos carry a URI.
type Attachment struct {
	Kind     AttachmentKind
	Data     []byte
	MIMEType string
	URI      string
}

// None reports whether the attachment is absent.
func (a Attachment) None() bool {
	return a.Kind == "" || a.Kind == AttachmentNone
}

// Option is a single labeled answer choice.
type Option struct {
	Label Label
	Text  string
}

// Message is one turn in a conversation.
//
// Tutor messages always carry a body; user messages may carry only an
// attachment. Quiz fields (Options, CorrectLabel, CloseLabel) are populated
// only when Presentation is PresentationQuiz.
type Message struct {
	Speaker      Speaker
	Body         string
	Attachment   Attachment
	Presentation Presentation

	// Options holds up to 4 labeled choices, in label order.
	Options []Option

	// CorrectLabel is the single label graded as fully correct.
	// Empty when the upstream text carried no answer marker; the item is
	// then structurally a quiz but ungradable.
	CorrectLabel Label

	// CloseLabel is the designated near-miss distractor, eligible for
	// partial credit. Empty when absent.
	CloseLabel Label
}

// IsQuiz reports whether the message renders as a quiz item.
func (m Message) IsQuiz() bool {
	return m.Presentation == PresentationQuiz
}

// Gradable reports whether the message is a quiz item that can be scored:
// it has at least one option and a correct label that references one of them.
func (m Message) Gradable() bool {
	if !m.IsQuiz() || len(m.Options) == 0 || m.CorrectLabel == "" {
		return false
	}
	return m.HasOption(m.CorrectLabel)
}

// HasOption reports whether an option with the given label is present.
func (m Message) HasOption(label Label) bool {
	for _, opt := range m.Options {
		if opt.Label == label {
			return true
		}
	}
	return false
}

// OptionText returns the text of the option with the given label, or "".
func (m Message) OptionText(label Label) string {
	for _, opt := range m.Options {
		if opt.Label == label {
			return opt.Text
		}
	}
	return ""
}

// UserText builds a plain user message.
func UserText(body string) Message {
	return Message{Speaker: SpeakerUser, Body: body, Presentation: PresentationPlain}
}

// TutorText builds a plain tutor message.
func TutorText(body string) Message {
	return Message{Speaker: SpeakerTutor, Body: body, Presentation: PresentationPlain}
}
