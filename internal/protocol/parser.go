// Package protocol turns raw model text into typed chat messages.
//
// The tutor model is prompted to emit a line-oriented micro-format for
// check-questions:
//
//	SORU: <stem>
//	A) <opt> B) <opt> C) <opt> D) <opt>
//	CEVAP: <label>
//	YAKIN: <label>
//
// Batch responses separate items with a literal "---" delimiter. The marker
// contract here must stay in sync with the prompts in internal/chat and
// internal/quiz; callers never see a parse error — malformed input degrades
// to a plain message or a shorter item sequence.
package protocol

import (
	"strings"

	"github.com/oguzhan/hoca/internal/chat"
)

const (
	stemMarker    = "SORU:"
	answerMarker  = "CEVAP:"
	closeMarker   = "YAKIN:"
	batchMarker   = "---"
	firstOptLabel = "A)"
)

// ParseMessage parses a single model response. Text without both the stem
// marker and the first option label is returned verbatim as a plain tutor
// message.
func ParseMessage(raw string) chat.Message {
	if !strings.Contains(raw, stemMarker) || !strings.Contains(raw, firstOptLabel) {
		return chat.TutorText(raw)
	}

	msg := chat.Message{
		Speaker:      chat.SpeakerTutor,
		Presentation: chat.PresentationQuiz,
	}

	stemStart := strings.Index(raw, stemMarker) + len(stemMarker)
	optStart := strings.Index(raw, firstOptLabel)
	if optStart >= stemStart {
		msg.Body = strings.TrimSpace(raw[stemStart:optStart])
	}

	for _, label := range chat.Labels {
		text := extractOption(raw, label)
		if text == "" {
			// Dropped, never kept as an empty placeholder.
			continue
		}
		msg.Options = append(msg.Options, chat.Option{Label: label, Text: text})
	}

	msg.CorrectLabel = captureLabel(raw, answerMarker)
	msg.CloseLabel = captureLabel(raw, closeMarker)

	return msg
}

// ParseBatch splits raw on the item delimiter and parses each segment
// independently. Segments yielding zero usable options are discarded.
func ParseBatch(raw string) []chat.Message {
	segments := strings.Split(raw, batchMarker)
	items := make([]chat.Message, 0, len(segments))
	for _, seg := range segments {
		m := ParseMessage(seg)
		if !m.IsQuiz() || len(m.Options) == 0 {
			continue
		}
		items = append(items, m)
	}
	return items
}

// extractOption pulls the text of one labeled option. The text starts after
// "<label>) " and ends at whichever of the next label marker, CEVAP:, YAKIN:,
// or end of text comes first.
func extractOption(raw string, label chat.Label) string {
	marker := string(label) + ") "
	start := strings.Index(raw, marker)
	if start < 0 {
		return ""
	}
	start += len(marker)

	rest := raw[start:]
	end := len(rest)

	boundaries := []string{answerMarker, closeMarker}
	for _, next := range chat.Labels {
		if next == label {
			continue
		}
		boundaries = append(boundaries, string(next)+")")
	}
	for _, b := range boundaries {
		if i := strings.Index(rest, b); i >= 0 && i < end {
			end = i
		}
	}

	return strings.TrimSpace(rest[:end])
}

// captureLabel returns the single letter following marker, or "" when the
// marker is absent or not followed by a valid label.
func captureLabel(raw string, marker string) chat.Label {
	idx := strings.Index(raw, marker)
	if idx < 0 {
		return ""
	}
	rest := strings.TrimLeft(raw[idx+len(marker):], " \t\r\n")
	if rest == "" {
		return ""
	}
	switch l := chat.Label(rest[:1]); l {
	case chat.LabelA, chat.LabelB, chat.LabelC, chat.LabelD:
		return l
	}
	return ""
}
