package protocol

import (
	"fmt"
	"strings"

	"github.com/oguzhan/hoca/internal/chat"
)

// FormatMessage renders a message back into wire text. Plain messages pass
// through as their body; quiz messages are reconstructed in the marker
// format so the model sees its own prior output in dialogue history.
func FormatMessage(msg chat.Message) string {
	if !msg.IsQuiz() {
		return msg.Body
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", stemMarker, msg.Body)
	for _, opt := range msg.Options {
		fmt.Fprintf(&b, "%s) %s\n", opt.Label, opt.Text)
	}
	if msg.CorrectLabel != "" {
		fmt.Fprintf(&b, "%s %s\n", answerMarker, msg.CorrectLabel)
	}
	if msg.CloseLabel != "" {
		fmt.Fprintf(&b, "%s %s\n", closeMarker, msg.CloseLabel)
	}
	return strings.TrimRight(b.String(), "\n")
}
