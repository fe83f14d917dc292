package chat

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	convo "github.com/oguzhan/hoca/internal/chat"
	"github.com/oguzhan/hoca/internal/protocol"
	"github.com/oguzhan/hoca/internal/ui/theme"
)

func (c *ChatScreen) View(width, height int) string {
	composerHeight := 3
	transcriptHeight := height - composerHeight
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	transcript := c.renderTranscript(width, transcriptHeight)

	var b strings.Builder
	b.WriteString(transcript)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-2, 1))))
	b.WriteString("\n")
	b.WriteString(c.renderComposer(width))

	return b.String()
}

// renderTranscript renders the newest messages that fit the viewport.
func (c *ChatScreen) renderTranscript(width, height int) string {
	bubbleWidth := width - 8
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var blocks []string
	messages := c.conv.Messages()
	for i, m := range messages {
		lastQuiz := c.mcActive && i == len(messages)-1 && m.IsQuiz()
		blocks = append(blocks, c.renderMessage(m, bubbleWidth, lastQuiz))
	}

	if c.waiting {
		blocks = append(blocks, theme.Hint.Render("  Hoca düşünüyor..."))
	}
	if c.hint != "" {
		blocks = append(blocks, theme.Hint.Render("  "+c.hint))
	}

	joined := strings.Join(blocks, "\n\n")
	lines := strings.Split(joined, "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}

func (c *ChatScreen) renderMessage(m convo.Message, bubbleWidth int, activeQuiz bool) string {
	var body string
	switch {
	case activeQuiz:
		body = c.mc.View()
	case m.IsQuiz():
		body = protocol.FormatMessage(m)
	default:
		body = m.Body
	}

	if !m.Attachment.None() {
		if note := attachmentNote(m.Attachment); note != "" {
			if body != "" {
				body += "\n"
			}
			body += theme.Hint.Render(note)
		}
	}

	if m.Speaker == convo.SpeakerUser {
		bubble := theme.UserBubble.Width(min(bubbleWidth, lipgloss.Width(body)+2)).Render(body)
		return lipgloss.PlaceHorizontal(bubbleWidth+6, lipgloss.Right, bubble)
	}
	return theme.TutorBubble.MaxWidth(bubbleWidth).Render(body)
}

// attachmentNote summarizes a media payload for the transcript.
func attachmentNote(a convo.Attachment) string {
	switch a.Kind {
	case convo.AttachmentImage:
		if a.URI != "" {
			return fmt.Sprintf("[Görsel] %s", a.URI)
		}
		return fmt.Sprintf("[Görsel — %s, %d bayt]", a.MIMEType, len(a.Data))
	case convo.AttachmentVideo:
		return fmt.Sprintf("[Video] %s", a.URI)
	}
	return ""
}

func (c *ChatScreen) renderComposer(width int) string {
	if c.waiting {
		return theme.Hint.Render("  Cevap bekleniyor...")
	}
	if c.mcActive {
		return theme.Hint.Render("  Soruyu cevapla, sonra devam edelim.")
	}
	return "  " + c.input.View()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
