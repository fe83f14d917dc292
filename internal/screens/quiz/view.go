package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/oguzhan/hoca/internal/quiz"
	"github.com/oguzhan/hoca/internal/ui/components"
	"github.com/oguzhan/hoca/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	session := s.engine.Session()
	if session == nil {
		return ""
	}

	switch session.Phase() {
	case qz.PhaseLoading:
		return renderLoading(width)
	case qz.PhaseEmpty:
		return renderEmpty(width)
	case qz.PhaseFinished:
		return s.renderSummary(width)
	}
	return s.renderItem(width)
}

func (s *QuizScreen) renderItem(width int) string {
	session := s.engine.Session()

	var b strings.Builder

	label := fmt.Sprintf("  Soru %d/%d", session.Cursor()+1, session.Len())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label))
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(session.Cursor())/float64(session.Len()), false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 1))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))

	if s.showingFeedback {
		b.WriteString("\n")
		b.WriteString(s.renderVerdict(width))
	}

	return b.String()
}

func (s *QuizScreen) renderVerdict(width int) string {
	session := s.engine.Session()
	outcome, ok := session.OutcomeAt(session.Cursor())
	if !ok {
		return ""
	}

	var text string
	var style lipgloss.Style
	switch outcome {
	case qz.OutcomeCorrect:
		text = "Doğru!"
		style = theme.Correct
	case qz.OutcomeClose:
		text = "Çok yaklaştın!"
		style = theme.NearMiss
	default:
		text = "Olmadı, doğrusu yeşille işaretli."
		style = theme.Incorrect
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

func (s *QuizScreen) renderSummary(width int) string {
	session := s.engine.Session()

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Sınav bitti!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Puan: %d / 100", session.FinalScore())))
	b.WriteString("\n\n")

	detail := fmt.Sprintf("%s %d   %s %d   %s %d",
		theme.Correct.Render("Doğru:"), session.CountOutcome(qz.OutcomeCorrect),
		theme.NearMiss.Render("Yakın:"), session.CountOutcome(qz.OutcomeClose),
		theme.Incorrect.Render("Yanlış:"), session.CountOutcome(qz.OutcomeIncorrect),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, detail))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Ana menüye dönmek için Enter'a bas."))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Sorular hazırlanıyor...")
}

func renderEmpty(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("Soru üretilemedi."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Tekrar denemek için R'ye, geri dönmek için Esc'e bas."))
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
