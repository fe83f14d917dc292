package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oguzhan/hoca/internal/chat"
	"github.com/oguzhan/hoca/internal/ui/theme"
)

// MultiChoice presents one quiz item's options. After submission the
// correct option is highlighted green, the near-miss distractor yellow, and
// a wrong pick red.
type MultiChoice struct {
	Question     string
	Options      []chat.Option
	CorrectLabel chat.Label
	CloseLabel   chat.Label
	Selected     int
	Submitted    bool
	Chosen       chat.Label
}

// NewMultiChoice creates a selector from a parsed quiz message.
func NewMultiChoice(item chat.Message) MultiChoice {
	return MultiChoice{
		Question:     item.Body,
		Options:      item.Options,
		CorrectLabel: item.CorrectLabel,
		CloseLabel:   item.CloseLabel,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Options can also be
// picked directly by their letter.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.Chosen = m.Options[m.Selected].Label
	case "a", "b", "c", "d":
		want := chat.Label(strings.ToUpper(key))
		for i, opt := range m.Options {
			if opt.Label == want {
				m.Selected = i
				m.Submitted = true
				m.Chosen = opt.Label
				break
			}
		}
	}

	return m, nil
}

// View renders the question and options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, opt.Label, opt.Text)

		switch {
		case !m.Submitted && i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		case !m.Submitted:
			s += theme.Unselected.Render(line) + "\n"
		case opt.Label == m.CorrectLabel:
			s += theme.Correct.Render(line) + "\n"
		case opt.Label == m.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case opt.Label == m.CloseLabel && m.CloseLabel != m.CorrectLabel:
			s += theme.NearMiss.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect reports whether the submitted choice is the correct label.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.Chosen == m.CorrectLabel
}
