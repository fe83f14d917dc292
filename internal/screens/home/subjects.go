package home

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oguzhan/hoca/internal/catalog"
	"github.com/oguzhan/hoca/internal/router"
	"github.com/oguzhan/hoca/internal/screen"
	chatscreen "github.com/oguzhan/hoca/internal/screens/chat"
	"github.com/oguzhan/hoca/internal/tutor"
	"github.com/oguzhan/hoca/internal/ui/components"
	"github.com/oguzhan/hoca/internal/ui/layout"
	"github.com/oguzhan/hoca/internal/ui/theme"
)

// subjectScreen picks the subject for a new conversation.
type subjectScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*subjectScreen)(nil)

func newSubjectScreen(svc *tutor.Service) *subjectScreen {
	items := make([]components.MenuItem, 0, len(catalog.Subjects)+1)
	for _, subject := range catalog.Subjects {
		name := subject.Name
		items = append(items, components.MenuItem{
			Label: name,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: chatscreen.New(svc, name)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Geri",
		Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		},
	})

	return &subjectScreen{menu: components.NewMenu(items)}
}

func (s *subjectScreen) Init() tea.Cmd {
	return nil
}

func (s *subjectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *subjectScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Hangi dersi çalışalım?")

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View())

	return "\n\n" + title + "\n\n" + menu
}

func (s *subjectScreen) Title() string {
	return "Ders Seç"
}

func (s *subjectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Seç"},
		{Key: "Enter", Description: "Başla"},
		{Key: "Esc", Description: "Geri"},
	}
}
