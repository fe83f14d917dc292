package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/oguzhan/hoca/internal/quiz"
	"github.com/oguzhan/hoca/internal/router"
	"github.com/oguzhan/hoca/internal/screen"
	quizscreen "github.com/oguzhan/hoca/internal/screens/quiz"
	"github.com/oguzhan/hoca/internal/tutor"
	"github.com/oguzhan/hoca/internal/ui/components"
	"github.com/oguzhan/hoca/internal/ui/theme"
)

// HomeScreen is the application's entry menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen over the shared services.
func New(svc *tutor.Service, engine *quiz.Engine) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Sohbete başla", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newSubjectScreen(svc)}
			}
		}},
		{Label: "Kısa sınav (5 soru)", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(engine, quiz.ModeShort, "")}
			}
		}},
		{Label: "Maraton (100 soru)", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(engine, quiz.ModeMarathon, "")}
			}
		}},
		{Label: "Çıkış", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	banner := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(RenderBanner(width))
	sections = append(sections, banner)

	subtitle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Kişisel öğretmenin")
	sections = append(sections, subtitle)

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	return "\n" + strings.Join(sections, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Ana Menü"
}
