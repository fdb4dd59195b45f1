package login

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathheroes/internal/game"
	"github.com/abhisek/mathheroes/internal/router"
	"github.com/abhisek/mathheroes/internal/screen"
	"github.com/abhisek/mathheroes/internal/screens/home"
	"github.com/abhisek/mathheroes/internal/ui/components"
	"github.com/abhisek/mathheroes/internal/ui/layout"
	"github.com/abhisek/mathheroes/internal/ui/theme"
)

const nameLimit = 32

// LoginScreen asks for the learner's name and opens their progress.
type LoginScreen struct {
	services *game.Services
	input    components.TextInput
	errMsg   string
}

var (
	_ screen.Screen          = (*LoginScreen)(nil)
	_ screen.KeyHintProvider = (*LoginScreen)(nil)
	_ screen.Resumer         = (*LoginScreen)(nil)
)

// New creates a LoginScreen.
func New(services *game.Services) *LoginScreen {
	return &LoginScreen{
		services: services,
		input:    components.NewTextInput("Your hero name", false, nameLimit),
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.input.Init()
}

// Resume clears the form after a learner logs out.
func (s *LoginScreen) Resume() tea.Cmd {
	s.input.Clear(components.FeedbackNone)
	s.errMsg = ""
	return s.input.Init()
}

func (s *LoginScreen) Title() string {
	return "Login"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return s, s.submit()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		s.errMsg = ""
	}
	return s, cmd
}

func (s *LoginScreen) submit() tea.Cmd {
	name := strings.TrimSpace(s.input.Value())
	if name == "" {
		s.errMsg = "Please enter a name!"
		return nil
	}

	player, err := s.services.Login(context.Background(), name)
	if err != nil {
		s.services.Logger.Error("login failed", "learner", name, "err", err)
		s.errMsg = "Could not open your progress. Please try again."
		return nil
	}

	next := home.New(player)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *LoginScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	form := []string{
		theme.Banner.Render("WHO'S READY TO SAVE THE DAY?"),
		"",
		theme.Subtitle.Render("Enter your name to load your heroes."),
		"",
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Width(cw-10).
			Padding(0, 1).
			Render(s.input.View()),
	}
	if s.errMsg != "" {
		form = append(form, "", lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(s.errMsg))
	}
	form = append(form, "", components.ArcadeButton("LOGIN", true, min(cw-10, 30)))

	content := lipgloss.JoinVertical(lipgloss.Center, form...)
	return components.CabinetFrame(components.ArcadeCard(content, cw), width, height)
}
