package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathheroes/internal/game"
	"github.com/abhisek/mathheroes/internal/router"
	"github.com/abhisek/mathheroes/internal/screen"
	"github.com/abhisek/mathheroes/internal/screens/home"
	"github.com/abhisek/mathheroes/internal/screens/login"
	"github.com/abhisek/mathheroes/internal/screens/welcome"
	"github.com/abhisek/mathheroes/internal/ui/layout"
)

// playerScreen is implemented by screens that belong to a logged-in learner.
type playerScreen interface {
	Player() *game.Player
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	services *game.Services
	width    int
	height   int
}

// newAppModel starts on the splash screen, which hands over to login.
func newAppModel(services *game.Services) AppModel {
	splash := welcome.New(func() screen.Screen {
		return login.New(services)
	})
	return AppModel{
		router:   router.New(splash),
		services: services,
	}
}

// newPlayerModel skips the splash and login for a learner named up front.
// Login stays at the bottom of the stack so logging out returns to it.
func newPlayerModel(services *game.Services, learner string) (AppModel, error) {
	player, err := services.Login(context.Background(), learner)
	if err != nil {
		return AppModel{}, err
	}
	r := router.New(login.New(services))
	r.Push(home.New(player))
	return AppModel{router: r, services: services}, nil
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			m.saveActivePlayer()
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// saveActivePlayer flushes the logged-in learner's progress before exit.
func (m AppModel) saveActivePlayer() {
	ps, ok := m.router.Active().(playerScreen)
	if !ok {
		return
	}
	p := ps.Player()
	if p.Engine.InRound() {
		p.Engine.Quit(context.Background())
		p.Events.Drain()
	}
	if err := p.Logout(context.Background()); err != nil {
		m.services.Logger.Warn("save on exit failed", "learner", p.Name(), "err", err)
	}
}

// headerInfo reports the active learner, if any, for the header bar.
func (m AppModel) headerInfo() layout.HeaderInfo {
	ps, ok := m.router.Active().(playerScreen)
	if !ok {
		return layout.HeaderInfo{}
	}
	p := ps.Player()
	return layout.HeaderInfo{
		Learner:     p.Name(),
		HeroesFound: p.HeroCount(),
		HeroesTotal: len(p.Services.Catalog.Heroes()),
	}
}

func (m AppModel) footerHints() []layout.KeyHint {
	if khp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return khp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the whole frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerInfo(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program. A non-empty learner skips the login screen.
func Run(services *game.Services, learner string) error {
	model := newAppModel(services)
	if learner != "" {
		var err error
		model, err = newPlayerModel(services, learner)
		if err != nil {
			return fmt.Errorf("log in %q: %w", learner, err)
		}
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
