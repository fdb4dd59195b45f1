package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathheroes/internal/router"
	"github.com/abhisek/mathheroes/internal/screens/heroes"
	"github.com/abhisek/mathheroes/internal/screens/home"
	"github.com/abhisek/mathheroes/internal/screens/login"
	"github.com/abhisek/mathheroes/internal/screens/welcome"
	"github.com/abhisek/mathheroes/internal/testutil"
)

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestStartsOnSplash(t *testing.T) {
	m := newAppModel(testutil.NewTestServices(t))
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())
	assert.Empty(t, m.headerInfo().Learner)
}

func TestPlayerModelSkipsLogin(t *testing.T) {
	m, err := newPlayerModel(testutil.NewTestServices(t), "Maya")
	require.NoError(t, err)

	assert.Equal(t, 2, m.router.Depth())
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())

	info := m.headerInfo()
	assert.Equal(t, "Maya", info.Learner)
	assert.Equal(t, 0, info.HeroesFound)
	assert.Equal(t, 5, info.HeroesTotal)
}

func TestPlayerModelRejectsBlankName(t *testing.T) {
	_, err := newPlayerModel(testutil.NewTestServices(t), "  ")
	assert.Error(t, err)
}

func TestEscPopsOrdinaryScreens(t *testing.T) {
	m, err := newPlayerModel(testutil.NewTestServices(t), "Maya")
	require.NoError(t, err)

	p := m.router.Active().(*home.HomeScreen).Player()
	m.router.Push(heroes.New(p))

	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.IsType(t, router.PopScreenMsg{}, msg)

	m, _ = update(t, m, msg)
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
}

func TestEscDeliveredToBackHandler(t *testing.T) {
	m, err := newPlayerModel(testutil.NewTestServices(t), "Maya")
	require.NoError(t, err)

	// Home handles Esc itself by logging out to the root.
	m, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.IsType(t, router.PopToRootMsg{}, msg)

	m, _ = update(t, m, msg)
	assert.IsType(t, &login.LoginScreen{}, m.router.Active())
	assert.Empty(t, m.headerInfo().Learner)
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testutil.NewTestServices(t))
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(testutil.NewTestServices(t))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Our heroes need more room!")
}

func TestViewShowsHeaderAndHints(t *testing.T) {
	m, err := newPlayerModel(testutil.NewTestServices(t), "Maya")
	require.NoError(t, err)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.render()
	assert.Contains(t, view, "Math Heroes")
	assert.Contains(t, view, "Maya")
	assert.Contains(t, view, "Log out")
}
