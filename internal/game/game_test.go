package game

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathheroes/internal/catalog"
	"github.com/abhisek/mathheroes/internal/store"
)

// newTestServices returns Services over an in-memory store.
func newTestServices(t *testing.T) *Services {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewServices(catalog.Default(), st, nil, 7)
}

func TestLogin_FreshLearner(t *testing.T) {
	svc := newTestServices(t)
	p, err := svc.Login(context.Background(), "  alice  ")
	require.NoError(t, err)

	assert.Equal(t, "alice", p.Name())
	assert.True(t, p.Progress().IsLevelUnlocked(1))
	assert.Equal(t, 0, p.HeroCount())
	assert.NotNil(t, p.Engine)
}

func TestLogin_EmptyName(t *testing.T) {
	svc := newTestServices(t)
	_, err := svc.Login(context.Background(), "   ")
	assert.Error(t, err)
}

func TestLogout_SavesAndReloads(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	p, err := svc.Login(ctx, "bob")
	require.NoError(t, err)
	p.Progress().UnlockedRewards[1] = true
	require.NoError(t, p.Logout(ctx))

	again, err := svc.Login(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, again.HeroCount())
}
