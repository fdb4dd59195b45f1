// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathheroes/internal/catalog"
	"github.com/abhisek/mathheroes/internal/game"
	"github.com/abhisek/mathheroes/internal/store"
)

// TestSeed is the question seed used by NewTestServices.
const TestSeed = 42

// NewTestStore opens an in-memory store private to the running test.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { MustClose(t, st) })
	return st
}

// NewTestServices returns Services over NewTestStore with a fixed seed.
func NewTestServices(t *testing.T) *game.Services {
	t.Helper()
	return game.NewServices(catalog.Default(), NewTestStore(t), nil, TestSeed)
}

// NewTestPlayer logs name in against fresh test services.
func NewTestPlayer(t *testing.T, name string) *game.Player {
	t.Helper()
	p, err := NewTestServices(t).Login(context.Background(), name)
	require.NoError(t, err)
	return p
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
