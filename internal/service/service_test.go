package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/freshcart/freshcart/internal/store"
)

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, st.Seed())
	return st
}
