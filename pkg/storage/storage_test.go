package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/perovskite/pkg/form"
	"github.com/narasux/perovskite/pkg/model"
)

func TestGetOrCreate(t *testing.T) {
	store, err := NewSessionStore(8)
	require.NoError(t, err)

	sess := store.GetOrCreate("")
	require.NotNil(t, sess)
	assert.Len(t, sess.ID, 32)

	rows, err := sess.Form.Rows(form.ASiteContainerID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, model.ElementMA, rows[0].Name)

	assert.Same(t, sess, store.GetOrCreate(sess.ID))
	assert.NotSame(t, sess, store.GetOrCreate("unknown"))
	assert.Equal(t, 2, store.Len())
}

func TestEviction(t *testing.T) {
	store, err := NewSessionStore(2)
	require.NoError(t, err)

	first := store.GetOrCreate("")
	store.GetOrCreate("")
	store.GetOrCreate("")

	assert.Equal(t, 2, store.Len())
	assert.NotEqual(t, first.ID, store.GetOrCreate(first.ID).ID)
}

func TestNewSessionStoreInvalidSize(t *testing.T) {
	_, err := NewSessionStore(0)
	assert.Error(t, err)
}
