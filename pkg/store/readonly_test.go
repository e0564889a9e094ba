package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notelite/notelite/pkg/models"
	"github.com/notelite/notelite/pkg/store"
	"github.com/notelite/notelite/pkg/store/sqlstore"
)

func TestReadOnlyStore(t *testing.T) {
	inner, err := sqlstore.NewStore(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = inner.Close() })

	ctx := context.Background()
	require.NoError(t, inner.Migrate(ctx))

	readOnly := false
	s := store.NewReadOnlyStore(inner, func() bool { return readOnly })

	note := &models.Note{Text: "written before maintenance"}
	require.NoError(t, s.CreateNote(ctx, note))

	readOnly = true

	err = s.CreateNote(ctx, &models.Note{Text: "rejected"})
	assert.ErrorIs(t, err, store.ErrReadOnly)

	note.IsCompleted = true
	assert.ErrorIs(t, s.UpdateNote(ctx, note), store.ErrReadOnly)
	assert.ErrorIs(t, s.DeleteNote(ctx, note.ID), store.ErrReadOnly)

	// Reads keep working while writes are blocked.
	got, err := s.GetNote(ctx, note.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsCompleted)

	readOnly = false
	require.NoError(t, s.DeleteNote(ctx, note.ID))
}
