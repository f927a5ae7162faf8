package tasks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tasks "github.com/goliatone/go-tasks"
)

func TestCollectionLoadMissingFile(t *testing.T) {
	col := tasks.NewCollection[tasks.Task](filepath.Join(t.TempDir(), "tareas.json"))

	records, err := col.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestCollectionReplaceAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tareas.json")
	col := tasks.NewCollection[tasks.Task](path)

	want := []tasks.Task{
		{ID: 1, Title: "Comprar pan", Description: "media barra"},
		{ID: 2, Title: "Pagar alquiler"},
	}

	require.NoError(t, col.Replace(want))

	got, err := col.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// the document on disk stays a plain JSON array
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 0 && data[0] == '[')
}

func TestCollectionLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tareas.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	col := tasks.NewCollection[tasks.Task](path)

	_, err := col.Load()
	require.Error(t, err)

	var richErr *errors.Error
	require.ErrorAs(t, err, &richErr)
	assert.Equal(t, tasks.TextCodeStoreUnavailable, richErr.TextCode)
	assert.Equal(t, errors.CategoryInternal, richErr.Category)
}

func TestCollectionUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tareas.json")
	col := tasks.NewCollection[tasks.Task](path)

	t.Run("Persists the result of fn", func(t *testing.T) {
		err := col.Update(func(records []tasks.Task) ([]tasks.Task, error) {
			return append(records, tasks.Task{ID: 1, Title: "primera"}), nil
		})
		require.NoError(t, err)

		records, err := col.Load()
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "primera", records[0].Title)
	})

	t.Run("An error from fn aborts the write", func(t *testing.T) {
		err := col.Update(func(records []tasks.Task) ([]tasks.Task, error) {
			return nil, tasks.ErrTaskNotFound
		})
		assert.ErrorIs(t, err, tasks.ErrTaskNotFound)

		records, err := col.Load()
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}
