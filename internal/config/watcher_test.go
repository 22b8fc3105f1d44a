package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsWrites(t *testing.T) {
	path := writeConfig(t, "badges:\n  - label: one\n")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// Changes to other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("badges:\n  - label: two\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, w.Next(ctx))

	scene, err := Load(w.Path())
	require.NoError(t, err)
	require.Equal(t, "two", scene.Badges[0].Label)
}

func TestWatcher_HonoursContext(t *testing.T) {
	path := writeConfig(t, "badges:\n  - label: one\n")

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, w.Next(ctx), context.DeadlineExceeded)
}

func TestWatcher_Closed(t *testing.T) {
	w, err := NewWatcher(writeConfig(t, "badges:\n  - label: one\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.ErrorIs(t, w.Next(context.Background()), ErrWatcherClosed)
}
