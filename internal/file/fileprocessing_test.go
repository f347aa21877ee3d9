//go:build unit

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSessionFile(t *testing.T) {
	t.Run("creates and truncates a session file", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(fileName, []byte("old contents"), 0644), "write old file")

		// Execute
		f, err := CreateSessionFile(fileName)

		// Check
		require.NoError(t, err, "create session file")
		stat, err := f.Stat()
		assert.NoError(t, err, "stat")
		assert.Zero(t, stat.Size(), "truncated")
		assert.NoError(t, CloseFile(f), "close")
	})

	t.Run("refuses a directory", func(t *testing.T) {
		// Execute
		_, err := CreateSessionFile(t.TempDir())

		// Check
		assert.Error(t, err, "directory")
	})
}

func TestOpenSessionFile(t *testing.T) {
	t.Run("opens an existing session file", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(fileName, []byte("{}"), 0644), "write file")

		// Execute
		f, err := OpenSessionFile(fileName)

		// Check
		assert.NoError(t, err, "open session file")
		assert.NoError(t, CloseFile(f), "close")
	})

	t.Run("rejects missing, empty and directory", func(t *testing.T) {
		// Prepare
		dir := t.TempDir()
		empty := filepath.Join(dir, "empty.json")
		require.NoError(t, os.WriteFile(empty, nil, 0644), "write empty file")

		// Execute
		_, err1 := OpenSessionFile(filepath.Join(dir, "missing.json"))
		_, err2 := OpenSessionFile(empty)
		_, err3 := OpenSessionFile(dir)

		// Check
		assert.Error(t, err1, "missing")
		assert.Error(t, err2, "empty")
		assert.Error(t, err3, "directory")
	})
}

func TestRemoveFile(t *testing.T) {
	t.Run("removes files but leaves directories alone", func(t *testing.T) {
		// Prepare
		dir := t.TempDir()
		fileName := filepath.Join(dir, "session.json")
		require.NoError(t, os.WriteFile(fileName, []byte("{}"), 0644), "write file")

		// Execute
		err1 := RemoveFile(fileName)
		err2 := RemoveFile(dir)
		err3 := RemoveFile(filepath.Join(dir, "missing.json"))

		// Check
		assert.NoError(t, err1, "remove file")
		assert.NoError(t, err2, "directory ignored")
		assert.NoError(t, err3, "missing ignored")
		_, err := os.Stat(fileName)
		assert.True(t, os.IsNotExist(err), "file gone")
		_, err = os.Stat(dir)
		assert.NoError(t, err, "directory kept")
	})
}
