package core

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRunfile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/home/user/project/Runfile", []byte("x:\n  true x\n"), 0644))

	t.Run("same directory", func(t *testing.T) {
		path, err := FindRunfile(fsys, "/home/user/project", DefaultRunfileName)
		require.NoError(t, err)
		assert.Equal(t, "/home/user/project/Runfile", path)
	})

	t.Run("walks up from a subdirectory", func(t *testing.T) {
		path, err := FindRunfile(fsys, "/home/user/project/a/b", DefaultRunfileName)
		require.NoError(t, err)
		assert.Equal(t, "/home/user/project/Runfile", path)
	})

	t.Run("nearest file wins", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fsys, "/home/user/project/a/Runfile", []byte("y:\n  true y\n"), 0644))

		path, err := FindRunfile(fsys, "/home/user/project/a/b", DefaultRunfileName)
		require.NoError(t, err)
		assert.Equal(t, "/home/user/project/a/Runfile", path)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := FindRunfile(fsys, "/elsewhere", DefaultRunfileName)
		require.ErrorIs(t, err, ErrNoRunfile)
	})
}
