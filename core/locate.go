package core

import (
	"errors"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultRunfileName is the file searched for when no explicit path is
// given.
const DefaultRunfileName = "Runfile"

// ErrNoRunfile is returned when no Runfile exists in the start directory or
// any of its parents.
var ErrNoRunfile = errors.New("no Runfile found in current directory or parent directories")

// FindRunfile walks from dir toward the filesystem root looking for a file
// called name, returning the first match.
func FindRunfile(fsys afero.Fs, dir, name string) (string, error) {
	dir = filepath.Clean(dir)
	for {
		candidate := filepath.Join(dir, name)
		if ok, err := afero.Exists(fsys, candidate); err != nil {
			return "", err
		} else if ok {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoRunfile
		}
		dir = parent
	}
}
