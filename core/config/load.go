package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads the settings file from dir. A missing file is not an error;
// defaults are returned instead.
func Load(fsys afero.Fs, dir string) (*Config, error) {
	contents, err := afero.ReadFile(fsys, filepath.Join(dir, ConfigName))
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigName, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", ConfigName, err)
	}
	return out, nil
}
