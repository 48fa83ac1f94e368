// Package iofs prepares the file system layout used by srameta:
// configuration, cache and log directories, and the default config file.
package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/srameta/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the embedded config.yaml to the config
// directory unless the file already exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// ReadFile returns the content of a user-provided file, such as
// an import manifest.
func ReadFile(path string) ([]byte, error) {
	res, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}
