package config

import (
	"os"
	"path/filepath"

	"github.com/relcut/relcut/internal/constants"
	"github.com/relcut/relcut/internal/errors"
)

// GlobalConfigDir returns the path to the global relcut configuration directory.
// This is typically ~/.relcut on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.RelcutHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file.
// This is typically ~/.relcut/config.yaml on Unix systems.
//
// Returns an error if the home directory cannot be determined.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "get global config path")
	}
	return filepath.Join(dir, constants.GlobalConfigName), nil
}

// ProjectConfigPath returns the relative path to the project configuration file.
// This is always .relcut.yaml relative to the project root.
func ProjectConfigPath() string {
	return constants.ProjectConfigName
}

// LogDir returns the directory for the rotating CLI log file,
// typically ~/.relcut/logs.
func LogDir() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs"), nil
}
