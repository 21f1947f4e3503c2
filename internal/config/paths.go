// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "umaskexec"
	configFileName = "config.toml"
)

// GetXDGConfigHome returns XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// DefaultPath returns the config file path used when none is given.
// An empty string means no home directory could be found.
func DefaultPath() string {
	configHome := GetXDGConfigHome()
	if configHome == "" {
		return ""
	}

	return filepath.Join(configHome, appName, configFileName)
}
