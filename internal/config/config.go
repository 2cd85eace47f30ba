// Package config resolves where the note store lives on disk.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// storeFileName is the name of the YAML file holding the note index.
const storeFileName = "scribe.yaml"

// GetStoreDir resolves the directory that holds the note store. It
// checks SCRIBE_DIR first, then the XDG config home, and finally falls
// back to the user's home directory.
func GetStoreDir() string {
	if explicit := os.Getenv("SCRIBE_DIR"); explicit != "" {
		return explicit
	}

	xdg.Reload()

	configHome := xdg.ConfigHome
	if configHome == "" {
		home := xdg.Home
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), "scribe")
			}
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "scribe")
}

// GetStoreFile returns the absolute path to the note store file.
func GetStoreFile() string {
	return filepath.Join(GetStoreDir(), storeFileName)
}
