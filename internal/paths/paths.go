package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// ConfigDir returns $XDG_CONFIG_HOME/filterlist, or ~/.config/filterlist
// when XDG_CONFIG_HOME is unset.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "filterlist")
	}
	return filepath.Join(home(), ".config", "filterlist")
}

// DocumentFile returns the document read when no file is given and stdin
// is a terminal.
func DocumentFile() string {
	return filepath.Join(ConfigDir(), "items.yaml")
}
