package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ruminaider/filterlist/internal/paths"
	"github.com/stretchr/testify/assert"
)

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, _ := os.UserHomeDir()
	assert.True(t, strings.HasPrefix(paths.ConfigDir(), home))
	assert.True(t, strings.HasSuffix(paths.ConfigDir(), filepath.Join(".config", "filterlist")))
}

func TestConfigDir_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "filterlist"), paths.ConfigDir())
}

func TestDocumentFile(t *testing.T) {
	assert.True(t, strings.HasSuffix(paths.DocumentFile(), "items.yaml"))
}
