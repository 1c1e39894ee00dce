package testUtil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	utilPath "github.com/adventcli/aoc/util/path"
)

type Space struct {
	t       *testing.T
	Dir     string
	CleanUp func()
}

// BeginTestSpace chdirs into a fresh temp directory. Dir is symlink-resolved
// so paths built from it compare equal to a normalized working directory
// (macOS temp dirs live behind /private).
func BeginTestSpace(t *testing.T) Space {
	t.Helper()

	originalDir, err := os.Getwd()
	assert.NoError(t, err)

	tempDir, err := os.MkdirTemp("", "")
	assert.NoError(t, err)

	tempDir, err = utilPath.AfterGetAbsPath(tempDir)
	assert.NoError(t, err)

	os.Chdir(tempDir)

	cleanup := func() {
		os.Chdir(originalDir)
		os.RemoveAll(tempDir)
	}

	return Space{
		t:       t,
		Dir:     tempDir,
		CleanUp: cleanup,
	}
}

// AsHome pins HOME to the space so the config file and submission history
// are read and written inside it.
func (s Space) AsHome() {
	s.t.Setenv("HOME", s.Dir)
	s.t.Setenv("AOC_SESSION", "")
}

// WriteConfig puts an aoc config file with the given content into the space.
func (s Space) WriteConfig(content string) {
	s.WriteFile(filepath.Join(s.Dir, ".config", "aoc", "config.yml"), []byte(content))
}

func (s Space) WriteFile(path string, content []byte) {
	s.t.Helper()

	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, os.ModePerm)
	assert.NoError(s.t, err)

	err = os.WriteFile(path, content, 0644)
	assert.NoError(s.t, err)
}

func (s Space) AssertFile(path string, assertion func(actual []byte)) {
	s.t.Helper()

	actual, err := os.ReadFile(path)
	assert.NoError(s.t, err)

	assertion(actual)
}

func (s Space) AssertExistPath(path string) {
	s.t.Helper()

	_, err := os.Stat(path)
	assert.NoError(s.t, err)
}
