package configCommand

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	configRepo "github.com/adventcli/aoc/infrastructure/repository/config"
	"github.com/adventcli/aoc/testUtil"
)

func setup(t *testing.T) (testUtil.Space, *cobra.Command) {
	t.Helper()

	space := testUtil.BeginTestSpace(t)
	t.Cleanup(space.CleanUp)
	space.AsHome()

	rootCmd := &cobra.Command{}
	configCmd := NewConfigCommand(configRepo.NewConfigRepository())
	rootCmd.AddCommand(configCmd.CobraCommand)

	return space, rootCmd
}

func TestConfigCommand(t *testing.T) {
	t.Run("init creates a default config file", func(t *testing.T) {
		space, rootCmd := setup(t)

		rootCmd.SetArgs([]string{"config", "--init"})
		err := rootCmd.Execute()
		assert.NoError(t, err)

		space.AssertFile(filepath.Join(space.Dir, ".config", "aoc", "config.yml"), func(actual []byte) {
			assert.Contains(t, string(actual), "template_path:")
			assert.Contains(t, string(actual), "{{pad day}}")
		})
	})

	t.Run("init refuses to clobber an existing file", func(t *testing.T) {
		space, rootCmd := setup(t)

		space.WriteConfig("template_path: ~/aoc/{{year}}/{{day}}\n")

		rootCmd.SetArgs([]string{"config", "--init"})
		err := rootCmd.Execute()
		assert.ErrorContains(t, err, "already exists")
	})

	t.Run("show fails when no config file exists", func(t *testing.T) {
		_, rootCmd := setup(t)

		rootCmd.SetArgs([]string{"config"})
		err := rootCmd.Execute()
		assert.Error(t, err)
	})

	t.Run("show prints the current config", func(t *testing.T) {
		space, rootCmd := setup(t)

		space.WriteConfig("template_path: ~/aoc/{{year}}/{{day}}\ncookie: filecookie\n")

		rootCmd.SetArgs([]string{"config"})
		err := rootCmd.Execute()
		assert.NoError(t, err)
	})
}
