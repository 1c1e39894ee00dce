package initCommand

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adventcli/aoc/cmd/flags"
	"github.com/adventcli/aoc/domain/external/aoc"
	"github.com/adventcli/aoc/domain/model/params"
	"github.com/adventcli/aoc/domain/service/paramResolve"
	"github.com/adventcli/aoc/domain/service/projectLocate"
	"github.com/adventcli/aoc/domain/service/scaffold"
	"github.com/adventcli/aoc/domain/system/timer"
	configRepo "github.com/adventcli/aoc/infrastructure/repository/config"
	"github.com/adventcli/aoc/testUtil"
)

func setup(t *testing.T, configContent func(spaceDir string) string) (testUtil.Space, string, *aoc.MockClient, *cobra.Command) {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	space := testUtil.BeginTestSpace(t)
	t.Cleanup(space.CleanUp)
	space.AsHome()
	space.WriteConfig(configContent(space.Dir))

	mockTimer := timer.NewMockITimer(mockCtrl)
	mockTimer.EXPECT().Now().
		Return(time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)).AnyTimes()

	mockClient := aoc.NewMockClient(mockCtrl)

	locateSrv := projectLocate.NewProjectLocateService(
		configRepo.NewConfigRepository(),
		paramResolve.NewParamResolveService(mockTimer),
	)

	var explicit params.Explicit
	rootCmd := &cobra.Command{}
	flags.Register(rootCmd.PersistentFlags(), &explicit)

	initCmd := NewInitCommand(&explicit, locateSrv, scaffold.NewScaffoldService(), mockClient)
	rootCmd.AddCommand(initCmd.CobraCommand)

	return space, space.Dir, mockClient, rootCmd
}

func TestInitCommand(t *testing.T) {
	t.Run("scaffolds starter files and downloads input", func(t *testing.T) {
		config := func(spaceDir string) string {
			return "template_path: " + spaceDir + "/code/{{year}}/day{{pad day}}/{{language}}\ncookie: filecookie\n"
		}
		space, spaceDir, mockClient, rootCmd := setup(t, config)

		mockClient.EXPECT().FetchInput("filecookie", 2023, 5).Return("7 8 9\n", nil)

		rootCmd.SetArgs([]string{"init", "-y", "2023", "-d", "5", "-l", "python"})
		err := rootCmd.Execute()
		assert.NoError(t, err)

		projectPath := filepath.Join(spaceDir, "code", "2023", "day05", "python")
		space.AssertExistPath(filepath.Join(projectPath, "main.py"))
		space.AssertFile(filepath.Join(projectPath, "input.txt"), func(actual []byte) {
			assert.Equal(t, "7 8 9\n", string(actual))
		})
	})

	t.Run("skips the download when no session is configured", func(t *testing.T) {
		config := func(spaceDir string) string {
			return "template_path: " + spaceDir + "/code/{{year}}/day{{pad day}}/{{language}}\n"
		}
		space, spaceDir, _, rootCmd := setup(t, config)

		rootCmd.SetArgs([]string{"init", "-y", "2023", "-d", "5", "-l", "rust"})
		err := rootCmd.Execute()
		assert.NoError(t, err)

		projectPath := filepath.Join(spaceDir, "code", "2023", "day05", "rust")
		space.AssertExistPath(filepath.Join(projectPath, "Cargo.toml"))
		space.AssertExistPath(filepath.Join(projectPath, "src", "main.rs"))
	})

	t.Run("never overwrites an existing starter file", func(t *testing.T) {
		config := func(spaceDir string) string {
			return "template_path: " + spaceDir + "/code/{{year}}/day{{pad day}}/{{language}}\n"
		}
		space, spaceDir, _, rootCmd := setup(t, config)

		projectPath := filepath.Join(spaceDir, "code", "2023", "day05", "python")
		space.WriteFile(filepath.Join(projectPath, "main.py"), []byte("print('edited')\n"))

		rootCmd.SetArgs([]string{"init", "-y", "2023", "-d", "5", "-l", "python"})
		err := rootCmd.Execute()
		assert.NoError(t, err)

		space.AssertFile(filepath.Join(projectPath, "main.py"), func(actual []byte) {
			assert.Equal(t, "print('edited')\n", string(actual))
		})
	})

	t.Run("fails without a language", func(t *testing.T) {
		config := func(spaceDir string) string {
			return "template_path: " + spaceDir + "/code/{{year}}/day{{pad day}}/{{language}}\n"
		}
		_, _, _, rootCmd := setup(t, config)

		rootCmd.SetArgs([]string{"init", "-y", "2023", "-d", "5"})
		err := rootCmd.Execute()
		assert.Error(t, err)
	})
}
