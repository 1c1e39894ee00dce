package runCommand

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
	"github.com/adventcli/aoc/domain/service/solutionRun"
	"github.com/adventcli/aoc/domain/system/executor"
	"github.com/adventcli/aoc/domain/system/timer"
	configRepo "github.com/adventcli/aoc/infrastructure/repository/config"
	"github.com/adventcli/aoc/testUtil"
)

type fixture struct {
	space        testUtil.Space
	spaceDir     string
	mockExecutor *executor.MockIExecutor
	mockClient   *aoc.MockClient
	rootCmd      *cobra.Command
}

func setup(t *testing.T, configContent func(spaceDir string) string) fixture {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	space := testUtil.BeginTestSpace(t)
	t.Cleanup(space.CleanUp)
	space.AsHome()
	space.WriteConfig(configContent(space.Dir))

	mockTimer := timer.NewMockITimer(mockCtrl)
	mockTimer.EXPECT().Now().
		Return(time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)).AnyTimes()

	mockExecutor := executor.NewMockIExecutor(mockCtrl)
	mockClient := aoc.NewMockClient(mockCtrl)

	locateSrv := projectLocate.NewProjectLocateService(
		configRepo.NewConfigRepository(),
		paramResolve.NewParamResolveService(mockTimer),
	)

	var explicit params.Explicit
	rootCmd := &cobra.Command{}
	flags.Register(rootCmd.PersistentFlags(), &explicit)

	runCmd := NewRunCommand(&explicit, locateSrv,
		scaffold.NewScaffoldService(),
		solutionRun.NewSolutionRunService(mockExecutor),
		mockClient)
	rootCmd.AddCommand(runCmd.CobraCommand)

	return fixture{
		space:        space,
		spaceDir:     space.Dir,
		mockExecutor: mockExecutor,
		mockClient:   mockClient,
		rootCmd:      rootCmd,
	}
}

func TestRunCommand(t *testing.T) {
	config := func(spaceDir string) string {
		return "template_path: " + spaceDir + "/code/{{year}}/day{{pad day}}/{{language}}\ncookie: filecookie\n"
	}

	t.Run("downloads input and runs the solution", func(t *testing.T) {
		f := setup(t, config)

		projectPath := filepath.Join(f.spaceDir, "code", "2023", "day03", "rust")
		f.space.WriteFile(filepath.Join(projectPath, "Cargo.toml"), []byte("[package]\n"))

		f.mockClient.EXPECT().FetchInput("filecookie", 2023, 3).Return("1 2 3\n", nil)
		f.mockExecutor.EXPECT().Run(projectPath, "cargo", "run", "--release").Return(nil)

		f.rootCmd.SetArgs([]string{"run", "-y", "2023", "-d", "3", "-l", "rust"})
		err := f.rootCmd.Execute()
		assert.NoError(t, err)

		f.space.AssertFile(filepath.Join(projectPath, "input.txt"), func(actual []byte) {
			assert.Equal(t, "1 2 3\n", string(actual))
		})
	})

	t.Run("does not fetch when input.txt is already present", func(t *testing.T) {
		f := setup(t, config)

		projectPath := filepath.Join(f.spaceDir, "code", "2023", "day03", "rust")
		f.space.WriteFile(filepath.Join(projectPath, "input.txt"), []byte("cached\n"))

		f.mockExecutor.EXPECT().Run(projectPath, "cargo", "run", "--release").Return(nil)

		f.rootCmd.SetArgs([]string{"run", "-y", "2023", "-d", "3", "-l", "rust"})
		err := f.rootCmd.Execute()
		assert.NoError(t, err)
	})

	t.Run("fails when the project was never scaffolded", func(t *testing.T) {
		f := setup(t, config)

		f.rootCmd.SetArgs([]string{"run", "-y", "2023", "-d", "3", "-l", "rust"})
		err := f.rootCmd.Execute()
		assert.ErrorContains(t, err, "aoc init")
	})

	t.Run("fails without a language", func(t *testing.T) {
		f := setup(t, config)

		f.rootCmd.SetArgs([]string{"run", "-y", "2023", "-d", "3"})
		err := f.rootCmd.Execute()
		assert.Error(t, err)
	})
}
