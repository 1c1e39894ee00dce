package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adventcli/aoc/cmd/codeCommand"
	"github.com/adventcli/aoc/cmd/configCommand"
	"github.com/adventcli/aoc/cmd/flags"
	"github.com/adventcli/aoc/cmd/initCommand"
	"github.com/adventcli/aoc/cmd/pathCommand"
	"github.com/adventcli/aoc/cmd/runCommand"
	"github.com/adventcli/aoc/cmd/submitCommand"
	"github.com/adventcli/aoc/cmd/urlCommand"
	"github.com/adventcli/aoc/cmd/versionCommand"
	"github.com/adventcli/aoc/domain/model/params"
	"github.com/adventcli/aoc/domain/service/paramResolve"
	"github.com/adventcli/aoc/domain/service/projectLocate"
	"github.com/adventcli/aoc/domain/service/scaffold"
	"github.com/adventcli/aoc/domain/service/solutionRun"
	aocClient "github.com/adventcli/aoc/infrastructure/external/aoc"
	configRepo "github.com/adventcli/aoc/infrastructure/repository/config"
	historyRepo "github.com/adventcli/aoc/infrastructure/repository/history"
	executorImpl "github.com/adventcli/aoc/infrastructure/system/executor"
	ksuidImpl "github.com/adventcli/aoc/infrastructure/system/ksuid"
	timerImpl "github.com/adventcli/aoc/infrastructure/system/timer"
	"github.com/adventcli/aoc/logging"
)

type RootCommand struct {
	CobraCommand *cobra.Command
}

func NewRootCommand() *RootCommand {
	var explicit params.Explicit
	var verbosity int

	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code project helper",
		Long: `aoc locates per-day solution projects through a templated path, scaffolds
them, runs them and talks to adventofcode.com for puzzle input and answers.
Without a subcommand it behaves like 'aoc run'.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(verbosity)
			return nil
		},
	}

	flags.Register(cmd.PersistentFlags(), &explicit)
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity (repeatable)")

	clock := timerImpl.NewTimer()
	exec := executorImpl.NewExecutor()
	ksuidGenerator := ksuidImpl.NewKsuidGenerator()
	configRepository := configRepo.NewConfigRepository()
	historyRepository := historyRepo.NewHistoryRepository()
	client := aocClient.NewAocClient()

	paramResolveSrv := paramResolve.NewParamResolveService(clock)
	projectLocateSrv := projectLocate.NewProjectLocateService(configRepository, paramResolveSrv)
	scaffoldSrv := scaffold.NewScaffoldService()
	solutionRunSrv := solutionRun.NewSolutionRunService(exec)

	runCmd := runCommand.NewRunCommand(&explicit, projectLocateSrv, scaffoldSrv, solutionRunSrv, client)

	cmd.AddCommand(runCmd.CobraCommand)
	cmd.AddCommand(initCommand.NewInitCommand(&explicit, projectLocateSrv, scaffoldSrv, client).CobraCommand)
	cmd.AddCommand(pathCommand.NewPathCommand(&explicit, projectLocateSrv).CobraCommand)
	cmd.AddCommand(codeCommand.NewCodeCommand(&explicit, projectLocateSrv, exec).CobraCommand)
	cmd.AddCommand(urlCommand.NewUrlCommand(&explicit, projectLocateSrv).CobraCommand)
	cmd.AddCommand(submitCommand.NewSubmitCommand(&explicit, projectLocateSrv, client, historyRepository, ksuidGenerator, clock).CobraCommand)
	cmd.AddCommand(configCommand.NewConfigCommand(configRepository).CobraCommand)
	cmd.AddCommand(versionCommand.NewVersionCommand().CobraCommand)

	// Bare 'aoc' runs the default mode.
	cmd.RunE = runCmd.CobraCommand.RunE
	cmd.Args = cobra.NoArgs

	return &RootCommand{
		CobraCommand: cmd,
	}
}
