package runCommand

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	domainAoc "github.com/adventcli/aoc/domain/external/aoc"
	"github.com/adventcli/aoc/domain/model/params"
	"github.com/adventcli/aoc/domain/model/placeholder"
	"github.com/adventcli/aoc/domain/service/projectLocate"
	"github.com/adventcli/aoc/domain/service/scaffold"
	"github.com/adventcli/aoc/domain/service/solutionRun"
	"github.com/adventcli/aoc/logging"
)

type RunCommand struct {
	CobraCommand *cobra.Command
}

func NewRunCommand(
	explicit *params.Explicit,
	projectLocateService *projectLocate.ProjectLocateService,
	scaffoldService *scaffold.ScaffoldService,
	solutionRunService *solutionRun.SolutionRunService,
	aocClient domainAoc.Client,
) *RunCommand {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build and run the day's solution",
		Long: `Build and run the solution project for the resolved year, day and language.
When input.txt is missing and a session token is configured, the puzzle
input is downloaded first.`,
		Args: cobra.NoArgs,
		RunE: runRun(explicit, projectLocateService, scaffoldService, solutionRunService, aocClient),
	}

	return &RunCommand{CobraCommand: cmd}
}

func runRun(
	explicit *params.Explicit,
	projectLocateService *projectLocate.ProjectLocateService,
	scaffoldService *scaffold.ScaffoldService,
	solutionRunService *solutionRun.SolutionRunService,
	aocClient domainAoc.Client,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log := logging.GetLogger("run")

		loc, err := projectLocateService.Locate(*explicit,
			placeholder.NameYear, placeholder.NameDay, placeholder.NameLanguage)
		if err != nil {
			return err
		}
		if loc.Values.Language == nil {
			return fmt.Errorf("language is required to run a solution (use -l)")
		}

		if _, err := os.Stat(loc.ProjectPath); os.IsNotExist(err) {
			return fmt.Errorf("project %s does not exist, scaffold it with 'aoc init'", loc.ProjectPath)
		}

		log.Debug().Str("path", loc.ProjectPath).Msg("resolved project path")

		if !scaffoldService.HasInput(loc.ProjectPath) {
			session := loc.Session()
			if session == "" {
				log.Warn().Msg("no session token configured, skipping input download")
			} else {
				input, err := aocClient.FetchInput(session, *loc.Values.Year, *loc.Values.Day)
				if err != nil {
					return err
				}
				if err := scaffoldService.WriteInput(loc.ProjectPath, input); err != nil {
					return err
				}
				log.Info().Msg("downloaded puzzle input")
			}
		}

		return solutionRunService.Run(loc.ProjectPath, *loc.Values.Language)
	}
}
