package initCommand

import (
	"fmt"

	"github.com/spf13/cobra"

	domainAoc "github.com/adventcli/aoc/domain/external/aoc"
	"github.com/adventcli/aoc/domain/model/params"
	"github.com/adventcli/aoc/domain/model/placeholder"
	"github.com/adventcli/aoc/domain/service/projectLocate"
	"github.com/adventcli/aoc/domain/service/scaffold"
	"github.com/adventcli/aoc/logging"
)

type InitCommand struct {
	CobraCommand *cobra.Command
}

func NewInitCommand(
	explicit *params.Explicit,
	projectLocateService *projectLocate.ProjectLocateService,
	scaffoldService *scaffold.ScaffoldService,
	aocClient domainAoc.Client,
) *InitCommand {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold the day's solution project",
		Long: `Create the project directory for the resolved year, day and language,
write the language's starter files and download the puzzle input.`,
		Args: cobra.NoArgs,
		RunE: runInit(explicit, projectLocateService, scaffoldService, aocClient),
	}

	return &InitCommand{CobraCommand: cmd}
}

func runInit(
	explicit *params.Explicit,
	projectLocateService *projectLocate.ProjectLocateService,
	scaffoldService *scaffold.ScaffoldService,
	aocClient domainAoc.Client,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log := logging.GetLogger("init")

		loc, err := projectLocateService.Locate(*explicit,
			placeholder.NameYear, placeholder.NameDay, placeholder.NameLanguage)
		if err != nil {
			return err
		}
		if loc.Values.Language == nil {
			return fmt.Errorf("language is required to scaffold a project (use -l)")
		}

		if err := scaffoldService.CreateProject(loc.ProjectPath, *loc.Values.Language); err != nil {
			return err
		}

		session := loc.Session()
		if session == "" {
			log.Warn().Msg("no session token configured, skipping input download")
		} else if !scaffoldService.HasInput(loc.ProjectPath) {
			input, err := aocClient.FetchInput(session, *loc.Values.Year, *loc.Values.Day)
			if err != nil {
				return err
			}
			if err := scaffoldService.WriteInput(loc.ProjectPath, input); err != nil {
				return err
			}
		}

		fmt.Printf("Initialized %d day %d (%s) at %s\n",
			*loc.Values.Year, *loc.Values.Day, *loc.Values.Language, loc.ProjectPath)
		return nil
	}
}
