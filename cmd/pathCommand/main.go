package pathCommand

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adventcli/aoc/domain/model/params"
	"github.com/adventcli/aoc/domain/model/placeholder"
	"github.com/adventcli/aoc/domain/service/projectLocate"
)

type PathCommand struct {
	CobraCommand *cobra.Command
}

// NewPathCommand prints the resolved project path, for use in shell
// substitutions like cd "$(aoc path)".
func NewPathCommand(
	explicit *params.Explicit,
	projectLocateService *projectLocate.ProjectLocateService,
) *PathCommand {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the day's project path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := projectLocateService.Locate(*explicit,
				placeholder.NameYear, placeholder.NameDay, placeholder.NameLanguage)
			if err != nil {
				return err
			}
			if loc.Values.Language == nil {
				return fmt.Errorf("language is required to resolve a project path (use -l)")
			}

			fmt.Println(loc.ProjectPath)
			return nil
		},
	}

	return &PathCommand{CobraCommand: cmd}
}
