package urlCommand

import (
	"fmt"

	"github.com/spf13/cobra"

	domainAoc "github.com/adventcli/aoc/domain/external/aoc"
	"github.com/adventcli/aoc/domain/model/params"
	"github.com/adventcli/aoc/domain/model/placeholder"
	"github.com/adventcli/aoc/domain/service/projectLocate"
)

type UrlCommand struct {
	CobraCommand *cobra.Command
}

// NewUrlCommand prints the puzzle page URL. This is the one mode that does
// not need a language.
func NewUrlCommand(
	explicit *params.Explicit,
	projectLocateService *projectLocate.ProjectLocateService,
) *UrlCommand {
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the day's puzzle URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := projectLocateService.Locate(*explicit,
				placeholder.NameYear, placeholder.NameDay)
			if err != nil {
				return err
			}

			fmt.Println(domainAoc.PuzzleURL(*loc.Values.Year, *loc.Values.Day))
			return nil
		},
	}

	return &UrlCommand{CobraCommand: cmd}
}
