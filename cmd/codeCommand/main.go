package codeCommand

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adventcli/aoc/domain/model/params"
	"github.com/adventcli/aoc/domain/model/placeholder"
	"github.com/adventcli/aoc/domain/service/projectLocate"
	"github.com/adventcli/aoc/domain/system/executor"
)

type CodeCommand struct {
	CobraCommand *cobra.Command
}

// NewCodeCommand opens the day's project in the user's editor ($EDITOR,
// falling back to vi).
func NewCodeCommand(
	explicit *params.Explicit,
	projectLocateService *projectLocate.ProjectLocateService,
	exec executor.IExecutor,
) *CodeCommand {
	cmd := &cobra.Command{
		Use:   "code",
		Short: "Open the day's project in the editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := projectLocateService.Locate(*explicit,
				placeholder.NameYear, placeholder.NameDay, placeholder.NameLanguage)
			if err != nil {
				return err
			}
			if loc.Values.Language == nil {
				return fmt.Errorf("language is required to open a project (use -l)")
			}

			if _, err := os.Stat(loc.ProjectPath); os.IsNotExist(err) {
				return fmt.Errorf("project %s does not exist, scaffold it with 'aoc init'", loc.ProjectPath)
			}

			editor := os.Getenv("EDITOR")
			if editor == "" {
				editor = "vi"
			}

			return exec.Run(loc.ProjectPath, editor, ".")
		},
	}

	return &CodeCommand{CobraCommand: cmd}
}
