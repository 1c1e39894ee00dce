package solutionRun

import (
	"fmt"
	"strings"

	"github.com/adventcli/aoc/domain/model/language"
	"github.com/adventcli/aoc/domain/system/executor"
)

// SolutionRunService builds and runs a day's solution with the language's
// toolchain, inside the project directory.
type SolutionRunService struct {
	executor executor.IExecutor
}

func NewSolutionRunService(executor executor.IExecutor) *SolutionRunService {
	return &SolutionRunService{
		executor: executor,
	}
}

func (s *SolutionRunService) Run(projectPath string, lang language.Language) error {
	info, ok := language.Get(lang)
	if !ok {
		return fmt.Errorf("unknown language %q", lang)
	}

	for _, step := range info.RunSteps {
		if err := s.executor.Run(projectPath, step[0], step[1:]...); err != nil {
			return fmt.Errorf("'%s' failed in %s: %w", strings.Join(step, " "), projectPath, err)
		}
	}

	return nil
}
