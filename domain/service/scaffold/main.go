package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/adventcli/aoc/domain/model/language"
)

// ScaffoldService creates a day's project directory with the language's
// starter files. Existing files are never overwritten; when a file has
// drifted from the starter content a diff is shown instead.
type ScaffoldService struct{}

func NewScaffoldService() *ScaffoldService {
	return &ScaffoldService{}
}

func (s *ScaffoldService) CreateProject(projectPath string, lang language.Language) error {
	info, ok := language.Get(lang)
	if !ok {
		return fmt.Errorf("unknown language %q", lang)
	}

	if err := os.MkdirAll(projectPath, os.ModePerm); err != nil {
		return err
	}

	for _, starter := range info.Starters {
		dest := filepath.Join(projectPath, starter.Path)

		existing, err := os.ReadFile(dest)
		if err == nil {
			if string(existing) != starter.Content {
				fmt.Printf("kept %s (differs from the starter):\n", dest)
				printDiff(starter.Content, string(existing))
			}
			continue
		}
		if !os.IsNotExist(err) {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
			return err
		}
		if err := os.WriteFile(dest, []byte(starter.Content), 0644); err != nil {
			return err
		}
		fmt.Printf("created %s\n", dest)
	}

	return nil
}

// WriteInput stores the puzzle input as input.txt. An existing non-empty
// input is left alone: the site serves the same input every time.
func (s *ScaffoldService) WriteInput(projectPath string, input string) error {
	dest := filepath.Join(projectPath, "input.txt")

	if stat, err := os.Stat(dest); err == nil && stat.Size() > 0 {
		return nil
	}

	if err := os.MkdirAll(projectPath, os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(dest, []byte(input), 0644)
}

// HasInput reports whether input.txt exists and is non-empty.
func (s *ScaffoldService) HasInput(projectPath string) bool {
	stat, err := os.Stat(filepath.Join(projectPath, "input.txt"))
	return err == nil && stat.Size() > 0
}

func printDiff(want, got string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	fmt.Println(dmp.DiffPrettyText(diffs))
}
