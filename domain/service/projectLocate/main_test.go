package projectLocate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adventcli/aoc/domain/model/language"
	"github.com/adventcli/aoc/domain/model/params"
	"github.com/adventcli/aoc/domain/model/pathtemplate"
	"github.com/adventcli/aoc/domain/model/placeholder"
	"github.com/adventcli/aoc/domain/repository/config"
	"github.com/adventcli/aoc/domain/service/paramResolve"
	"github.com/adventcli/aoc/domain/system/timer"
	"github.com/adventcli/aoc/testUtil"
)

var allRequired = []string{placeholder.NameYear, placeholder.NameDay, placeholder.NameLanguage}

func newService(t *testing.T, templatePath string) *ProjectLocateService {
	t.Helper()

	mockCtrl := gomock.NewController(t)

	mockConfig := config.NewMockRepository(mockCtrl)
	mockConfig.EXPECT().Locate().Return("/home/alice/.config/aoc/config.yml", nil).AnyTimes()
	mockConfig.EXPECT().Read("/home/alice/.config/aoc/config.yml").
		Return(&config.Config{TemplatePath: templatePath, Cookie: "filecookie"}, nil).AnyTimes()

	mockTimer := timer.NewMockITimer(mockCtrl)
	mockTimer.EXPECT().Now().
		Return(time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)).AnyTimes()

	return NewProjectLocateService(mockConfig, paramResolve.NewParamResolveService(mockTimer))
}

func TestLocate(t *testing.T) {
	t.Run("renders the path from explicit flags", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		template := filepath.Join(space.Dir, "code", "{{year}}", "day{{pad day}}", "{{language}}")
		service := newService(t, template)

		loc, err := service.Locate(params.Explicit{Year: 2023, Day: 4, Language: "rust"}, allRequired...)
		assert.NoError(t, err)
		assert.Equal(t, filepath.Join(space.Dir, "code", "2023", "day04", "rust"), loc.ProjectPath)
	})

	t.Run("infers parameters from the working directory", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		projectDir := filepath.Join(space.Dir, "code", "2023", "day04", "rust")
		space.WriteFile(filepath.Join(projectDir, ".keep"), []byte{})
		assert.NoError(t, os.Chdir(projectDir))

		template := filepath.Join(space.Dir, "code", "{{year}}", "day{{pad day}}", "{{language}}")
		service := newService(t, template)

		loc, err := service.Locate(params.Explicit{}, allRequired...)
		assert.NoError(t, err)
		assert.Equal(t, projectDir, loc.ProjectPath)
		assert.Equal(t, 2023, *loc.Values.Year)
		assert.Equal(t, 4, *loc.Values.Day)
		assert.Equal(t, language.Rust, *loc.Values.Language)
	})

	t.Run("missing required language fails", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		template := filepath.Join(space.Dir, "code", "{{year}}", "day{{pad day}}", "{{language}}")
		service := newService(t, template)

		_, err := service.Locate(params.Explicit{Year: 2023, Day: 4}, allRequired...)
		var missing *pathtemplate.MissingParameterError
		assert.ErrorAs(t, err, &missing)
		assert.Equal(t, "language", missing.Name)
	})

	t.Run("language not required in url mode", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		template := filepath.Join(space.Dir, "code", "{{year}}", "day{{pad day}}", "{{language}}")
		service := newService(t, template)

		loc, err := service.Locate(params.Explicit{Year: 2023, Day: 4},
			placeholder.NameYear, placeholder.NameDay)
		assert.NoError(t, err)
		assert.Equal(t, 2023, *loc.Values.Year)
	})

	t.Run("malformed template is a config error", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		service := newService(t, "code/{{pad year}}/{{day}}")

		_, err := service.Locate(params.Explicit{Year: 2023, Day: 4, Language: "rust"}, allRequired...)
		var configErr *pathtemplate.ConfigError
		assert.ErrorAs(t, err, &configErr)
	})
}

func TestLocation_Session(t *testing.T) {
	loc := Location{Config: &config.Config{Cookie: "filecookie"}}

	t.Run("falls back to the config cookie", func(t *testing.T) {
		t.Setenv("AOC_SESSION", "")
		assert.Equal(t, "filecookie", loc.Session())
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("AOC_SESSION", "envcookie")
		assert.Equal(t, "envcookie", loc.Session())
	})
}
