package projectLocate

import (
	"os"

	"github.com/adventcli/aoc/domain/model/params"
	"github.com/adventcli/aoc/domain/model/pathtemplate"
	"github.com/adventcli/aoc/domain/repository/config"
	"github.com/adventcli/aoc/domain/service/paramResolve"
	"github.com/adventcli/aoc/util/path"
)

// ProjectLocateService loads the configuration, compiles its template path
// and resolves the invocation's parameters into a concrete project
// location. Every command starts here.
type ProjectLocateService struct {
	configRepository    config.Repository
	paramResolveService *paramResolve.ParamResolveService
}

// Location is a fully resolved invocation target.
type Location struct {
	Config      *config.Config
	Values      params.Values
	ProjectPath string
}

// Session resolves the site session token. The AOC_SESSION environment
// variable (also loaded from .env) wins over the config file's cookie.
func (l Location) Session() string {
	if s := os.Getenv("AOC_SESSION"); s != "" {
		return s
	}
	return l.Config.Cookie
}

func NewProjectLocateService(
	configRepository config.Repository,
	paramResolveService *paramResolve.ParamResolveService,
) *ProjectLocateService {
	return &ProjectLocateService{
		configRepository:    configRepository,
		paramResolveService: paramResolveService,
	}
}

// Locate resolves parameters (explicit flags, then working-directory
// inference, then calendar defaults) and renders the project path. The
// placeholders listed in required must end up with a value wherever their
// marker appears in the template.
func (s *ProjectLocateService) Locate(explicit params.Explicit, required ...string) (Location, error) {
	configPath, err := s.configRepository.Locate()
	if err != nil {
		return Location{}, err
	}

	cfg, err := s.configRepository.Read(configPath)
	if err != nil {
		return Location{}, err
	}

	tmpl, err := pathtemplate.Compile(cfg.TemplatePath)
	if err != nil {
		return Location{}, err
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return Location{}, err
	}
	workingDir, err = path.AfterGetAbsPath(workingDir)
	if err != nil {
		return Location{}, err
	}

	values, err := s.paramResolveService.Resolve(explicit, tmpl, workingDir)
	if err != nil {
		return Location{}, err
	}

	projectPath, err := tmpl.Render(values, required...)
	if err != nil {
		return Location{}, err
	}

	return Location{
		Config:      cfg,
		Values:      values,
		ProjectPath: projectPath,
	}, nil
}
