package paramResolve

import (
	"github.com/adventcli/aoc/domain/model/params"
	"github.com/adventcli/aoc/domain/model/pathtemplate"
	"github.com/adventcli/aoc/domain/system/timer"
)

type ParamResolveService struct {
	timer timer.ITimer
}

func NewParamResolveService(timer timer.ITimer) *ParamResolveService {
	return &ParamResolveService{
		timer: timer,
	}
}

// Resolve produces the final parameter set for one invocation. Precedence:
// explicit flags, then values inferred from the working directory, then the
// calendar defaults. Inference is best-effort: a non-matching working
// directory contributes nothing. The merged result is validated against the
// event calendar.
func (s *ParamResolveService) Resolve(explicit params.Explicit, tmpl *pathtemplate.CompiledTemplate, workingDir string) (params.Values, error) {
	v, err := explicit.Values()
	if err != nil {
		return params.Values{}, err
	}

	v = v.Merge(tmpl.Extract(workingDir))

	now := s.timer.Now()
	v = v.Merge(params.Defaults(now))

	if err := v.Validate(now); err != nil {
		return params.Values{}, err
	}

	return v, nil
}
