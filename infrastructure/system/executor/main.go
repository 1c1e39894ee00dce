package executor

import (
	"os"
	"os/exec"

	domainExecutor "github.com/adventcli/aoc/domain/system/executor"
)

type Executor struct{}

func NewExecutor() domainExecutor.IExecutor {
	return &Executor{}
}

// Run executes name with args inside dir, wiring the child to the user's
// terminal so build and run output streams through unchanged.
func (e *Executor) Run(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
