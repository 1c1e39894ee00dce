//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package executor

// IExecutor runs a command in a working directory with inherited stdio.
type IExecutor interface {
	Run(dir string, name string, args ...string) error
}
