package flags

import (
	"github.com/spf13/pflag"

	"github.com/adventcli/aoc/domain/model/params"
)

// Register binds the shared parameter flags onto a flag set. The root
// command registers them as persistent flags so every mode accepts them.
func Register(fs *pflag.FlagSet, explicit *params.Explicit) {
	fs.IntVarP(&explicit.Year, "year", "y", 0, "puzzle year, 2015 onwards (default: inferred, then the current event)")
	fs.IntVarP(&explicit.Day, "day", "d", 0, "puzzle day, 1-25 (default: inferred, then the calendar)")
	fs.StringVarP(&explicit.Language, "language", "l", "", "solution language: rust, csharp, java or python")
}
