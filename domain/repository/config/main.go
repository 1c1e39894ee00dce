//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package config

// Config is the user configuration stored under ~/.config/aoc. The file
// keys match the original tool so existing config files keep working.
type Config struct {
	// TemplatePath locates a day's project directory. It may contain
	// {{year}}, {{day}}, {{pad day}} and {{language}} markers and may start
	// with "~/".
	TemplatePath string `yaml:"template_path"`
	// Cookie is the adventofcode.com session cookie value. The AOC_SESSION
	// environment variable takes precedence when set.
	Cookie string `yaml:"cookie,omitempty"`
}

type Repository interface {
	// Locate returns the path of an existing config file, or an error
	// wrapping os.ErrNotExist when none is present.
	Locate() (string, error)
	// DefaultPath is where a fresh config file is created.
	DefaultPath() (string, error)
	Read(path string) (*Config, error)
	// WriteDefault creates a commented starter config file at path.
	WriteDefault(path string) error
}
