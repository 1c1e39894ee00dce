package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/adventcli/aoc/domain/repository/config"
)

type ConfigRepository struct{}

func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "aoc"), nil
}

func (r *ConfigRepository) Locate() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}

	for _, name := range []string{"config.yml", "config.yaml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no config file found in %s: %w", dir, os.ErrNotExist)
}

func (r *ConfigRepository) DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yml"), nil
}

func (r *ConfigRepository) Read(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg config.Config
	err = yaml.Unmarshal(content, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.TemplatePath == "" {
		return nil, fmt.Errorf("template_path is not set in %s", path)
	}

	if stripped, ok := strings.CutPrefix(cfg.TemplatePath, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.TemplatePath = filepath.Join(home, stripped)
	}

	return &cfg, nil
}

const defaultConfig = `# Path template for per-day solution projects. Recognized placeholders:
#   {{year}}      four-digit event year
#   {{day}}       day of the event, 1-25
#   {{pad day}}   day zero-padded to two digits
#   {{language}}  solution language: rust, csharp, java or python
template_path: ~/aoc/{{year}}/day{{pad day}}/{{language}}

# Value of the adventofcode.com session cookie, used to download puzzle
# input and submit answers. The AOC_SESSION environment variable takes
# precedence when set.
#cookie: ""
`

func (r *ConfigRepository) WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
