package history

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/adventcli/aoc/domain/repository/history"
)

// HistoryRepository keeps one YAML file per submission attempt under
// ~/.config/aoc/history. File names are the record's ksuid, so
// lexicographic order is submission order.
type HistoryRepository struct{}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

func historyDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "aoc", "history"), nil
}

func (r *HistoryRepository) Append(record history.Record) error {
	dir, err := historyDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	content, err := yaml.Marshal(record)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, record.ID+".yaml"), content, 0644)
}

func (r *HistoryRepository) List() ([]history.Record, error) {
	dir, err := historyDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var records []history.Record
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		var record history.Record
		if err := yaml.Unmarshal(content, &record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
