//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package history

import "time"

// Record is one submission attempt.
type Record struct {
	ID      string    `yaml:"id"`
	Time    time.Time `yaml:"time"`
	Year    int       `yaml:"year"`
	Day     int       `yaml:"day"`
	Part    int       `yaml:"part"`
	Answer  string    `yaml:"answer"`
	Verdict string    `yaml:"verdict"`
}

type Repository interface {
	Append(record Record) error
	// List returns all records in submission order.
	List() ([]Record, error)
}
