package params

import (
	"fmt"
	"time"

	"github.com/adventcli/aoc/domain/model/language"
)

// Values is a partially resolved set of puzzle parameters. A nil field means
// the parameter is still unknown at that stage of resolution.
type Values struct {
	Year     *int
	Day      *int
	Language *language.Language
}

func Int(i int) *int {
	return &i
}

func Lang(l language.Language) *language.Language {
	return &l
}

// Merge fills absent fields of v from fallback. Present fields always win:
// the caller chains explicit values, inferred values and defaults in
// precedence order.
func (v Values) Merge(fallback Values) Values {
	if v.Year == nil {
		v.Year = fallback.Year
	}
	if v.Day == nil {
		v.Day = fallback.Day
	}
	if v.Language == nil {
		v.Language = fallback.Language
	}
	return v
}

// Defaults returns the date-based defaults: the running event's year (the
// previous year until December) and, during December, the current day.
// Language has no default.
func Defaults(now time.Time) Values {
	year := currentEventYear(now)
	day := 1
	if now.Month() == time.December {
		day = now.Day()
	}
	return Values{Year: Int(year), Day: Int(day)}
}

// Validate checks the resolved year and day against the event calendar.
func (v Values) Validate(now time.Time) error {
	if v.Year != nil {
		max := currentEventYear(now)
		if *v.Year < 2015 || *v.Year > max {
			return fmt.Errorf("year %d is out of range (2015-%d)", *v.Year, max)
		}
	}
	if v.Day != nil {
		if *v.Day < 1 || *v.Day > 25 {
			return fmt.Errorf("day %d is out of range (1-25)", *v.Day)
		}
	}
	return nil
}

func currentEventYear(now time.Time) int {
	if now.Month() == time.December {
		return now.Year()
	}
	return now.Year() - 1
}

// Explicit holds raw flag input before typing. Zero values mean the flag was
// not given.
type Explicit struct {
	Year     int
	Day      int
	Language string
}

// Values types the explicit input. An unknown language name is an error;
// everything else is typed as-is and validated later.
func (e Explicit) Values() (Values, error) {
	var v Values
	if e.Year != 0 {
		v.Year = Int(e.Year)
	}
	if e.Day != 0 {
		v.Day = Int(e.Day)
	}
	if e.Language != "" {
		l, ok := language.Parse(e.Language)
		if !ok {
			return Values{}, fmt.Errorf("unknown language %q", e.Language)
		}
		v.Language = Lang(l)
	}
	return v, nil
}
