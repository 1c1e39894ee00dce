package pathtemplate

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/adventcli/aoc/domain/model/language"
	"github.com/adventcli/aoc/domain/model/params"
	"github.com/adventcli/aoc/domain/model/placeholder"
)

// ConfigError reports a malformed template path. It aborts the invocation;
// retrying cannot help.
type ConfigError struct {
	Template string
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid template path %q: %s", e.Template, e.Reason)
}

// MissingParameterError reports a placeholder that is required by the
// current mode but has no value after explicit, inferred and default
// resolution.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("no value for '%s' in template path", e.Name)
}

// Occurrence is one placeholder marker located in the raw template.
type Occurrence struct {
	Name   string
	Padded bool
	Start  int
	End    int
}

// CompiledTemplate is the result of compiling a raw template path. It is
// immutable after Compile and safe for concurrent reads.
type CompiledTemplate struct {
	raw         string
	pattern     *regexp.Regexp
	occurrences []Occurrence
}

var padMarker = regexp.MustCompile(`\{\{\s*pad\s+([A-Za-z]+)\s*\}\}`)

// markerRegexp matches one placeholder's marker, in both its plain and
// (when paddable) padded form, with insignificant whitespace inside the
// braces. Group 1 captures the pad keyword when present.
func markerRegexp(spec placeholder.Spec) *regexp.Regexp {
	pad := ""
	if spec.Paddable {
		pad = `(pad\s+)?`
	}
	return regexp.MustCompile(`\{\{\s*` + pad + spec.Name + `\s*\}\}`)
}

// Compile locates every placeholder marker in raw and derives the
// extraction pattern: literal segments are quoted, each marker is replaced
// by a typed named capture, and everything after the first occurrence is
// nested in optional groups so a contiguous prefix of the occurrences is
// enough for a match.
func Compile(raw string) (*CompiledTemplate, error) {
	for _, m := range padMarker.FindAllStringSubmatch(raw, -1) {
		spec, ok := placeholder.Lookup(m[1])
		if ok && !spec.Paddable {
			return nil, &ConfigError{raw, fmt.Sprintf("'%s' does not support the pad form (%s)", spec.Name, m[0])}
		}
	}

	var occs []Occurrence
	for _, spec := range placeholder.All() {
		re := markerRegexp(spec)
		for _, m := range re.FindAllStringSubmatchIndex(raw, -1) {
			occs = append(occs, Occurrence{
				Name:   spec.Name,
				Padded: spec.Paddable && m[2] >= 0,
				Start:  m[0],
				End:    m[1],
			})
		}
	}
	sort.Slice(occs, func(i, j int) bool { return occs[i].Start < occs[j].Start })

	for i := 1; i < len(occs); i++ {
		if occs[i].Start < occs[i-1].End {
			return nil, &ConfigError{raw, fmt.Sprintf("markers for '%s' and '%s' overlap", occs[i-1].Name, occs[i].Name)}
		}
	}

	pattern := buildPattern(raw, occs)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &ConfigError{raw, err.Error()}
	}

	return &CompiledTemplate{raw: raw, pattern: re, occurrences: occs}, nil
}

func buildPattern(raw string, occs []Occurrence) string {
	var b strings.Builder
	prev := 0
	opened := 0
	for i, occ := range occs {
		b.WriteString(regexp.QuoteMeta(raw[prev:occ.Start]))
		b.WriteString(capturePattern(occ))
		// Everything after this occurrence becomes optional, so candidates
		// holding only a prefix of the parameters still match.
		if i < len(occs)-1 {
			b.WriteString("(?:")
			opened++
		}
		prev = occ.End
	}
	b.WriteString(regexp.QuoteMeta(raw[prev:]))
	for ; opened > 0; opened-- {
		b.WriteString(")?")
	}
	return b.String()
}

func capturePattern(occ Occurrence) string {
	switch occ.Name {
	case placeholder.NameYear:
		return `(?P<year>\d{4})\b`
	case placeholder.NameDay:
		// Alternatives longest-first: alternation is tried left to right, so
		// a one-digit branch listed first would capture just the first digit
		// of a two-digit day whenever nothing is required after the group.
		// The \b keeps a day from matching inside a longer number (26, 105).
		if occ.Padded {
			return `(?P<padday>2[0-5]|1[0-9]|0[1-9])\b`
		}
		return `(?P<day>2[0-5]|1[0-9]|0[1-9]|[1-9])\b`
	case placeholder.NameLanguage:
		tokens := make([]string, 0, 4)
		for _, l := range language.All() {
			tokens = append(tokens, regexp.QuoteMeta(l.String()))
		}
		return `(?P<language>(?i:` + strings.Join(tokens, "|") + `))`
	}
	// The registry is closed; Compile only records registered names.
	panic(fmt.Sprintf("unregistered placeholder %q", occ.Name))
}

func (t *CompiledTemplate) Raw() string {
	return t.raw
}

func (t *CompiledTemplate) Pattern() string {
	return t.pattern.String()
}

func (t *CompiledTemplate) Occurrences() []Occurrence {
	occs := make([]Occurrence, len(t.occurrences))
	copy(occs, t.occurrences)
	return occs
}

// Extract matches candidate (normally the working directory) against the
// compiled pattern and returns whichever parameters were captured. A miss
// is not an error: the result is simply empty and resolution falls through
// to the next source. When a placeholder occurs more than once, the last
// successful capture wins.
func (t *CompiledTemplate) Extract(candidate string) params.Values {
	m := t.pattern.FindStringSubmatch(candidate)
	if m == nil {
		return params.Values{}
	}

	var v params.Values
	for i, name := range t.pattern.SubexpNames() {
		if i == 0 || name == "" || m[i] == "" {
			continue
		}
		switch name {
		case "year":
			if n, err := strconv.Atoi(m[i]); err == nil {
				v.Year = params.Int(n)
			}
		case "day", "padday":
			if n, err := strconv.Atoi(m[i]); err == nil {
				v.Day = params.Int(n)
			}
		case "language":
			if l, ok := language.Parse(m[i]); ok {
				v.Language = params.Lang(l)
			}
		}
	}
	return v
}

// Render substitutes the resolved values into the raw template. Marker
// positions are re-derived against the working copy on every round since
// substitutions shift offsets. Placeholders listed in required must have a
// value; absent non-required placeholders render as the empty string. Each
// occurrence's own form decides its padding.
func (t *CompiledTemplate) Render(v params.Values, required ...string) (string, error) {
	path := t.raw
	for _, spec := range placeholder.All() {
		re := markerRegexp(spec)
		if !re.MatchString(path) {
			continue
		}

		text, ok := valueText(v, spec.Name)
		if !ok {
			if contains(required, spec.Name) {
				return "", &MissingParameterError{spec.Name}
			}
			text = ""
		}

		path = re.ReplaceAllStringFunc(path, func(marker string) string {
			if text != "" && padMarker.MatchString(marker) {
				return padLeft(text, 2)
			}
			return text
		})
	}
	return path, nil
}

func valueText(v params.Values, name string) (string, bool) {
	switch name {
	case placeholder.NameYear:
		if v.Year == nil {
			return "", false
		}
		return strconv.Itoa(*v.Year), true
	case placeholder.NameDay:
		if v.Day == nil {
			return "", false
		}
		return strconv.Itoa(*v.Day), true
	case placeholder.NameLanguage:
		if v.Language == nil {
			return "", false
		}
		return v.Language.String(), true
	}
	return "", false
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
