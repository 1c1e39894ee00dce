package placeholder

// Kind is the semantic type of a placeholder value.
type Kind int

const (
	// KindYear is a 4-digit puzzle year (2015 up to the current event).
	KindYear Kind = iota
	// KindDay is a puzzle day, 1 through 25.
	KindDay
	// KindEnum is one of the registered language tokens.
	KindEnum
)

// Spec describes one recognized template placeholder. The set is closed:
// there is no runtime registration.
type Spec struct {
	Name     string
	Kind     Kind
	Paddable bool
}

const (
	NameYear     = "year"
	NameDay      = "day"
	NameLanguage = "language"
)

var specs = []Spec{
	{Name: NameYear, Kind: KindYear, Paddable: false},
	{Name: NameDay, Kind: KindDay, Paddable: true},
	{Name: NameLanguage, Kind: KindEnum, Paddable: false},
}

// All returns the registry entries in declaration order.
func All() []Spec {
	return specs
}

// Lookup returns the spec for name. A miss is a programming error on the
// caller's side, not a runtime condition: the registry is exhaustive.
func Lookup(name string) (Spec, bool) {
	for _, s := range specs {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}
