package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Time constants for the built-in sample scenario: a 48-hour city visit
// minus 16 hours of sleep leaves DefaultBudget hours for sightseeing.
const (
	// VisitHours is the total length of the sample stay.
	VisitHours = 48.0
	// SleepHours is the time reserved for sleep during the sample stay.
	SleepHours = 16.0
	// DefaultBudget is the sightseeing time available in the sample scenario.
	DefaultBudget = VisitHours - SleepHours
)

// defaultPlaces is the built-in Saint Petersburg catalog: 20 points of
// interest with visit times in hours and value scores.
var defaultPlaces = Catalog{
	{Name: "Isaakievskij sobor", Hours: 5.0, Value: 10},
	{Name: "Ermitazh", Hours: 8.0, Value: 11},
	{Name: "Kunstkamera", Hours: 3.5, Value: 4},
	{Name: "Petropavlovskaya krepost", Hours: 10.0, Value: 7},
	{Name: "Leningradskij zoopark", Hours: 9.0, Value: 15},
	{Name: "Mednyj vsadnik", Hours: 1.0, Value: 17},
	{Name: "Kazanskij sobor", Hours: 4.0, Value: 3},
	{Name: "Spas na Krovi", Hours: 2.0, Value: 9},
	{Name: "Zimnij dvorec Petra I", Hours: 7.0, Value: 12},
	{Name: "Zoologicheskij muzej", Hours: 5.5, Value: 6},
	{Name: "Muzej oborony i blokady Leningrada", Hours: 2.0, Value: 19},
	{Name: "Russkij muzej", Hours: 5.0, Value: 8},
	{Name: "Navestit druzej", Hours: 12.0, Value: 20},
	{Name: "Muzej voskovyh figur", Hours: 2.0, Value: 13},
	{Name: "Literaturno-memorialnyj muzej F.M. Dostoevskogo", Hours: 4.0, Value: 2},
	{Name: "Ekaterininskij dvorec", Hours: 1.5, Value: 5},
	{Name: "Peterburgskij muzej kukol", Hours: 1.0, Value: 14},
	{Name: "Muzej mikrominiatyury \"Russkij Levsha\"", Hours: 3.0, Value: 18},
	{Name: "Vserossijskij muzej A.S.Pushkina i filialy", Hours: 6.0, Value: 1},
	{Name: "Muzej sovremennogo iskusstva Erarta", Hours: 7.0, Value: 16},
}

// Default returns a fresh copy of the built-in sample catalog.
// Callers may reorder or slice the result freely; the built-in data is
// never aliased.
func Default() Catalog {
	return defaultPlaces.Clone()
}

// Load reads a Catalog from a YAML file at path.
//
// The file is a plain list of places:
//
//	- name: Mednyj vsadnik
//	  hours: 1.0
//	  value: 17
//
// The loaded catalog is validated before being returned; a catalog that
// fails Validate is rejected as a whole.
//
// Errors are wrapped with the offending path for context. A missing file
// is reported distinctly from an unreadable or malformed one.
func Load(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file %q not found", path)
		}
		return nil, fmt.Errorf("read catalog file %q: %w", path, err)
	}

	var c Catalog
	if err = yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalog file %q: %w", path, err)
	}
	if err = c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog file %q: %w", path, err)
	}

	return c, nil
}

// Validate checks every Place in the catalog:
//   - names must be non-empty and unique (ErrEmptyName, ErrDuplicateName),
//   - hours must be non-negative (ErrNegativeHours),
//   - values must be non-negative (ErrNegativeValue).
//
// Zero hours is allowed; the planner treats such a place as infinitely
// value-dense rather than dividing by zero.
//
// Complexity: O(n) time, O(n) extra space for the uniqueness check.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c))

	var (
		i  int
		p  Place
		ok bool
	)
	for i = 0; i < len(c); i++ {
		p = c[i]
		if p.Name == "" {
			return fmt.Errorf("%w: place %d", ErrEmptyName, i)
		}
		if p.Hours < 0 {
			return fmt.Errorf("%w: place %q", ErrNegativeHours, p.Name)
		}
		if p.Value < 0 {
			return fmt.Errorf("%w: place %q", ErrNegativeValue, p.Name)
		}
		if _, ok = seen[p.Name]; ok {
			return fmt.Errorf("%w: place %q", ErrDuplicateName, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	return nil
}

// Clone returns an independent shallow copy of the catalog.
//
// Complexity: O(n) time and space.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	copy(out, c)

	return out
}
