// Package catalog defines the Place and Catalog types consumed by the
// planner, together with their validation sentinels.
package catalog

import "errors"

// Sentinel errors returned by Catalog validation and loading.
var (
	// ErrEmptyName indicates a place with a blank name.
	ErrEmptyName = errors.New("catalog: place name must be non-empty")
	// ErrNegativeHours indicates a place whose visit time is negative.
	ErrNegativeHours = errors.New("catalog: place hours must be non-negative")
	// ErrNegativeValue indicates a place whose value score is negative.
	ErrNegativeValue = errors.New("catalog: place value must be non-negative")
	// ErrDuplicateName indicates two places sharing the same name.
	ErrDuplicateName = errors.New("catalog: place names must be unique")
)

// Place is a single point of interest: a name, the time a visit takes
// (in hours), and a subjective value score. Places are immutable once
// defined; the planner never mutates a Catalog it is given.
type Place struct {
	Name  string  `yaml:"name"`
	Hours float64 `yaml:"hours"`
	Value int     `yaml:"value"`
}

// Catalog is an ordered, fixed sequence of Places. Order matters: the
// planner's stable sorts fall back to catalog order on equal keys, so two
// loads of the same file always plan the same itinerary.
type Catalog []Place
