// Package plan defines the selection policies and configuration options
// for the greedy itinerary planner.
//
// The planner picks a subset of catalog places whose cumulative visit time
// fits a fixed hour budget. Three policies are provided, each a single
// stable sort followed by the same greedy truncation walk:
//
//	– MostPlaces  — ascending hours; maximizes the number of places.
//	– MostValue   — descending value; maximizes total value.
//	– BestDensity — descending value-per-hour; maximizes value density.
//
// All policies are pure: the input catalog is copied before sorting and
// never mutated. Equal sort keys keep catalog order (stable), so results
// are deterministic for a given catalog and budget.
//
// Errors (sentinel):
//
//	– ErrUnknownPolicy if Options.Policy is not one of the three policies.
//	– ErrBadBudget     if WithBudget is given NaN (panic, option misuse).
//
// Example usage:
//
//	it, err := plan.Select(
//	    catalog.Default(),
//	    plan.WithPolicy(plan.BestDensity),
//	    plan.WithBudget(32),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(it)
package plan

import (
	"errors"
	"math"

	"github.com/planora/itinerary/catalog"
)

// Sentinel errors returned by the planner.
var (
	// ErrUnknownPolicy indicates Options.Policy is not a known Policy value.
	ErrUnknownPolicy = errors.New("plan: unknown selection policy")

	// ErrBadBudget indicates WithBudget was given NaN, which has no
	// meaningful ordering against a running total.
	ErrBadBudget = errors.New("plan: budget must not be NaN")
)

// Policy selects the greedy ordering used before budget truncation.
type Policy int

const (
	// MostPlaces orders places by ascending visit hours, fitting as many
	// places as possible into the budget.
	MostPlaces Policy = iota

	// MostValue orders places by descending value score, fitting the most
	// valuable places first.
	MostValue

	// BestDensity orders places by descending value-per-hour, the best
	// total-value/time tradeoff of the three on typical data.
	BestDensity
)

// String returns the policy name for logs and banners.
func (p Policy) String() string {
	switch p {
	case MostPlaces:
		return "MostPlaces"
	case MostValue:
		return "MostValue"
	case BestDensity:
		return "BestDensity"
	default:
		return "Unknown"
	}
}

// Options configures a Select call.
//
// Policy – which greedy ordering to apply (default BestDensity).
// Budget – available hours; a budget ≤ 0 yields an empty Itinerary.
type Options struct {
	Policy Policy
	Budget float64
}

// Option represents a functional option for configuring Select.
type Option func(*Options)

// WithPolicy sets the selection policy. Validity is checked inside Select
// (ErrUnknownPolicy), not here, so callers may thread user input through.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithBudget sets the hour budget. Zero and negative budgets are legal and
// yield an empty Itinerary. NaN is option misuse and panics, matching the
// panic-on-invalid-Option convention used throughout this module.
func WithBudget(hours float64) Option {
	return func(o *Options) {
		if math.IsNaN(hours) {
			panic(ErrBadBudget.Error())
		}
		o.Budget = hours
	}
}

// DefaultOptions returns the Options used when no Option overrides them.
//
// Defaults:
//   - Policy: BestDensity (empirically the strongest of the three).
//   - Budget: catalog.DefaultBudget (the 32-hour sample scenario).
func DefaultOptions() Options {
	return Options{
		Policy: BestDensity,
		Budget: catalog.DefaultBudget,
	}
}
