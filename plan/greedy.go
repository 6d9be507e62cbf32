// Package plan - greedy selection over a place catalog.
//
// This file provides the canonical entry point Select plus one thin
// wrapper per policy. Each policy is a single stable sort over a copy of
// the catalog followed by the shared budget-truncation walk.
//
// Design principles:
//   - Deterministic: stable sorts everywhere, equal keys keep catalog order.
//   - Strict sentinels: only errors from types.go and catalog validation.
//   - Pure: the input catalog is cloned before sorting, never mutated.
//
// Greedy truncation is not a knapsack solve: places are taken in priority
// order and the walk stops at the first place that would overrun the
// budget, with no look-ahead and no repacking.
package plan

import (
	"math"
	"sort"

	"github.com/planora/itinerary/catalog"
)

// Select plans an itinerary over c according to the given options.
//
// Steps:
//  1. Build Options from DefaultOptions + functional overrides.
//  2. Validate the policy (ErrUnknownPolicy) and the catalog
//     (catalog sentinel errors, wrapped with the offending place).
//  3. Order a copy of the catalog per the policy, stable.
//  4. Accumulate places while the running total stays within budget;
//     stop at the first place that would exceed it.
//
// Degenerate inputs are not errors: an empty catalog or a budget ≤ 0
// yields an empty Itinerary and a nil error.
//
// Complexity: O(n log n) time, O(n) space.
func Select(c catalog.Catalog, opts ...Option) (Itinerary, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Reject unknown policies before touching the catalog.
	switch cfg.Policy {
	case MostPlaces, MostValue, BestDensity:
		// ok
	default:
		return Itinerary{}, ErrUnknownPolicy
	}

	// 3) A malformed catalog (negative hours/value, blank or duplicate
	//    names) is rejected as a whole.
	if err := c.Validate(); err != nil {
		return Itinerary{}, err
	}

	// 4) Order then truncate.
	return truncate(orderBy(c, cfg.Policy), cfg.Budget), nil
}

// SelectMostPlaces plans with the MostPlaces policy and the given budget.
func SelectMostPlaces(c catalog.Catalog, budget float64) (Itinerary, error) {
	return Select(c, WithPolicy(MostPlaces), WithBudget(budget))
}

// SelectMostValue plans with the MostValue policy and the given budget.
func SelectMostValue(c catalog.Catalog, budget float64) (Itinerary, error) {
	return Select(c, WithPolicy(MostValue), WithBudget(budget))
}

// SelectBestDensity plans with the BestDensity policy and the given budget.
func SelectBestDensity(c catalog.Catalog, budget float64) (Itinerary, error) {
	return Select(c, WithPolicy(BestDensity), WithBudget(budget))
}

// orderBy returns a copy of c ordered for the given policy. Sorts are
// stable: places with equal keys retain their catalog order.
//
// Complexity: O(n log n) time, O(n) space.
func orderBy(c catalog.Catalog, p Policy) []catalog.Place {
	sorted := c.Clone()
	switch p {
	case MostPlaces:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Hours < sorted[j].Hours
		})
	case MostValue:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Value > sorted[j].Value
		})
	case BestDensity:
		// Precompute densities once so the comparator stays O(1) and the
		// zero-hours guard lives in a single place.
		dens := make([]float64, len(sorted))
		var i int
		for i = range sorted {
			dens[i] = density(sorted[i])
		}
		idx := make([]int, len(sorted))
		for i = range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return dens[idx[a]] > dens[idx[b]]
		})
		ranked := make([]catalog.Place, len(sorted))
		for i = range idx {
			ranked[i] = sorted[idx[i]]
		}
		sorted = ranked
	}

	return sorted
}

// density returns the value-per-hour score of p. A zero-hours place costs
// nothing to include, so it is treated as infinitely dense rather than
// tripping a division by zero.
func density(p catalog.Place) float64 {
	if p.Hours == 0 {
		return math.Inf(1)
	}

	return float64(p.Value) / p.Hours
}

// truncate walks ordered places, accumulating visit hours, and keeps each
// place only while the running total stays ≤ budget. The walk stops at the
// first excluded place; later, cheaper places are not reconsidered.
//
// Complexity: O(n) time, O(n) space for the kept places.
func truncate(ordered []catalog.Place, budget float64) Itinerary {
	var it Itinerary
	if budget <= 0 {
		return it
	}

	var (
		acc float64
		p   catalog.Place
	)
	for _, p = range ordered {
		acc += p.Hours
		if acc > budget {
			break
		}
		it.places = append(it.places, p)
		it.totalHours = acc
		it.totalValue += p.Value
	}

	return it
}
