package plan_test

import (
	"fmt"
	"testing"

	"github.com/planora/itinerary/catalog"
	"github.com/planora/itinerary/plan"
)

// benchmarkSelect runs Select with the given policy over a synthetic
// catalog of n places. It resets the timer after setup and fails on
// unexpected errors.
func benchmarkSelect(b *testing.B, n int, p plan.Policy) {
	// Deterministic synthetic catalog: staggered hours and values so every
	// policy produces a non-trivial ordering.
	c := make(catalog.Catalog, n)
	for i := 0; i < n; i++ {
		c[i] = catalog.Place{
			Name:  fmt.Sprintf("place-%d", i),
			Hours: float64(i%7) + 0.5,
			Value: (i * 13) % 29,
		}
	}
	budget := float64(n) // admits roughly a quarter of the catalog

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := plan.Select(c, plan.WithPolicy(p), plan.WithBudget(budget)); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}

// BenchmarkSelect_MostPlacesSmall benchmarks MostPlaces on 100 places.
func BenchmarkSelect_MostPlacesSmall(b *testing.B) {
	benchmarkSelect(b, 100, plan.MostPlaces)
}

// BenchmarkSelect_MostPlacesLarge benchmarks MostPlaces on 10000 places.
func BenchmarkSelect_MostPlacesLarge(b *testing.B) {
	benchmarkSelect(b, 10000, plan.MostPlaces)
}

// BenchmarkSelect_MostValueSmall benchmarks MostValue on 100 places.
func BenchmarkSelect_MostValueSmall(b *testing.B) {
	benchmarkSelect(b, 100, plan.MostValue)
}

// BenchmarkSelect_MostValueLarge benchmarks MostValue on 10000 places.
func BenchmarkSelect_MostValueLarge(b *testing.B) {
	benchmarkSelect(b, 10000, plan.MostValue)
}

// BenchmarkSelect_BestDensitySmall benchmarks BestDensity on 100 places.
func BenchmarkSelect_BestDensitySmall(b *testing.B) {
	benchmarkSelect(b, 100, plan.BestDensity)
}

// BenchmarkSelect_BestDensityLarge benchmarks BestDensity on 10000 places.
// BestDensity pays an extra O(n) pass to precompute densities.
func BenchmarkSelect_BestDensityLarge(b *testing.B) {
	benchmarkSelect(b, 10000, plan.BestDensity)
}
