// Package itinerary is a small toolkit for picking which points of
// interest to visit when the clock, not the map, is the constraint.
//
// 🚀 What is itinerary?
//
//	A deterministic planner that fits a subset of a place catalog into a
//	fixed hour budget:
//		• catalog/ — Place & Catalog model, YAML loading, validation
//		• plan/    — three greedy policies over one shared truncation walk
//		• cmd/itinerary — demo binary printing all three plans
//
// ✨ Why choose itinerary?
//
//   - Predictable — stable sorts, catalog-order tie-breaks, pure functions
//   - Honest — greedy truncation, not a knapsack solve; fast and simple
//   - Small API — one Select entry point plus per-policy helpers
//
// Quick start:
//
//	it, err := plan.Select(
//	    catalog.Default(),
//	    plan.WithPolicy(plan.BestDensity),
//	    plan.WithBudget(catalog.DefaultBudget),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(it)
//
// See examples/ for a runnable weekend-trip walkthrough.
package itinerary
