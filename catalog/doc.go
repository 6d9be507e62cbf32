// Package catalog holds the data model for the itinerary planner:
// points of interest with a visit time and a value score.
//
// 🚀 What is a Catalog?
//
//	An ordered, immutable-by-convention list of Places, fixed at startup.
//	The planner in package plan never mutates a Catalog — policies copy
//	before sorting — so one Catalog can safely back any number of plans.
//
// ✨ Key features:
//   - Default() — the built-in 20-place Saint Petersburg sample set
//   - Load(path) — read a catalog from a plain YAML list
//   - Validate() — sentinel-error checks (names, hours, values)
//   - Clone() — defensive copies for callers that want to reorder
//
// ⚙️ Usage:
//
//	c, err := catalog.Load("places.yml")
//	if err != nil {
//	  c = catalog.Default()
//	}
//	it, err := plan.Select(c, plan.WithBudget(catalog.DefaultBudget))
//
// The YAML format is a list of {name, hours, value} entries; see Load.
package catalog
