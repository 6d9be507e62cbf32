package plan_test

import (
	"fmt"

	"github.com/planora/itinerary/catalog"
	"github.com/planora/itinerary/plan"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSelect
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A short afternoon in town: three candidate stops, four hours free.
//	BestDensity ranks the monument (17 value per hour) and the small museum
//	(6.5 per hour) above the cathedral (2 per hour) and fits both.
//
// Complexity: O(n log n) time, O(n) memory.
func ExampleSelect() {
	c := catalog.Catalog{
		{Name: "Kafedralnyj sobor", Hours: 5, Value: 10},
		{Name: "Pamyatnik osnovatelyu", Hours: 1, Value: 17},
		{Name: "Muzej igrushek", Hours: 2, Value: 13},
	}

	it, err := plan.Select(c, plan.WithPolicy(plan.BestDensity), plan.WithBudget(4))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(it)
	// Output:
	// Total time: 3; Total value: 30; Places visited: 2
	//  - Pamyatnik osnovatelyu (1h, 17)
	//  - Muzej igrushek (2h, 13)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSelectBestDensity
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The full built-in catalog with its 32-hour weekend budget. Value
//	density packs 133 value into 31.5 hours — more total value than
//	MostValue (90) and more than MostPlaces (114), in under the budget.
func ExampleSelectBestDensity() {
	it, err := plan.SelectBestDensity(catalog.Default(), catalog.DefaultBudget)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(it)
	// Output:
	// Total time: 31.5; Total value: 133; Places visited: 10
	//  - Mednyj vsadnik (1h, 17)
	//  - Peterburgskij muzej kukol (1h, 14)
	//  - Muzej oborony i blokady Leningrada (2h, 19)
	//  - Muzej voskovyh figur (2h, 13)
	//  - Muzej mikrominiatyury "Russkij Levsha" (3h, 18)
	//  - Spas na Krovi (2h, 9)
	//  - Ekaterininskij dvorec (1.5h, 5)
	//  - Muzej sovremennogo iskusstva Erarta (7h, 16)
	//  - Isaakievskij sobor (5h, 10)
	//  - Zimnij dvorec Petra I (7h, 12)
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSelectMostPlaces
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Same catalog and budget, optimizing for count instead: eleven quick
//	stops in 29 hours.
func ExampleSelectMostPlaces() {
	it, err := plan.SelectMostPlaces(catalog.Default(), catalog.DefaultBudget)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("places=%d hours=%g value=%d\n", it.Len(), it.TotalHours(), it.TotalValue())
	// Output:
	// places=11 hours=29 value=114
}
