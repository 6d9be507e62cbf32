package catalog_test

import (
	"fmt"

	"github.com/planora/itinerary/catalog"
)

// ExampleDefault shows the shape of the built-in sample catalog.
func ExampleDefault() {
	c := catalog.Default()
	fmt.Printf("places=%d budget=%gh\n", len(c), catalog.DefaultBudget)
	fmt.Printf("first: %s (%gh, %d)\n", c[0].Name, c[0].Hours, c[0].Value)
	// Output:
	// places=20 budget=32h
	// first: Isaakievskij sobor (5h, 10)
}

// ExampleCatalog_Validate demonstrates a validation failure surfacing the
// offending place.
func ExampleCatalog_Validate() {
	c := catalog.Catalog{
		{Name: "Mednyj vsadnik", Hours: 1, Value: 17},
		{Name: "Mednyj vsadnik", Hours: 2, Value: 9},
	}
	fmt.Println(c.Validate())
	// Output:
	// catalog: place names must be unique: place "Mednyj vsadnik"
}
