package plan

import (
	"fmt"
	"strings"

	"github.com/planora/itinerary/catalog"
)

// Itinerary is the ordered result of a Select call: the chosen places in
// visit order plus cached totals. It is derived data, owned by the caller
// that requested it; the zero Itinerary is empty and usable.
type Itinerary struct {
	places     []catalog.Place
	totalHours float64
	totalValue int
}

// Places returns an independent copy of the chosen places in visit order.
func (it Itinerary) Places() []catalog.Place {
	if it.places == nil {
		return nil
	}
	out := make([]catalog.Place, len(it.places))
	copy(out, it.places)

	return out
}

// TotalHours returns the cumulative visit time of the itinerary.
// It never exceeds the budget the itinerary was planned with.
func (it Itinerary) TotalHours() float64 { return it.totalHours }

// TotalValue returns the cumulative value score of the itinerary.
func (it Itinerary) TotalValue() int { return it.totalValue }

// Len returns the number of places in the itinerary.
func (it Itinerary) Len() int { return len(it.places) }

// String renders the itinerary as a compact console report: one summary
// line with totals, then one line per place.
//
//	Total time: 31.5; Total value: 133; Places visited: 10
//	 - Mednyj vsadnik (1h, 17)
//	 - ...
func (it Itinerary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total time: %g; Total value: %d; Places visited: %d",
		it.totalHours, it.totalValue, len(it.places))

	var p catalog.Place
	for _, p = range it.places {
		fmt.Fprintf(&b, "\n - %s (%gh, %d)", p.Name, p.Hours, p.Value)
	}

	return b.String()
}
