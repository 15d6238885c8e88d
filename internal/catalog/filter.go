package catalog

import "strings"

// Filter is the set of search constraints applied to the catalog. The zero
// value matches nothing useful; start from DefaultFilter.
type Filter struct {
	// Date is an optional target day, "2006-01-02". The catalog carries no
	// per-date availability data, so a selected date never narrows results.
	Date string
	// TimeSlots holds selected tokens: period tokens such as "08:00-12:00"
	// or specific times such as "15:30".
	TimeSlots   []string
	MinRating   float64
	MaxDistance float64
	// PriceRange is the inclusive [low, high] requested price band.
	PriceRange [2]float64
}

// DefaultFilter returns the permissive baseline filter.
func DefaultFilter() Filter {
	return Filter{
		MaxDistance: 50,
		PriceRange:  [2]float64{0, 200},
	}
}

// Match reports whether a catalog entry satisfies the filter and free-text
// query. All constraints must hold.
func Match(b Barber, f Filter, query string) bool {
	return matchesQuery(b, query) &&
		matchesTime(b, f.TimeSlots) &&
		b.Rating >= f.MinRating &&
		b.DistanceKm <= f.MaxDistance &&
		matchesPrice(b, f.PriceRange)
}

// Search returns the entries matching the filter and query, catalog order
// preserved.
func Search(entries []Barber, f Filter, query string) []Barber {
	matched := make([]Barber, 0, len(entries))
	for _, b := range entries {
		if Match(b, f, query) {
			matched = append(matched, b)
		}
	}
	return matched
}

func matchesQuery(b Barber, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(b.Name), q) || strings.Contains(strings.ToLower(b.Location), q) {
		return true
	}
	for _, s := range b.Specialties {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// matchesTime applies the slot-token rules: a period token (one containing a
// range marker) matches only by exact equality with an entry token, while a
// specific time matches by equality or as a substring of an entry token.
// The asymmetry is deliberate; there is no partial overlap computation for
// periods.
func matchesTime(b Barber, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, sel := range selected {
		for _, avail := range b.TimeSlots {
			if strings.Contains(sel, "-") {
				if avail == sel {
					return true
				}
			} else if avail == sel || strings.Contains(avail, sel) {
				return true
			}
		}
	}
	return false
}

// matchesPrice checks that the entry's price span overlaps the requested
// range: cheapest service at or below the upper bound and most expensive at
// or above the lower bound. Entries without prices never match.
func matchesPrice(b Barber, priceRange [2]float64) bool {
	if len(b.Prices) == 0 {
		return false
	}
	first := true
	var min, max float64
	for _, p := range b.Prices {
		if first {
			min, max = p, p
			first = false
			continue
		}
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min <= priceRange[1] && max >= priceRange[0]
}
