package guidance

import (
	"fmt"
	"io"

	"github.com/lintang-b-s/navigatorx-tour/pkg/costfunction"
)

// Summary. one line total of the tour weight in the unit of the criterion.
func Summary(criterion costfunction.Criterion, totalWeight float64) string {
	switch criterion {
	case costfunction.Time:
		return fmt.Sprintf("Total travel time: %.2f hours", totalWeight)
	case costfunction.Cost:
		return fmt.Sprintf("Total travel cost: %.2f units", totalWeight)
	case costfunction.Transfers:
		return fmt.Sprintf("Total number of transfers: %.0f", totalWeight)
	default:
		return fmt.Sprintf("Total weight: %.2f", totalWeight)
	}
}

// WriteReport. print the tour, one location per line, then the legs and the summary.
func WriteReport(w io.Writer, criterion costfunction.Criterion, path []string, totalWeight float64,
	it Itinerary) error {
	if _, err := fmt.Fprintln(w, "Optimal path to visit all relatives:"); err != nil {
		return err
	}
	for _, name := range path {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}

	if len(it.Legs) > 0 {
		if _, err := fmt.Fprintln(w, "\nLegs:"); err != nil {
			return err
		}
	}
	for i, leg := range it.Legs {
		route := leg.From
		for _, via := range leg.Via {
			route += " -> " + via
		}
		route += " -> " + leg.To
		if _, err := fmt.Fprintf(w, "%2d. %s (%s, %s) %.2f km, %.2f h, %.2f units\n", i+1, route, leg.Turn,
			joinModes(leg.Modes), leg.Distance, leg.Time, leg.Cost); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s\n", Summary(criterion, totalWeight))
	return err
}

func joinModes(modes []string) string {
	s := ""
	for i, m := range modes {
		if i > 0 && modes[i-1] == m {
			continue
		}
		if s != "" {
			s += "/"
		}
		s += m
	}
	return s
}
