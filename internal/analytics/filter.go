// Package analytics filters listening events by selection and computes the
// dashboard aggregates.
package analytics

import (
	"slices"

	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
)

// Filter returns the rows matching the effective selection.
//
// Rows are gathered zone by zone in selection order, each zone keeping the
// raw table's row order, and then narrowed to the selected weeks. The result
// is therefore zone-major and not sorted by timestamp.
func Filter(raw []models.Event, sel models.Selection) []models.Event {
	eff := sel.Effective()

	out := make([]models.Event, 0)
	seen := make(map[models.TimeZone]bool, len(eff.TimeZones))
	for _, tz := range eff.TimeZones {
		if seen[tz] {
			continue
		}
		seen[tz] = true

		for i := range raw {
			if raw[i].TimeZone == tz && slices.Contains(eff.Weeks, raw[i].Week) {
				out = append(out, raw[i])
			}
		}
	}
	return out
}
