// Package models defines data structures and domain types.
package models

import (
	"slices"
	"strings"
)

// Selection holds the time zones and weeks chosen in the sidebar, in the
// order they were picked.
type Selection struct {
	TimeZones []TimeZone
	Weeks     []Week
}

// DefaultSelection returns the selection used before the user picks anything.
func DefaultSelection() Selection {
	return Selection{}
}

// Effective applies the defaulting policy: no weeks means Present only,
// no time zones means every zone.
func (s Selection) Effective() Selection {
	eff := Selection{
		TimeZones: slices.Clone(s.TimeZones),
		Weeks:     slices.Clone(s.Weeks),
	}
	if len(eff.Weeks) == 0 {
		eff.Weeks = []Week{WeekPresent}
	}
	if len(eff.TimeZones) == 0 {
		eff.TimeZones = AllTimeZones()
	}
	return eff
}

// HasTimeZone reports whether tz was explicitly picked.
func (s Selection) HasTimeZone(tz TimeZone) bool {
	return slices.Contains(s.TimeZones, tz)
}

// HasWeek reports whether w was explicitly picked.
func (s Selection) HasWeek(w Week) bool {
	return slices.Contains(s.Weeks, w)
}

// ToggleTimeZone adds tz to the end of the selection or removes it.
func (s Selection) ToggleTimeZone(tz TimeZone) Selection {
	out := s.clone()
	if i := slices.Index(out.TimeZones, tz); i >= 0 {
		out.TimeZones = slices.Delete(out.TimeZones, i, i+1)
	} else {
		out.TimeZones = append(out.TimeZones, tz)
	}
	return out
}

// ToggleWeek adds w to the end of the selection or removes it.
func (s Selection) ToggleWeek(w Week) Selection {
	out := s.clone()
	if i := slices.Index(out.Weeks, w); i >= 0 {
		out.Weeks = slices.Delete(out.Weeks, i, i+1)
	} else {
		out.Weeks = append(out.Weeks, w)
	}
	return out
}

// WithAllTimeZones selects every time zone.
func (s Selection) WithAllTimeZones() Selection {
	out := s.clone()
	out.TimeZones = AllTimeZones()
	return out
}

// WithAllWeeks selects every week.
func (s Selection) WithAllWeeks() Selection {
	out := s.clone()
	out.Weeks = AllWeeks()
	return out
}

// WithoutTimeZones clears the time zone picks.
func (s Selection) WithoutTimeZones() Selection {
	out := s.clone()
	out.TimeZones = nil
	return out
}

// WithoutWeeks clears the week picks.
func (s Selection) WithoutWeeks() Selection {
	out := s.clone()
	out.Weeks = nil
	return out
}

// String returns a compact description such as "EST, PST / Present".
func (s Selection) String() string {
	eff := s.Effective()
	zones := make([]string, len(eff.TimeZones))
	for i, tz := range eff.TimeZones {
		zones[i] = tz.String()
	}
	weeks := make([]string, len(eff.Weeks))
	for i, w := range eff.Weeks {
		weeks[i] = w.String()
	}
	return strings.Join(zones, ", ") + " / " + strings.Join(weeks, ", ")
}

func (s Selection) clone() Selection {
	return Selection{
		TimeZones: slices.Clone(s.TimeZones),
		Weeks:     slices.Clone(s.Weeks),
	}
}

// ParseTimeZones parses a comma separated list such as "EST,PST".
func ParseTimeZones(list string) []TimeZone {
	var out []TimeZone
	for _, part := range strings.Split(list, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out = append(out, TimeZone(part))
		}
	}
	return out
}

// ParseWeeks parses a comma separated list such as "Present,Week 2".
// Bare numbers are accepted as shorthand for "Week N".
func ParseWeeks(list string) []Week {
	var out []Week
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
			continue
		case strings.EqualFold(part, string(WeekPresent)):
			out = append(out, WeekPresent)
		case len(part) == 1 && part[0] >= '1' && part[0] <= '9':
			out = append(out, Week("Week "+part))
		default:
			out = append(out, Week(part))
		}
	}
	return out
}
