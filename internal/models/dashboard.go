// Package models defines data structures and domain types.
package models

import "time"

// CategoryCount is one bar of a distribution.
type CategoryCount struct {
	Category string
	Count    int
}

// Distribution is a titled frequency count, ordered by count descending.
type Distribution struct {
	Title  string
	Counts []CategoryCount
	Total  int
}

// IsEmpty returns true if the distribution has no categories.
func (d Distribution) IsEmpty() bool {
	return len(d.Counts) == 0
}

// Share returns the fraction of the total held by the i-th category.
func (d Distribution) Share(i int) float64 {
	if d.Total == 0 || i < 0 || i >= len(d.Counts) {
		return 0
	}
	return float64(d.Counts[i].Count) / float64(d.Total)
}

// Get returns the count for a category, or 0.
func (d Distribution) Get(category string) int {
	for _, c := range d.Counts {
		if c.Category == category {
			return c.Count
		}
	}
	return 0
}

// RankedSong is a row of the top songs table.
type RankedSong struct {
	Song  string
	Rank  int
	Plays int
}

// ArtistFrequency is the number of plays for one artist.
type ArtistFrequency struct {
	Artist string
	Plays  int
}

// HourlyActivity holds play counts per hour of day (UTC).
type HourlyActivity [24]int

// Values returns the counts as floats for charting.
func (h HourlyActivity) Values() []float64 {
	out := make([]float64, len(h))
	for i, v := range h {
		out[i] = float64(v)
	}
	return out
}

// Total returns the sum of all hours.
func (h HourlyActivity) Total() int {
	total := 0
	for _, v := range h {
		total += v
	}
	return total
}

// Dashboard is every aggregate shown for one selection.
type Dashboard struct {
	Selection   Selection
	Levels      Distribution
	Platforms   Distribution
	Genders     Distribution
	TopSongs    []RankedSong
	TopArtists  []ArtistFrequency
	Hourly      HourlyActivity
	Plays       int
	UniqueUsers int
}

// IsEmpty returns true if no rows matched the selection.
func (d Dashboard) IsEmpty() bool {
	return d.Plays == 0
}

// Snapshot is a saved selection together with its headline numbers.
type Snapshot struct {
	CreatedAt   time.Time
	Name        string
	TopSong     string
	TopArtist   string
	TimeZones   []TimeZone
	Weeks       []Week
	ID          int64
	Plays       int
	UniqueUsers int
}

// Selection returns the saved selection.
func (s Snapshot) Selection() Selection {
	return Selection{TimeZones: s.TimeZones, Weeks: s.Weeks}
}

// NewSnapshot captures the headline numbers of a dashboard.
func NewSnapshot(name string, d Dashboard) Snapshot {
	snap := Snapshot{
		Name:        name,
		TimeZones:   d.Selection.TimeZones,
		Weeks:       d.Selection.Weeks,
		Plays:       d.Plays,
		UniqueUsers: d.UniqueUsers,
		CreatedAt:   time.Now(),
	}
	if len(d.TopSongs) > 0 {
		snap.TopSong = d.TopSongs[0].Song
	}
	if len(d.TopArtists) > 0 {
		snap.TopArtist = d.TopArtists[0].Artist
	}
	if snap.Name == "" {
		snap.Name = d.Selection.String()
	}
	return snap
}
