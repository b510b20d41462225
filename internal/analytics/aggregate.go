package analytics

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/j-veylop/cadence-dashboard-tui/internal/events"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
)

// TopSongsLimit is the number of songs shown in the ranked table.
const TopSongsLimit = 10

// counter counts keys and remembers the order they were first seen in.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// sorted returns counts descending; equal counts keep first-seen order.
func (c *counter) sorted() []models.CategoryCount {
	out := make([]models.CategoryCount, len(c.order))
	for i, key := range c.order {
		out[i] = models.CategoryCount{Category: key, Count: c.counts[key]}
	}
	slices.SortStableFunc(out, func(a, b models.CategoryCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return out
}

// perUserDistribution counts field once per distinct user, using the first
// non-empty value that user has in rows. Users with no value for field are
// left out, so Total only falls below the distinct user count when a field
// is blank for all of a user's rows.
func perUserDistribution(rows []models.Event, field func(models.Event) string) models.Distribution {
	c := newCounter()
	counted := make(map[models.ID]bool)
	for i := range rows {
		id := rows[i].UserID
		if counted[id] {
			continue
		}
		v := field(rows[i])
		if v == "" {
			continue
		}
		counted[id] = true
		c.add(v)
	}
	return models.Distribution{Counts: c.sorted(), Total: len(counted)}
}

// Labels returns the distinct time zones and weeks present in rows, each
// joined by ", " in order of first appearance.
func Labels(rows []models.Event) (zones, weeks string) {
	zc, wc := newCounter(), newCounter()
	for i := range rows {
		zc.add(rows[i].TimeZone.String())
		wc.add(rows[i].Week.String())
	}
	return strings.Join(zc.order, ", "), strings.Join(wc.order, ", ")
}

func title(prefix string, rows []models.Event) string {
	if len(rows) == 0 {
		return prefix
	}
	zones, weeks := Labels(rows)
	return fmt.Sprintf("%s in %s during %s", prefix, zones, weeks)
}

// PaidLevel counts account levels, one vote per distinct user.
func PaidLevel(rows []models.Event) models.Distribution {
	d := perUserDistribution(rows, func(ev models.Event) string { return ev.Level })
	d.Title = title("Paid vs Free Accounts", rows)
	return d
}

// MostUsedPlatform counts user agents, one vote per distinct user.
func MostUsedPlatform(rows []models.Event) models.Distribution {
	d := perUserDistribution(rows, func(ev models.Event) string { return ev.UserAgent })
	d.Title = title("Most Used Platforms", rows)
	return d
}

// Gender counts genders, one vote per distinct user.
func Gender(rows []models.Event) models.Distribution {
	d := perUserDistribution(rows, func(ev models.Event) string { return ev.Gender })
	d.Title = title("Gender Counts", rows)
	return d
}

// MostPlayed ranks songs by play count and keeps at most limit entries.
// Every row counts; ties keep the order songs first appear in rows.
func MostPlayed(rows []models.Event, limit int) []models.RankedSong {
	c := newCounter()
	for i := range rows {
		c.add(rows[i].Song)
	}

	counts := c.sorted()
	if limit >= 0 && len(counts) > limit {
		counts = counts[:limit]
	}

	out := make([]models.RankedSong, len(counts))
	for i, cc := range counts {
		out[i] = models.RankedSong{Rank: i + 1, Song: cc.Category, Plays: cc.Count}
	}
	return out
}

// MostPlayedArtist returns the play count of every artist, most played first.
func MostPlayedArtist(rows []models.Event) []models.ArtistFrequency {
	c := newCounter()
	for i := range rows {
		c.add(rows[i].Artist)
	}

	counts := c.sorted()
	out := make([]models.ArtistFrequency, len(counts))
	for i, cc := range counts {
		out[i] = models.ArtistFrequency{Artist: cc.Category, Plays: cc.Count}
	}
	return out
}

// PlaysByHour counts plays per hour of day in UTC. Rows without a
// timestamp are skipped.
func PlaysByHour(rows []models.Event) models.HourlyActivity {
	var h models.HourlyActivity
	for i := range rows {
		if rows[i].Timestamp.IsZero() {
			continue
		}
		h[rows[i].Timestamp.UTC().Hour()]++
	}
	return h
}

// UniqueUsers returns the number of distinct users in rows.
func UniqueUsers(rows []models.Event) int {
	seen := make(map[models.ID]struct{})
	for i := range rows {
		seen[rows[i].UserID] = struct{}{}
	}
	return len(seen)
}

// Compute runs the full pipeline for one selection. It reads tables and
// never modifies them, so repeated calls with the same input are identical.
func Compute(tables *events.Tables, sel models.Selection) models.Dashboard {
	rows := Filter(tables.Raw(), sel)

	return models.Dashboard{
		Selection:   sel,
		Levels:      PaidLevel(rows),
		Platforms:   MostUsedPlatform(rows),
		Genders:     Gender(rows),
		TopSongs:    MostPlayed(rows, TopSongsLimit),
		TopArtists:  MostPlayedArtist(rows),
		Hourly:      PlaysByHour(rows),
		Plays:       len(rows),
		UniqueUsers: UniqueUsers(rows),
	}
}
