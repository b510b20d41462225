package models

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestSelection_Effective(t *testing.T) {
	tests := []struct {
		name      string
		sel       Selection
		wantZones []TimeZone
		wantWeeks []Week
	}{
		{
			name:      "Empty",
			sel:       Selection{},
			wantZones: AllTimeZones(),
			wantWeeks: []Week{WeekPresent},
		},
		{
			name:      "ZonesOnly",
			sel:       Selection{TimeZones: []TimeZone{TimeZonePST}},
			wantZones: []TimeZone{TimeZonePST},
			wantWeeks: []Week{WeekPresent},
		},
		{
			name:      "WeeksOnly",
			sel:       Selection{Weeks: []Week{Week2, Week1}},
			wantZones: AllTimeZones(),
			wantWeeks: []Week{Week2, Week1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eff := tt.sel.Effective()
			if !reflect.DeepEqual(eff.TimeZones, tt.wantZones) {
				t.Errorf("TimeZones = %v, want %v", eff.TimeZones, tt.wantZones)
			}
			if !reflect.DeepEqual(eff.Weeks, tt.wantWeeks) {
				t.Errorf("Weeks = %v, want %v", eff.Weeks, tt.wantWeeks)
			}
		})
	}
}

func TestSelection_EffectiveDoesNotAlias(t *testing.T) {
	sel := Selection{TimeZones: []TimeZone{TimeZoneEST}}
	eff := sel.Effective()
	eff.TimeZones[0] = TimeZoneHST
	if sel.TimeZones[0] != TimeZoneEST {
		t.Error("Effective() should not share the backing array")
	}
}

func TestSelection_Toggle(t *testing.T) {
	sel := DefaultSelection()
	sel = sel.ToggleTimeZone(TimeZonePST)
	sel = sel.ToggleTimeZone(TimeZoneEST)

	want := []TimeZone{TimeZonePST, TimeZoneEST}
	if !reflect.DeepEqual(sel.TimeZones, want) {
		t.Fatalf("TimeZones = %v, want %v", sel.TimeZones, want)
	}

	sel = sel.ToggleTimeZone(TimeZonePST)
	if sel.HasTimeZone(TimeZonePST) {
		t.Error("PST should be removed after second toggle")
	}

	sel = sel.ToggleWeek(Week3)
	if !sel.HasWeek(Week3) {
		t.Error("Week 3 should be selected")
	}
	sel = sel.ToggleWeek(Week3)
	if len(sel.Weeks) != 0 {
		t.Errorf("Weeks = %v, want empty", sel.Weeks)
	}
}

func TestSelection_SelectAllAndClear(t *testing.T) {
	sel := DefaultSelection().WithAllTimeZones().WithAllWeeks()
	if len(sel.TimeZones) != 5 || len(sel.Weeks) != 6 {
		t.Fatalf("got %d zones / %d weeks, want 5 / 6", len(sel.TimeZones), len(sel.Weeks))
	}
	if sel.Weeks[len(sel.Weeks)-1] != WeekPresent {
		t.Errorf("select-all weeks should end with Present, got %v", sel.Weeks)
	}

	sel = sel.WithoutTimeZones().WithoutWeeks()
	if len(sel.TimeZones) != 0 || len(sel.Weeks) != 0 {
		t.Errorf("clear failed: %+v", sel)
	}
}

func TestSelection_String(t *testing.T) {
	sel := Selection{TimeZones: []TimeZone{TimeZoneEST, TimeZoneCST}}
	if got, want := sel.String(), "EST, CST / Present"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseLists(t *testing.T) {
	zones := ParseTimeZones(" est, PST ,,")
	if !reflect.DeepEqual(zones, []TimeZone{TimeZoneEST, TimeZonePST}) {
		t.Errorf("ParseTimeZones() = %v", zones)
	}

	weeks := ParseWeeks("present, 2, Week 5")
	if !reflect.DeepEqual(weeks, []Week{WeekPresent, Week2, Week5}) {
		t.Errorf("ParseWeeks() = %v", weeks)
	}
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{"String", `"42"`, "42"},
		{"Integer", `42`, "42"},
		{"Float", `42.0`, "42"},
		{"Null", `null`, ""},
		{"Empty", `""`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			if err := json.Unmarshal([]byte(tt.in), &id); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.in, err)
			}
			if id != tt.want {
				t.Errorf("ID = %q, want %q", id, tt.want)
			}
		})
	}

	var id ID
	if err := json.Unmarshal([]byte(`{}`), &id); err == nil {
		t.Error("object should not decode as ID")
	}
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	want := time.Date(2018, 11, 1, 21, 1, 46, 0, time.UTC)

	tests := []struct {
		name string
		in   string
	}{
		{"EpochMillis", `1541106106000`},
		{"EpochMillisString", `"1541106106000"`},
		{"RFC3339", `"2018-11-01T21:01:46Z"`},
		{"SpaceSeparated", `"2018-11-01 21:01:46Z"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tt.in), &ts); err != nil {
				t.Fatalf("Unmarshal(%s) failed: %v", tt.in, err)
			}
			if !ts.Equal(want) {
				t.Errorf("Timestamp = %v, want %v", ts.Time, want)
			}
		})
	}

	var ts Timestamp
	if err := json.Unmarshal([]byte(`"yesterday"`), &ts); err == nil {
		t.Error("invalid timestamp should fail")
	}
}

func TestDistribution(t *testing.T) {
	d := Distribution{
		Counts: []CategoryCount{{"paid", 3}, {"free", 1}},
		Total:  4,
	}
	if d.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if got := d.Share(0); got != 0.75 {
		t.Errorf("Share(0) = %v, want 0.75", got)
	}
	if got := d.Share(5); got != 0 {
		t.Errorf("Share(5) = %v, want 0", got)
	}
	if got := d.Get("free"); got != 1 {
		t.Errorf("Get(free) = %d, want 1", got)
	}
	if got := (Distribution{}).Share(0); got != 0 {
		t.Errorf("empty Share(0) = %v, want 0", got)
	}
}

func TestNewSnapshot(t *testing.T) {
	d := Dashboard{
		Selection:   Selection{TimeZones: []TimeZone{TimeZoneEST}},
		TopSongs:    []RankedSong{{Rank: 1, Song: "Yellow", Plays: 4}},
		TopArtists:  []ArtistFrequency{{Artist: "Coldplay", Plays: 9}},
		Plays:       20,
		UniqueUsers: 3,
	}

	snap := NewSnapshot("", d)
	if snap.Name != "EST / Present" {
		t.Errorf("Name = %q, want default from selection", snap.Name)
	}
	if snap.TopSong != "Yellow" || snap.TopArtist != "Coldplay" {
		t.Errorf("top fields = %q / %q", snap.TopSong, snap.TopArtist)
	}
	if !reflect.DeepEqual(snap.Selection().TimeZones, []TimeZone{TimeZoneEST}) {
		t.Errorf("Selection() = %+v", snap.Selection())
	}

	empty := NewSnapshot("named", Dashboard{})
	if empty.TopSong != "" || empty.Name != "named" {
		t.Errorf("empty snapshot = %+v", empty)
	}
}
