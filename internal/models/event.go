// Package models defines data structures and domain types.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeZone is the time zone bucket an event was assigned to.
type TimeZone string

// Known time zone buckets.
const (
	TimeZoneEST TimeZone = "EST"
	TimeZoneCST TimeZone = "CST"
	TimeZoneMST TimeZone = "MST"
	TimeZonePST TimeZone = "PST"
	TimeZoneHST TimeZone = "HST"
)

// AllTimeZones returns every known time zone, east to west.
func AllTimeZones() []TimeZone {
	return []TimeZone{TimeZoneEST, TimeZoneCST, TimeZoneMST, TimeZonePST, TimeZoneHST}
}

// String returns the bucket label.
func (tz TimeZone) String() string {
	return string(tz)
}

// Week is the week bucket an event was assigned to.
type Week string

// Known week buckets.
const (
	WeekPresent Week = "Present"
	Week1       Week = "Week 1"
	Week2       Week = "Week 2"
	Week3       Week = "Week 3"
	Week4       Week = "Week 4"
	Week5       Week = "Week 5"
)

// AllWeeks returns every week bucket in "select all" order.
func AllWeeks() []Week {
	return []Week{Week1, Week2, Week3, Week4, Week5, WeekPresent}
}

// WeekOptions returns the week buckets in picker order.
func WeekOptions() []Week {
	return []Week{WeekPresent, Week1, Week2, Week3, Week4, Week5}
}

// String returns the bucket label.
func (w Week) String() string {
	return string(w)
}

// ID is an identifier that may be encoded as a JSON number or string.
type ID string

// UnmarshalJSON accepts numbers, strings and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid identifier %s", data)
	}
	// pandas writes integer columns with NaN as floats ("42.0")
	if f, err := n.Float64(); err == nil && f == float64(int64(f)) {
		*id = ID(strconv.FormatInt(int64(f), 10))
		return nil
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

// Timestamp is a point in time encoded as epoch milliseconds or RFC 3339.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON accepts epoch milliseconds, RFC 3339 strings and null.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			t.Time = time.UnixMilli(ms).UTC()
			return nil
		}
		parsed, err := time.Parse(time.RFC3339Nano, strings.Replace(s, " ", "T", 1))
		if err != nil {
			return fmt.Errorf("invalid timestamp %q", s)
		}
		t.Time = parsed.UTC()
		return nil
	}

	var ms float64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("invalid timestamp %s", data)
	}
	t.Time = time.UnixMilli(int64(ms)).UTC()
	return nil
}

// Event is a single playback record from the listening log.
type Event struct {
	Timestamp Timestamp `json:"ts"`
	Artist    string    `json:"artist"`
	Song      string    `json:"song"`
	Level     string    `json:"level"`
	State     string    `json:"state"`
	UserAgent string    `json:"userAgent"`
	FirstName string    `json:"firstName"`
	Gender    string    `json:"gender"`
	SessionID ID        `json:"sessionId"`
	UserID    ID        `json:"userId"`
	Week      Week      `json:"week"`
	TimeZone  TimeZone  `json:"time_zone"`
	Duration  float64   `json:"duration"`
}

// EventFields lists the JSON keys every event record must carry.
var EventFields = []string{
	"artist", "song", "duration", "ts", "sessionId", "level", "state",
	"userAgent", "userId", "firstName", "gender", "week", "time_zone",
}
