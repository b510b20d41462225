// Package events loads the listening-activity tables from newline-delimited JSON.
package events

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
)

// File names of the six tables inside the data directory.
const (
	RawFile = "omega_raw.json"
	ESTFile = "est_df.json"
	CSTFile = "cst_df.json"
	MSTFile = "mst_df.json"
	PSTFile = "pst_df.json"
	HSTFile = "hst_df.json"
)

// maxLineSize bounds a single NDJSON record.
const maxLineSize = 1 << 20

var (
	// ErrMissingField is returned when a record lacks a required key.
	ErrMissingField = errors.New("missing required field")
	// ErrMalformedRecord is returned when a line is not a valid event object.
	ErrMalformedRecord = errors.New("malformed record")
)

// SchemaError describes the record that failed validation.
type SchemaError struct {
	Err   error
	File  string
	Field string
	Line  int
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s:%d: %v %q", e.File, e.Line, e.Err, e.Field)
	}
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// zoneFiles maps each time zone to its pre-bucketed table.
var zoneFiles = map[models.TimeZone]string{
	models.TimeZoneEST: ESTFile,
	models.TimeZoneCST: CSTFile,
	models.TimeZoneMST: MSTFile,
	models.TimeZonePST: PSTFile,
	models.TimeZoneHST: HSTFile,
}

// ZoneFile returns the file name of the table for a time zone.
func ZoneFile(tz models.TimeZone) string {
	return zoneFiles[tz]
}

// Files returns the six table file names: the raw table first, then one per
// time zone in zone order.
func Files() []string {
	files := []string{RawFile}
	for _, tz := range models.AllTimeZones() {
		files = append(files, zoneFiles[tz])
	}
	return files
}

// Tables is the read-only data context shared by every rendering pass.
type Tables struct {
	zones map[models.TimeZone][]models.Event
	dir   string
	raw   []models.Event
}

// NewTables builds a data context from in-memory rows.
func NewTables(raw []models.Event) *Tables {
	return &Tables{raw: raw, zones: make(map[models.TimeZone][]models.Event)}
}

// Raw returns the raw events table. Callers must not modify it.
func (t *Tables) Raw() []models.Event {
	if t == nil {
		return nil
	}
	return t.raw
}

// Zone returns the pre-bucketed table for a time zone.
func (t *Tables) Zone(tz models.TimeZone) []models.Event {
	if t == nil {
		return nil
	}
	return t.zones[tz]
}

// Dir returns the directory the tables were loaded from.
func (t *Tables) Dir() string {
	if t == nil {
		return ""
	}
	return t.dir
}

// Counts returns the number of rows in each table keyed by file name.
func (t *Tables) Counts() map[string]int {
	counts := map[string]int{RawFile: len(t.Raw())}
	for tz, name := range zoneFiles {
		counts[name] = len(t.Zone(tz))
	}
	return counts
}

// LoadDir reads all six tables from dir. Any missing or malformed file is an error.
func LoadDir(dir string) (*Tables, error) {
	raw, err := LoadFile(filepath.Join(dir, RawFile))
	if err != nil {
		return nil, err
	}

	tables := &Tables{
		dir:   dir,
		raw:   raw,
		zones: make(map[models.TimeZone][]models.Event, len(zoneFiles)),
	}

	for _, tz := range models.AllTimeZones() {
		rows, err := LoadFile(filepath.Join(dir, zoneFiles[tz]))
		if err != nil {
			return nil, err
		}
		tables.zones[tz] = rows
	}

	return tables, nil
}

// LoadFile reads one NDJSON table.
func LoadFile(path string) ([]models.Event, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := Decode(f, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Decode parses NDJSON events from r. Blank lines are skipped; name is used
// in error messages.
func Decode(r io.Reader, name string) ([]models.Event, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var rows []models.Event
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}

		event, err := decodeRecord(data)
		if err != nil {
			var schemaErr *SchemaError
			if errors.As(err, &schemaErr) {
				schemaErr.File = name
				schemaErr.Line = line
				return nil, schemaErr
			}
			return nil, &SchemaError{File: name, Line: line, Err: fmt.Errorf("%w: %v", ErrMalformedRecord, err)}
		}
		rows = append(rows, event)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return rows, nil
}

// decodeRecord validates that every required key is present before decoding.
func decodeRecord(data []byte) (models.Event, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return models.Event{}, err
	}

	for _, key := range models.EventFields {
		if _, ok := fields[key]; !ok {
			return models.Event{}, &SchemaError{Err: ErrMissingField, Field: key}
		}
	}

	var event models.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}
