package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/j-veylop/cadence-dashboard-tui/internal/logger"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
)

// ErrSnapshotNotFound is returned when a snapshot id does not exist.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// InsertSnapshot saves a snapshot and sets its ID.
func (db *DB) InsertSnapshot(snap *models.Snapshot) error {
	query := `
		INSERT INTO snapshots (
			name, time_zones, weeks, plays, unique_users,
			top_song, top_artist, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := snap.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := db.ExecContext(context.Background(), query,
		snap.Name,
		joinZones(snap.TimeZones),
		joinWeeks(snap.Weeks),
		snap.Plays,
		snap.UniqueUsers,
		nullString(snap.TopSong),
		nullString(snap.TopArtist),
		createdAt.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		snap.ID = id
	}

	return nil
}

// ListSnapshots returns the most recent snapshots, newest first.
func (db *DB) ListSnapshots(limit int) ([]models.Snapshot, error) {
	query := `
		SELECT id, name, time_zones, weeks, plays, unique_users,
			   top_song, top_artist, created_at
		FROM snapshots
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := db.QueryContext(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snaps []models.Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}

	return snaps, rows.Err()
}

// GetSnapshot returns a single snapshot by id.
func (db *DB) GetSnapshot(id int64) (*models.Snapshot, error) {
	query := `
		SELECT id, name, time_zones, weeks, plays, unique_users,
			   top_song, top_artist, created_at
		FROM snapshots
		WHERE id = ?
	`

	snap, err := scanSnapshot(db.QueryRowContext(context.Background(), query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// DeleteSnapshot removes a snapshot.
func (db *DB) DeleteSnapshot(id int64) error {
	result, err := db.ExecContext(context.Background(), "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrSnapshotNotFound
	}
	return nil
}

// CountSnapshots returns the number of saved snapshots.
func (db *DB) CountSnapshots() (int, error) {
	var n int
	err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM snapshots").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count snapshots: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (models.Snapshot, error) {
	var snap models.Snapshot
	var zones, weeks, createdAt string
	var topSong, topArtist sql.NullString

	err := row.Scan(
		&snap.ID,
		&snap.Name,
		&zones,
		&weeks,
		&snap.Plays,
		&snap.UniqueUsers,
		&topSong,
		&topArtist,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return snap, err
		}
		return snap, fmt.Errorf("failed to scan snapshot: %w", err)
	}

	snap.TimeZones = models.ParseTimeZones(zones)
	snap.Weeks = models.ParseWeeks(weeks)
	snap.TopSong = topSong.String
	snap.TopArtist = topArtist.String
	snap.CreatedAt = parseTime(createdAt)

	return snap, nil
}

// parseTime accepts the formats sqlite hands back for DATETIME columns.
func parseTime(s string) time.Time {
	for _, layout := range []string{timeFormat, time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	logger.Debug("Unparseable snapshot timestamp", "value", s)
	return time.Time{}
}

func joinZones(zones []models.TimeZone) string {
	parts := make([]string, len(zones))
	for i, tz := range zones {
		parts[i] = tz.String()
	}
	return strings.Join(parts, ",")
}

func joinWeeks(weeks []models.Week) string {
	parts := make([]string, len(weeks))
	for i, w := range weeks {
		parts[i] = w.String()
	}
	return strings.Join(parts, ",")
}

// nullString returns a sql.NullString from a string.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
