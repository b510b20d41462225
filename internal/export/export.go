// Package export writes a dashboard to files that can be shared outside the
// terminal: an interactive HTML page, PNG charts and a markdown table.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/j-veylop/cadence-dashboard-tui/internal/logger"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
)

// Output file names.
const (
	HTMLFile      = "dashboard.html"
	TopSongsFile  = "top_songs.md"
	LevelsFile    = "account_levels.png"
	PlatformsFile = "platforms.png"
	GendersFile   = "gender.png"
)

// Write exports d into dir, creating it if needed, and returns the paths
// written. PNG charts are skipped for empty distributions.
func Write(dir string, d models.Dashboard) ([]string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	var written []string
	write := func(name string, render func(*bytes.Buffer) error) error {
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			return fmt.Errorf("failed to render %s: %w", name, err)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		written = append(written, path)
		return nil
	}

	if err := write(HTMLFile, func(buf *bytes.Buffer) error { return HTML(buf, d) }); err != nil {
		return written, err
	}

	if err := write(TopSongsFile, func(buf *bytes.Buffer) error {
		_, err := buf.WriteString(TopSongsMarkdown(d.TopSongs) + "\n")
		return err
	}); err != nil {
		return written, err
	}

	charts := []struct {
		render func(io.Writer, models.Distribution) error
		dist   models.Distribution
		name   string
	}{
		{LevelsPNG, d.Levels, LevelsFile},
		{PlatformsPNG, d.Platforms, PlatformsFile},
		{GendersPNG, d.Genders, GendersFile},
	}
	for _, c := range charts {
		if c.dist.IsEmpty() {
			continue
		}
		if err := write(c.name, func(buf *bytes.Buffer) error { return c.render(buf, c.dist) }); err != nil {
			return written, err
		}
	}

	logger.Info("Exported dashboard", "dir", dir, "files", len(written))
	return written, nil
}
