// Package data owns the loaded listening tables and reloads them when the
// files in the data directory change.
package data

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/j-veylop/cadence-dashboard-tui/internal/events"
	"github.com/j-veylop/cadence-dashboard-tui/internal/logger"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
)

// Event represents a data service event.
type Event struct {
	Tables *events.Tables
	Error  error
	Type   EventType
}

// EventType defines the type of data event.
type EventType int

const (
	EventTablesLoaded EventType = iota
	EventTablesReloaded
	EventError
)

// defaultDebounce is used when no debounce interval is configured.
const defaultDebounce = 250 * time.Millisecond

// Options configures a Service.
type Options struct {
	Dir      string
	Debounce time.Duration
	Watch    bool
}

// Service holds the current tables and swaps them on reload.
type Service struct {
	mu            sync.RWMutex
	tables        *events.Tables
	dir           string
	debounce      time.Duration
	watcher       *fsnotify.Watcher
	eventChan     chan Event
	stopChan      chan struct{}
	debounceTimer *time.Timer
	reloadMu      sync.Mutex
	closeOnce     sync.Once
}

// tableFiles lists the file names the watcher reacts to.
var tableFiles = func() map[string]bool {
	names := map[string]bool{events.RawFile: true}
	for _, tz := range models.AllTimeZones() {
		names[events.ZoneFile(tz)] = true
	}
	return names
}()

// New loads every table from opts.Dir and, if requested, starts watching it.
// A load failure is returned so the caller can stop before the UI starts.
func New(opts Options) (*Service, error) {
	tables, err := events.LoadDir(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	s := &Service{
		tables:    tables,
		dir:       opts.Dir,
		debounce:  debounce,
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}

	if opts.Watch {
		if err := s.startWatcher(); err != nil {
			return nil, fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	logger.Info("Loaded tables", "dir", opts.Dir, "rows", len(tables.Raw()))
	s.sendEvent(Event{Type: EventTablesLoaded, Tables: tables})

	return s, nil
}

// Events returns the event channel for subscribing to data changes.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// Tables returns the current tables.
func (s *Service) Tables() *events.Tables {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tables
}

// Dir returns the watched data directory.
func (s *Service) Dir() string {
	return s.dir
}

// Reload reads the tables again. On failure the previous tables stay in
// place and the error is both returned and emitted.
func (s *Service) Reload() (*events.Tables, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	tables, err := events.LoadDir(s.dir)
	if err != nil {
		logger.Warn("Reload failed, keeping previous tables", "dir", s.dir, "error", err)
		s.sendEvent(Event{Type: EventError, Error: err})
		return nil, err
	}

	s.mu.Lock()
	s.tables = tables
	s.mu.Unlock()

	logger.Info("Reloaded tables", "dir", s.dir, "rows", len(tables.Raw()))
	s.sendEvent(Event{Type: EventTablesReloaded, Tables: tables})
	return tables, nil
}

// startWatcher starts the file system watcher.
func (s *Service) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	s.watcher = watcher

	// Watch the directory to catch editors that replace files
	if err := watcher.Add(s.dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return err
	}

	go s.watchLoop()
	return nil
}

// watchLoop handles file system events with debouncing.
func (s *Service) watchLoop() {
	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			if !tableFiles[filepath.Base(event.Name)] {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				s.scheduleReload()
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.sendEvent(Event{Type: EventError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

// scheduleReload collapses bursts of writes into a single reload.
func (s *Service) scheduleReload() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	s.debounceTimer = time.AfterFunc(s.debounce, func() {
		select {
		case <-s.stopChan:
			return
		default:
		}
		_, _ = s.Reload()
	})
}

// sendEvent sends an event to the event channel non-blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		// Channel full, drop oldest event
		select {
		case <-s.eventChan:
		default:
		}
		select {
		case s.eventChan <- event:
		default:
		}
	}
}

// Close stops the file watcher and cleans up resources.
func (s *Service) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.stopChan)

		s.mu.Lock()
		if s.debounceTimer != nil {
			s.debounceTimer.Stop()
		}
		s.mu.Unlock()

		if s.watcher != nil {
			err = s.watcher.Close()
		}
	})
	return err
}
