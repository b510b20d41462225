// Package services provides service orchestration for the TUI.
package services

import (
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/j-veylop/cadence-dashboard-tui/internal/config"
	"github.com/j-veylop/cadence-dashboard-tui/internal/db"
	"github.com/j-veylop/cadence-dashboard-tui/internal/events"
	"github.com/j-veylop/cadence-dashboard-tui/internal/export"
	"github.com/j-veylop/cadence-dashboard-tui/internal/logger"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
	"github.com/j-veylop/cadence-dashboard-tui/internal/services/data"
)

// snapshotListLimit bounds the snapshots shown on the Snapshots tab.
const snapshotListLimit = 100

type (
	// DataLoadedEvent is emitted once the initial tables are available.
	DataLoadedEvent struct {
		Tables *events.Tables
	}

	// DataReloadedEvent is emitted when the tables were read again.
	DataReloadedEvent struct {
		Tables *events.Tables
	}

	// SnapshotsChangedEvent is emitted when a snapshot is saved or deleted.
	SnapshotsChangedEvent struct {
		Snapshots []models.Snapshot
		Total     int
	}

	// ExportedEvent is emitted after a dashboard export finished.
	ExportedEvent struct {
		Dir   string
		Paths []string
	}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (DataLoadedEvent) isServiceEvent()       {}
func (DataReloadedEvent) isServiceEvent()     {}
func (SnapshotsChangedEvent) isServiceEvent() {}
func (ExportedEvent) isServiceEvent()         {}
func (ErrorEvent) isServiceEvent()            {}

// notify is swapped out in tests.
var notify = beeep.Notify

// Manager orchestrates services and event routing.
type Manager struct {
	mu          sync.RWMutex
	data        *data.Service
	database    *db.DB
	cfg         *config.Config
	eventChan   chan ServiceEvent
	stopChan    chan struct{}
	subscribers []chan<- ServiceEvent
	closeOnce   sync.Once
}

// NewManager loads the tables and opens the snapshot store. A load failure
// is returned so the program can exit before the UI starts.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		cfg:       cfg,
		eventChan: make(chan ServiceEvent, 100),
		stopChan:  make(chan struct{}),
	}

	var err error
	m.data, err = data.New(data.Options{
		Dir:      cfg.DataDir,
		Debounce: cfg.ReloadDebounce,
		Watch:    cfg.Watch,
	})
	if err != nil {
		return nil, err
	}

	m.database, err = db.New(cfg.DatabasePath)
	if err != nil {
		_ = m.data.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	go m.routeEvents()

	return m, nil
}

// routeEvents routes events from individual services to subscribers.
func (m *Manager) routeEvents() {
	for {
		select {
		case event := <-m.data.Events():
			m.handleDataEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

// handleDataEvent converts and broadcasts data events.
func (m *Manager) handleDataEvent(event data.Event) {
	switch event.Type {
	case data.EventTablesLoaded:
		m.broadcast(DataLoadedEvent{Tables: event.Tables})

	case data.EventTablesReloaded:
		m.broadcast(DataReloadedEvent{Tables: event.Tables})
		m.notifyDesktop("Cadence", fmt.Sprintf("Reloaded %d listening events", len(event.Tables.Raw())))

	case data.EventError:
		m.broadcast(ErrorEvent{
			Service: "data",
			Error:   event.Error,
		})
	}
}

func (m *Manager) notifyDesktop(title, body string) {
	if m.cfg == nil || !m.cfg.Notify {
		return
	}
	if err := notify(title, body, ""); err != nil {
		logger.Debug("Desktop notification failed", "error", err)
	}
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	// Send to main event channel
	select {
	case m.eventChan <- event:
	default:
	}

	// Send to subscribers
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Tables returns the currently loaded tables.
func (m *Manager) Tables() *events.Tables {
	return m.data.Tables()
}

// Reload forces the tables to be read again. The previous tables are kept
// on failure.
func (m *Manager) Reload() (*events.Tables, error) {
	return m.data.Reload()
}

// SaveSnapshot stores the headline numbers of d under name.
func (m *Manager) SaveSnapshot(name string, d models.Dashboard) (*models.Snapshot, error) {
	snap := models.NewSnapshot(name, d)
	if err := m.database.InsertSnapshot(&snap); err != nil {
		return nil, err
	}
	logger.Info("Saved snapshot", "id", snap.ID, "name", snap.Name)
	m.broadcastSnapshots()
	return &snap, nil
}

// ListSnapshots returns the saved snapshots, newest first.
func (m *Manager) ListSnapshots() ([]models.Snapshot, error) {
	return m.database.ListSnapshots(snapshotListLimit)
}

// GetSnapshot returns a saved snapshot.
func (m *Manager) GetSnapshot(id int64) (*models.Snapshot, error) {
	return m.database.GetSnapshot(id)
}

// DeleteSnapshot removes a saved snapshot.
func (m *Manager) DeleteSnapshot(id int64) error {
	if err := m.database.DeleteSnapshot(id); err != nil {
		return err
	}
	logger.Info("Deleted snapshot", "id", id)
	m.broadcastSnapshots()
	return nil
}

// SnapshotCount returns how many snapshots are stored. It can exceed the
// length of ListSnapshots, which is capped.
func (m *Manager) SnapshotCount() (int, error) {
	return m.database.CountSnapshots()
}

func (m *Manager) broadcastSnapshots() {
	snaps, err := m.ListSnapshots()
	if err != nil {
		m.broadcast(ErrorEvent{Service: "snapshots", Error: err})
		return
	}
	total, err := m.SnapshotCount()
	if err != nil {
		logger.Warn("Failed to count snapshots", "error", err)
		total = len(snaps)
	}
	m.broadcast(SnapshotsChangedEvent{Snapshots: snaps, Total: total})
}

// Export writes d to the configured export directory.
func (m *Manager) Export(d models.Dashboard) ([]string, error) {
	dir := m.cfg.ExportDir
	paths, err := export.Write(dir, d)
	if err != nil {
		return paths, fmt.Errorf("export failed: %w", err)
	}
	m.broadcast(ExportedEvent{Dir: dir, Paths: paths})
	m.notifyDesktop("Cadence", fmt.Sprintf("Exported %d files to %s", len(paths), dir))
	return paths, nil
}

// Config returns the configuration the manager was built with.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	var errs []error

	m.closeOnce.Do(func() {
		close(m.stopChan)

		m.mu.Lock()
		for _, sub := range m.subscribers {
			close(sub)
		}
		m.subscribers = nil
		m.mu.Unlock()

		if err := m.data.Close(); err != nil {
			errs = append(errs, err)
		}

		if m.database != nil {
			if err := m.database.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	})

	return errors.Join(errs...)
}

// InitialState returns the tables, the newest saved snapshots and the total
// number of snapshots for TUI initialization.
func (m *Manager) InitialState() (*events.Tables, []models.Snapshot, int) {
	snaps, err := m.ListSnapshots()
	if err != nil {
		logger.Warn("Failed to list snapshots", "error", err)
	}
	total, err := m.SnapshotCount()
	if err != nil {
		logger.Warn("Failed to count snapshots", "error", err)
		total = len(snaps)
	}
	return m.Tables(), snaps, total
}
