// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/j-veylop/cadence-dashboard-tui/internal/analytics"
	"github.com/j-veylop/cadence-dashboard-tui/internal/events"
	"github.com/j-veylop/cadence-dashboard-tui/internal/logger"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// LoadingState tracks loading states for different resources.
type LoadingState struct {
	Initial bool
	Reload  bool
	Export  bool
}

// State is the shared application state read by every tab.
//
// Dashboard is always the result of running the analytics pipeline over
// Tables with Selection; both setters recompute it before returning.
type State struct {
	mu sync.RWMutex

	Tables    *events.Tables
	Selection models.Selection
	Dashboard models.Dashboard
	Snapshots []models.Snapshot

	Loading LoadingState

	LastUpdated time.Time

	snapshotTotal   int
	notifications   []Notification
	notificationSeq int
}

// NewState creates the state with the default selection.
func NewState() *State {
	return &State{
		Selection:     models.DefaultSelection(),
		Snapshots:     make([]models.Snapshot, 0),
		notifications: make([]Notification, 0),
		Loading: LoadingState{
			Initial: true,
		},
	}
}

// SetLoading sets the loading state for a specific resource.
func (s *State) SetLoading(resource string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch resource {
	case "initial":
		s.Loading.Initial = loading
	case "reload":
		s.Loading.Reload = loading
	case "export":
		s.Loading.Export = loading
	}
}

// AnyLoading returns true if any resource is currently loading.
func (s *State) AnyLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Loading.Initial ||
		s.Loading.Reload ||
		s.Loading.Export
}

// IsInitialLoading returns true if initial data is still loading.
func (s *State) IsInitialLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading.Initial
}

// GetLoadingResources returns a list of currently loading resources.
func (s *State) GetLoadingResources() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var resources []string
	if s.Loading.Initial {
		resources = append(resources, "initial")
	}
	if s.Loading.Reload {
		resources = append(resources, "reload")
	}
	if s.Loading.Export {
		resources = append(resources, "export")
	}
	return resources
}

// SetTables swaps in freshly loaded tables and recomputes the dashboard.
func (s *State) SetTables(tables *events.Tables) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Tables = tables
	s.Loading.Initial = false
	s.recomputeLocked()
}

// GetTables returns the loaded tables.
func (s *State) GetTables() *events.Tables {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Tables
}

// SetSelection changes the selection and recomputes the dashboard.
func (s *State) SetSelection(sel models.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Selection = sel
	s.recomputeLocked()
}

// GetSelection returns the current selection.
func (s *State) GetSelection() models.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Selection
}

// GetDashboard returns the aggregates for the current selection.
func (s *State) GetDashboard() models.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Dashboard
}

func (s *State) recomputeLocked() {
	start := time.Now()
	s.Dashboard = analytics.Compute(s.Tables, s.Selection)
	s.LastUpdated = time.Now()
	logger.Debug("Recomputed dashboard",
		"selection", s.Selection.String(),
		"plays", s.Dashboard.Plays,
		"took", time.Since(start))
}

// SetSnapshots replaces the saved snapshot list.
func (s *State) SetSnapshots(snaps []models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Snapshots = snaps
}

// SetSnapshotTotal records how many snapshots are stored, including those
// past the listed page.
func (s *State) SetSnapshotTotal(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshotTotal = n
}

// SnapshotTotal returns the number of stored snapshots. It is never less
// than the number listed.
func (s *State) SnapshotTotal() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return max(s.snapshotTotal, len(s.Snapshots))
}

// GetSnapshots returns a copy of the saved snapshots.
func (s *State) GetSnapshots() []models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snaps := make([]models.Snapshot, len(s.Snapshots))
	copy(snaps, s.Snapshots)
	return snaps
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	notification := Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	s.notifications = append(s.notifications, notification)

	// Keep only the last 10 notifications
	if len(s.notifications) > 10 {
		s.notifications = s.notifications[len(s.notifications)-10:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Clear expired inline when reading
	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}

	return active
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  0,
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// GetLastUpdated returns the last time the state was updated.
func (s *State) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastUpdated
}

// TimeSinceUpdate returns the duration since the last update.
func (s *State) TimeSinceUpdate() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LastUpdated.IsZero() {
		return 0
	}
	return time.Since(s.LastUpdated)
}
