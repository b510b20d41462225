package app

import (
	"time"

	"github.com/j-veylop/cadence-dashboard-tui/internal/events"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
	"github.com/j-veylop/cadence-dashboard-tui/internal/services"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a resource is starting to load.
type StartLoadingMsg struct {
	Resource string
}

// StopLoadingMsg signals that a resource has finished loading.
type StopLoadingMsg struct {
	Resource string
}

// DataLoadedMsg carries the tables and snapshots available at startup.
type DataLoadedMsg struct {
	Tables        *events.Tables
	Snapshots     []models.Snapshot
	SnapshotTotal int
}

// ReloadResultMsg contains the result of a manual reload.
type ReloadResultMsg struct {
	Tables *events.Tables
	Error  error
}

// SaveSnapshotMsg requests saving the current dashboard as a snapshot.
type SaveSnapshotMsg struct {
	Name string
}

// SnapshotSavedMsg contains the result of saving a snapshot.
type SnapshotSavedMsg struct {
	Snapshot *models.Snapshot
	Error    error
}

// DeleteSnapshotMsg requests deletion of a snapshot.
type DeleteSnapshotMsg struct {
	ID int64
}

// SnapshotDeletedMsg contains the result of a snapshot deletion.
type SnapshotDeletedMsg struct {
	ID    int64
	Error error
}

// ApplySnapshotMsg restores the selection stored in a snapshot.
type ApplySnapshotMsg struct {
	Snapshot models.Snapshot
}

// ExportMsg requests exporting the current dashboard.
type ExportMsg struct{}

// ExportResultMsg contains the result of an export operation.
type ExportResultMsg struct {
	Paths []string
	Error error
}

// RefreshMsg requests the tables be read again.
type RefreshMsg struct{}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}
