package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
	"github.com/j-veylop/cadence-dashboard-tui/internal/services"
)

const (
	// DefaultTickInterval is the default interval between ticks.
	DefaultTickInterval = 2 * time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 10 * time.Second
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// defaultTickCmd returns a command that sends a TickMsg after the default interval.
func defaultTickCmd() tea.Cmd {
	return tickCmd(DefaultTickInterval)
}

// loadInitialData returns a command that reads the tables and saved snapshots.
func loadInitialData(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		tables, snaps, total := mgr.InitialState()
		return DataLoadedMsg{Tables: tables, Snapshots: snaps, SnapshotTotal: total}
	}
}

// reloadCmd returns a command that reads the tables from disk again.
func reloadCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		tables, err := mgr.Reload()
		return ReloadResultMsg{Tables: tables, Error: err}
	}
}

// saveSnapshotCmd returns a command that stores the dashboard headline numbers.
func saveSnapshotCmd(mgr *services.Manager, name string, d models.Dashboard) tea.Cmd {
	return func() tea.Msg {
		snap, err := mgr.SaveSnapshot(name, d)
		return SnapshotSavedMsg{Snapshot: snap, Error: err}
	}
}

// deleteSnapshotCmd returns a command that deletes a snapshot.
func deleteSnapshotCmd(mgr *services.Manager, id int64) tea.Cmd {
	return func() tea.Msg {
		err := mgr.DeleteSnapshot(id)
		return SnapshotDeletedMsg{ID: id, Error: err}
	}
}

// exportCmd returns a command that writes the dashboard to the export directory.
func exportCmd(mgr *services.Manager, d models.Dashboard) tea.Cmd {
	return func() tea.Msg {
		paths, err := mgr.Export(d)
		return ExportResultMsg{Paths: paths, Error: err}
	}
}

// subscribeToServicesCmd returns a command that subscribes to service events.
func subscribeToServicesCmd(mgr *services.Manager) tea.Cmd {
	ch, _ := mgr.Subscribe()
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: ch}
	}
}

// waitForServiceEventCmd returns a command that waits for the next service event.
func waitForServiceEventCmd(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// clearNotificationCmd returns a command that removes a notification after a delay.
func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

// notifySuccessCmd returns a command that adds a success notification.
func notifySuccessCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationSuccess,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyErrorCmd returns a command that adds an error notification.
func notifyErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationError,
			Message:  message,
			Duration: LongNotificationDuration,
		}
	}
}

// notifyWarningCmd returns a command that adds a warning notification.
func notifyWarningCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationWarning,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyInfoCmd returns a command that adds an info notification.
func notifyInfoCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationInfo,
			Message:  message,
			Duration: QuickNotificationDuration,
		}
	}
}
