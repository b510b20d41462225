package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/cadence-dashboard-tui/internal/analytics"
	"github.com/j-veylop/cadence-dashboard-tui/internal/config"
	"github.com/j-veylop/cadence-dashboard-tui/internal/events"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
	"github.com/j-veylop/cadence-dashboard-tui/internal/services"
)

const testRecord = `{"artist":"Muse","song":"Uprising","duration":305.0,"ts":1541106106000,` +
	`"sessionId":7,"level":"free","state":"WA","userAgent":"Mozilla/5.0","userId":"12",` +
	`"firstName":"Ava","gender":"F","week":"Present","time_zone":"PST"}`

// newTestManager builds a manager over a data directory holding one event.
func newTestManager(t *testing.T) *services.Manager {
	t.Helper()
	tmpDir := t.TempDir()
	dataDir := filepath.Join(tmpDir, "data")
	if err := os.Mkdir(dataDir, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, events.RawFile), []byte(testRecord), 0o600); err != nil {
		t.Fatal(err)
	}
	for _, tz := range models.AllTimeZones() {
		if err := os.WriteFile(filepath.Join(dataDir, events.ZoneFile(tz)), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	mgr, err := services.NewManager(&config.Config{
		DataDir:      dataDir,
		DatabasePath: filepath.Join(tmpDir, "test.db"),
		ExportDir:    filepath.Join(tmpDir, "export"),
	})
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	t.Cleanup(func() { _ = mgr.Close() })
	return mgr
}

func TestTickCmd(t *testing.T) {
	msg, ok := tickCmd(time.Millisecond)().(TickMsg)
	if !ok {
		t.Fatal("Expected TickMsg")
	}
	if msg.Time.IsZero() {
		t.Error("TickMsg should carry the tick time")
	}
	if defaultTickCmd() == nil {
		t.Error("defaultTickCmd returned nil")
	}
}

func TestNotifyCmds(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) tea.Cmd
		want NotificationType
	}{
		{"Success", notifySuccessCmd, NotificationSuccess},
		{"Error", notifyErrorCmd, NotificationError},
		{"Warning", notifyWarningCmd, NotificationWarning},
		{"Info", notifyInfoCmd, NotificationInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.fn("msg")
			msg := cmd()

			addMsg, ok := msg.(AddNotificationMsg)
			if !ok {
				t.Fatalf("Expected AddNotificationMsg, got %T", msg)
			}
			if addMsg.Type != tt.want {
				t.Errorf("Type = %v, want %v", addMsg.Type, tt.want)
			}
			if addMsg.Message != "msg" {
				t.Errorf("Message = %q, want msg", addMsg.Message)
			}
		})
	}
}

func TestClearNotificationCmd(t *testing.T) {
	msg, ok := clearNotificationCmd("id", time.Millisecond)().(RemoveNotificationMsg)
	if !ok {
		t.Fatal("Expected RemoveNotificationMsg")
	}
	if msg.ID != "id" {
		t.Errorf("ID = %q, want id", msg.ID)
	}
}

func TestLoadInitialData(t *testing.T) {
	msg, ok := loadInitialData(newTestManager(t))().(DataLoadedMsg)
	if !ok {
		t.Fatal("Expected DataLoadedMsg")
	}
	if got := len(msg.Tables.Raw()); got != 1 {
		t.Errorf("Raw rows = %d, want 1", got)
	}
	if len(msg.Snapshots) != 0 {
		t.Errorf("Snapshots = %d, want 0", len(msg.Snapshots))
	}
}

func TestReloadCmd(t *testing.T) {
	msg, ok := reloadCmd(newTestManager(t))().(ReloadResultMsg)
	if !ok {
		t.Fatal("Expected ReloadResultMsg")
	}
	if msg.Error != nil {
		t.Fatalf("Reload failed: %v", msg.Error)
	}
	if msg.Tables == nil {
		t.Error("Reload should return tables")
	}
}

func TestSnapshotCmds(t *testing.T) {
	mgr := newTestManager(t)

	d := analytics.Compute(mgr.Tables(), models.DefaultSelection())
	saved, ok := saveSnapshotCmd(mgr, "evening", d)().(SnapshotSavedMsg)
	if !ok {
		t.Fatal("Expected SnapshotSavedMsg")
	}
	if saved.Error != nil {
		t.Fatalf("SaveSnapshot failed: %v", saved.Error)
	}
	if saved.Snapshot.TopSong != "Uprising" {
		t.Errorf("TopSong = %q, want Uprising", saved.Snapshot.TopSong)
	}

	deleted, ok := deleteSnapshotCmd(mgr, saved.Snapshot.ID)().(SnapshotDeletedMsg)
	if !ok {
		t.Fatal("Expected SnapshotDeletedMsg")
	}
	if deleted.Error != nil {
		t.Errorf("DeleteSnapshot failed: %v", deleted.Error)
	}

	again := deleteSnapshotCmd(mgr, saved.Snapshot.ID)().(SnapshotDeletedMsg)
	if again.Error == nil {
		t.Error("Deleting twice should fail")
	}
}

func TestExportCmd(t *testing.T) {
	mgr := newTestManager(t)

	msg, ok := exportCmd(mgr, analytics.Compute(mgr.Tables(), models.DefaultSelection()))().(ExportResultMsg)
	if !ok {
		t.Fatal("Expected ExportResultMsg")
	}
	if msg.Error != nil {
		t.Fatalf("Export failed: %v", msg.Error)
	}
	if len(msg.Paths) == 0 {
		t.Error("Export should write files")
	}
}

func TestWaitForServiceEventCmd(t *testing.T) {
	ch := make(chan services.ServiceEvent, 1)
	ch <- services.ErrorEvent{Service: "data"}

	msg, ok := waitForServiceEventCmd(ch)().(ServiceEventMsg)
	if !ok {
		t.Fatal("Expected ServiceEventMsg")
	}
	if _, ok := msg.Event.(services.ErrorEvent); !ok {
		t.Errorf("Event = %T, want ErrorEvent", msg.Event)
	}

	close(ch)
	if msg := waitForServiceEventCmd(ch)(); msg != nil {
		t.Errorf("Closed channel should yield nil, got %T", msg)
	}
}
