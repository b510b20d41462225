package app

import (
	"testing"
	"time"

	"github.com/j-veylop/cadence-dashboard-tui/internal/events"
	"github.com/j-veylop/cadence-dashboard-tui/internal/models"
)

func testTables() *events.Tables {
	return events.NewTables([]models.Event{
		{UserID: "1", TimeZone: models.TimeZoneEST, Week: models.WeekPresent, Song: "Yellow", Artist: "Coldplay", Level: "paid"},
		{UserID: "2", TimeZone: models.TimeZoneEST, Week: models.WeekPresent, Song: "Yellow", Artist: "Coldplay", Level: "paid"},
		{UserID: "3", TimeZone: models.TimeZoneEST, Week: models.WeekPresent, Song: "Clocks", Artist: "Coldplay", Level: "free"},
		{UserID: "4", TimeZone: models.TimeZonePST, Week: models.Week2, Song: "Uprising", Artist: "Muse", Level: "free"},
	})
}

func TestNewState(t *testing.T) {
	s := NewState()
	if s == nil {
		t.Fatal("NewState returned nil")
	}
	if len(s.GetSnapshots()) != 0 {
		t.Error("Snapshots should be empty")
	}
	if s.Loading.Initial != true {
		t.Error("Initial loading should be true")
	}
	if !s.GetDashboard().IsEmpty() {
		t.Error("Dashboard should be empty before tables load")
	}
}

func TestState_SetLoading(t *testing.T) {
	s := NewState()

	s.SetLoading("reload", true)
	if !s.Loading.Reload {
		t.Error("Reload loading should be true")
	}
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true")
	}

	s.SetLoading("reload", false)
	// Initial is still true
	if !s.AnyLoading() {
		t.Error("AnyLoading should be true (Initial is true)")
	}

	s.SetLoading("initial", false)
	if s.AnyLoading() {
		t.Error("AnyLoading should be false")
	}

	resources := s.GetLoadingResources()
	if len(resources) != 0 {
		t.Errorf("GetLoadingResources should be empty, got %v", resources)
	}

	s.SetLoading("export", true)
	resources = s.GetLoadingResources()
	if len(resources) != 1 || resources[0] != "export" {
		t.Errorf("GetLoadingResources should contain export, got %v", resources)
	}
}

func TestState_SetTablesRecomputes(t *testing.T) {
	s := NewState()
	s.SetTables(testTables())

	if s.IsInitialLoading() {
		t.Error("SetTables should clear initial loading")
	}

	d := s.GetDashboard()
	if d.Plays != 3 {
		t.Errorf("Plays = %d, want 3 (default selection is Present in every zone)", d.Plays)
	}
	if d.Levels.Get("paid") != 2 || d.Levels.Get("free") != 1 {
		t.Errorf("Levels = %v, want paid:2 free:1", d.Levels.Counts)
	}
	if s.GetLastUpdated().IsZero() {
		t.Error("LastUpdated should be set")
	}
}

func TestState_SetSelectionRecomputes(t *testing.T) {
	s := NewState()
	s.SetTables(testTables())

	sel := models.Selection{
		TimeZones: []models.TimeZone{models.TimeZonePST},
		Weeks:     []models.Week{models.Week2},
	}
	s.SetSelection(sel)

	if got := s.GetSelection(); len(got.TimeZones) != 1 || got.TimeZones[0] != models.TimeZonePST {
		t.Errorf("GetSelection = %v", got)
	}
	d := s.GetDashboard()
	if d.Plays != 1 || len(d.TopSongs) != 1 || d.TopSongs[0].Song != "Uprising" {
		t.Errorf("unexpected dashboard for PST/Week 2: %+v", d)
	}

	s.SetSelection(models.Selection{TimeZones: []models.TimeZone{models.TimeZoneHST}})
	if !s.GetDashboard().IsEmpty() {
		t.Error("HST selection should produce an empty dashboard")
	}
}

func TestState_Snapshots(t *testing.T) {
	s := NewState()
	s.SetSnapshots([]models.Snapshot{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})

	got := s.GetSnapshots()
	if len(got) != 2 {
		t.Fatalf("GetSnapshots len = %d, want 2", len(got))
	}
	got[0].Name = "changed"
	if s.GetSnapshots()[0].Name != "a" {
		t.Error("GetSnapshots should return a copy")
	}

	if got := s.SnapshotTotal(); got != 2 {
		t.Errorf("SnapshotTotal without a count = %d, want 2", got)
	}
	s.SetSnapshotTotal(150)
	if got := s.SnapshotTotal(); got != 150 {
		t.Errorf("SnapshotTotal = %d, want 150", got)
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState()

	id := s.AddNotification(NotificationInfo, "test", time.Minute)
	if id == "" {
		t.Error("AddNotification returned empty ID")
	}

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("GetNotifications len = %d, want 1", len(notifs))
	}
	if notifs[0].Message != "test" {
		t.Errorf("Notification message = %s, want test", notifs[0].Message)
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("Notification should be removed")
	}
}

func TestState_ClearExpiredNotifications(t *testing.T) {
	s := NewState()

	// Expired
	s.notifications = append(s.notifications, Notification{
		ID:        "expired",
		CreatedAt: time.Now().Add(-2 * time.Minute),
		Duration:  time.Minute,
	})

	// Active
	s.notifications = append(s.notifications, Notification{
		ID:        "active",
		CreatedAt: time.Now(),
		Duration:  time.Minute,
	})

	s.ClearExpiredNotifications()

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].ID != "active" {
		t.Errorf("Expected active notification, got %s", notifs[0].ID)
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewState()

	s.SetLoadingNotification("loading...")
	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("Expected 1 notification, got %d", len(notifs))
	}
	if notifs[0].ID != LoadingNotificationID {
		t.Errorf("Expected ID %s, got %s", LoadingNotificationID, notifs[0].ID)
	}
	if notifs[0].Message != "loading..." {
		t.Errorf("Expected message loading..., got %s", notifs[0].Message)
	}

	// Update message
	s.SetLoadingNotification("still loading...")
	notifs = s.GetNotifications()
	if len(notifs) != 1 {
		t.Errorf("Expected 1 notification after update")
	}
	if notifs[0].Message != "still loading..." {
		t.Errorf("Expected message still loading..., got %s", notifs[0].Message)
	}

	s.ClearLoadingNotification()
	if len(s.GetNotifications()) != 0 {
		t.Error("Loading notification should be cleared")
	}
}

func TestState_TimeSinceUpdate(t *testing.T) {
	s := NewState()
	if s.TimeSinceUpdate() != 0 {
		t.Error("TimeSinceUpdate should be 0 before any update")
	}

	s.SetTables(testTables())
	time.Sleep(time.Millisecond)

	if s.TimeSinceUpdate() == 0 {
		t.Error("TimeSinceUpdate should be > 0")
	}
}

func TestNotificationType_String(t *testing.T) {
	tests := []struct {
		t    NotificationType
		want string
	}{
		{NotificationSuccess, "success"},
		{NotificationError, "error"},
		{NotificationWarning, "warning"},
		{NotificationInfo, "info"},
		{NotificationType(999), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
