package actionlog

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestAppend_StampsAndDefaults(t *testing.T) {
	log := New(50)
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	log.SetClock(func() time.Time { return fixed })

	entry := log.Append("light1", "Turn ON", "")

	if entry.User != "User" {
		t.Errorf("User = %q, want default %q", entry.User, "User")
	}
	if entry.DeviceID != "light1" {
		t.Errorf("DeviceID = %q, want %q", entry.DeviceID, "light1")
	}
	if !strings.HasPrefix(entry.ID, "act-") {
		t.Errorf("ID = %q, want act- prefix", entry.ID)
	}
	if entry.Time() != "09:26:53" {
		t.Errorf("Time() = %q, want %q", entry.Time(), "09:26:53")
	}
}

func TestAppend_EvictsOldestBeyondCapacity(t *testing.T) {
	log := New(50)

	for i := 0; i < 51; i++ {
		log.Append("light1", fmt.Sprintf("action-%d", i), "User")
	}

	if log.Len() != 50 {
		t.Fatalf("Len() = %d after 51 appends, want 50", log.Len())
	}

	entries := log.Entries()

	// Newest first: the latest append leads, the very first is gone.
	if entries[0].Action != "action-50" {
		t.Errorf("Entries()[0].Action = %q, want %q", entries[0].Action, "action-50")
	}
	if entries[len(entries)-1].Action != "action-1" {
		t.Errorf("oldest retained = %q, want %q (action-0 evicted)", entries[len(entries)-1].Action, "action-1")
	}
}

func TestEntries_NewestFirst(t *testing.T) {
	log := New(10)
	log.Append("light1", "Turn ON", "User")
	log.Append("door1", "Unlock", "User")
	log.Append("fan1", "Set speed to 2", "User")

	entries := log.Entries()
	want := []string{"Set speed to 2", "Unlock", "Turn ON"}
	for i, action := range want {
		if entries[i].Action != action {
			t.Errorf("Entries()[%d].Action = %q, want %q", i, entries[i].Action, action)
		}
	}
}

func TestRecentFor(t *testing.T) {
	log := New(50)

	// Interleave two devices; 15 entries for the fan.
	for i := 0; i < 15; i++ {
		log.Append("fan1", fmt.Sprintf("Set speed to %d", i%4), "User")
		log.Append("light1", "Turn ON", "User")
	}

	t.Run("respects limit", func(t *testing.T) {
		recent := log.RecentFor("fan1", 10)
		if len(recent) != 10 {
			t.Errorf("len = %d, want 10", len(recent))
		}
	})

	t.Run("never returns another device's entries", func(t *testing.T) {
		for _, e := range log.RecentFor("fan1", 10) {
			if e.DeviceID != "fan1" {
				t.Errorf("entry for %q leaked into fan1 results", e.DeviceID)
			}
		}
	})

	t.Run("newest first", func(t *testing.T) {
		recent := log.RecentFor("fan1", 3)
		if recent[0].Action != "Set speed to 2" { // i=14 -> 14%4=2
			t.Errorf("RecentFor()[0].Action = %q, want %q", recent[0].Action, "Set speed to 2")
		}
	})

	t.Run("limit defaults to 10", func(t *testing.T) {
		if got := len(log.RecentFor("fan1", 0)); got != 10 {
			t.Errorf("len = %d with zero limit, want 10", got)
		}
	})

	t.Run("empty for unknown device", func(t *testing.T) {
		if got := log.RecentFor("ghost", 10); len(got) != 0 {
			t.Errorf("len = %d for unknown device, want 0", len(got))
		}
	})
}

func TestNew_CapacityFallback(t *testing.T) {
	if got := New(0).Capacity(); got != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", got, DefaultCapacity)
	}
	if got := New(25).Capacity(); got != 25 {
		t.Errorf("Capacity() = %d, want 25", got)
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	log := New(10)
	log.Append("light1", "Turn ON", "User")

	entries := log.Entries()
	entries[0].Action = "tampered"

	if log.Entries()[0].Action != "Turn ON" {
		t.Error("mutating Entries() results must not affect the journal")
	}
}
