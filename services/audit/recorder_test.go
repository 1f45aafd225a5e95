package audit

import (
	"fmt"
	"testing"
	"time"

	"alwafi_go/models"
)

func TestPrependNewestFirst(t *testing.T) {
	var log []models.AuditEntry
	log = Prepend(log, models.AuditEntry{ID: "first", Timestamp: time.Now()})
	log = Prepend(log, models.AuditEntry{ID: "second", Timestamp: time.Now()})
	log = Prepend(log, models.AuditEntry{ID: "third", Timestamp: time.Now()})

	if len(log) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(log))
	}
	if log[0].ID != "third" || log[1].ID != "second" || log[2].ID != "first" {
		t.Fatalf("newest entry must be at index 0: %v %v %v", log[0].ID, log[1].ID, log[2].ID)
	}
}

func TestPrependEvictsOldest(t *testing.T) {
	var log []models.AuditEntry
	for i := 0; i < MaxEntries+10; i++ {
		log = Prepend(log, models.AuditEntry{ID: fmt.Sprintf("e%d", i)})
	}

	if len(log) != MaxEntries {
		t.Fatalf("log must be capped at %d, got %d", MaxEntries, len(log))
	}
	if log[0].ID != fmt.Sprintf("e%d", MaxEntries+9) {
		t.Fatalf("head must be the newest entry, got %q", log[0].ID)
	}
	if log[MaxEntries-1].ID != "e10" {
		t.Fatalf("oldest surviving entry should be e10, got %q", log[MaxEntries-1].ID)
	}
}

func TestPrependDoesNotMutateInput(t *testing.T) {
	orig := []models.AuditEntry{{ID: "a"}, {ID: "b"}}
	_ = Prepend(orig, models.AuditEntry{ID: "c"})
	if orig[0].ID != "a" || orig[1].ID != "b" {
		t.Fatalf("input slice must not be mutated")
	}
}

func TestKnownActions(t *testing.T) {
	for _, action := range []string{
		ActionRoleChanged,
		ActionLevelAssigned,
		ActionDeptAssigned,
		ActionUserDeleted,
		ActionFineIssued,
		ActionFineRemoved,
	} {
		if !knownActions[action] {
			t.Fatalf("action %q missing from the vocabulary", action)
		}
	}
	if knownActions["Password Changed"] {
		t.Fatalf("unlisted action must not be known")
	}
}
