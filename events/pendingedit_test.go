package events

import (
	"testing"

	"eventforge/models"
)

func TestSnapshotUpdatesOnlyProposedFields(t *testing.T) {
	pe := &models.PendingEdit{Title: "New title"}

	set := snapshotUpdates(pe)
	if len(set) != 1 {
		t.Fatalf("expected 1 field, got %d: %v", len(set), set)
	}
	if set["title"] != "New title" {
		t.Fatalf("title not carried over: %v", set)
	}
	if _, ok := set["description"]; ok {
		t.Fatal("empty description must not overwrite the live value")
	}
}

func TestSnapshotUpdatesAllFields(t *testing.T) {
	pe := &models.PendingEdit{
		Title:       "t",
		Description: "d",
		Date:        "2026-09-01",
		Location:    "l",
	}

	set := snapshotUpdates(pe)
	for _, key := range []string{"title", "description", "date", "location"} {
		if _, ok := set[key]; !ok {
			t.Errorf("missing %s in update", key)
		}
	}
	if len(set) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(set))
	}
}

func TestSnapshotUpdatesEmptyDraft(t *testing.T) {
	set := snapshotUpdates(&models.PendingEdit{})
	if len(set) != 0 {
		t.Fatalf("empty draft must update nothing, got %v", set)
	}
}

func TestStatusForAction(t *testing.T) {
	if s, ok := statusForAction("approve"); !ok || s != models.StatusApproved {
		t.Fatalf("approve: got %q, ok %v", s, ok)
	}
	if s, ok := statusForAction("deny"); !ok || s != models.StatusDenied {
		t.Fatalf("deny: got %q, ok %v", s, ok)
	}
	if _, ok := statusForAction("publish"); ok {
		t.Fatal("unknown action must be rejected")
	}
}
