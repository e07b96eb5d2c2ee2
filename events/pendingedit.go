package events

import (
	"eventforge/models"

	"go.mongodb.org/mongo-driver/bson"
)

// statusForAction maps a moderation action to the stored status value.
func statusForAction(action string) (string, bool) {
	switch action {
	case "approve":
		return models.StatusApproved, true
	case "deny":
		return models.StatusDenied, true
	default:
		return "", false
	}
}

// snapshotUpdates builds the $set document for applying a pending edit.
// Only fields the draft actually proposes are overwritten; empty draft
// fields leave the live value alone.
func snapshotUpdates(pe *models.PendingEdit) bson.M {
	set := bson.M{}
	if pe.Title != "" {
		set["title"] = pe.Title
	}
	if pe.Description != "" {
		set["description"] = pe.Description
	}
	if pe.Date != "" {
		set["date"] = pe.Date
	}
	if pe.Location != "" {
		set["location"] = pe.Location
	}
	return set
}
