package models

import "time"

// PendingEdit is an admin-authored draft edit held on the event until it
// is applied or discarded as a whole. Empty fields mean "no change".
type PendingEdit struct {
	Title       string    `json:"title,omitempty" bson:"title,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Date        string    `json:"date,omitempty" bson:"date,omitempty"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	EditedBy    string    `json:"editedby" bson:"editedby"`
	ProposedAt  time.Time `json:"proposed_at" bson:"proposed_at"`
}

type Event struct {
	EventID           string       `json:"eventid" bson:"eventid"`
	Title             string       `json:"title" bson:"title"`
	Description       string       `json:"description" bson:"description"`
	Date              string       `json:"date" bson:"date"`
	Location          string       `json:"location" bson:"location"`
	Category          string       `json:"category,omitempty" bson:"category,omitempty"`
	Banner            string       `json:"banner,omitempty" bson:"banner,omitempty"`
	PostedBy          string       `json:"postedby" bson:"postedby"`
	Status            string       `json:"status" bson:"status"`
	InterestIDs       []string     `json:"interest_ids" bson:"interest_ids"`
	AssignedVendorIDs []string     `json:"assigned_vendor_ids" bson:"assigned_vendor_ids"`
	PendingEdit       *PendingEdit `json:"pending_edit,omitempty" bson:"pending_edit,omitempty"`
	CreatedAt         time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at" bson:"updated_at"`
}
