package models

import "time"

type Category struct {
	CategoryID  string    `json:"categoryid" bson:"categoryid"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// MarketplaceSettings is a single well-known document. The
// DefaultEventApproval value is stored for the admin UI but is not
// consulted by event creation; new events always start pending.
type MarketplaceSettings struct {
	ID                   string    `json:"-" bson:"_id"`
	DefaultEventApproval string    `json:"default_event_approval" bson:"default_event_approval"`
	UpdatedAt            time.Time `json:"updated_at" bson:"updated_at"`
}
