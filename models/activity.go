package models

import "time"

// Index is the payload published on the audit channel whenever a
// workflow mutation lands.
type Index struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Method     string `json:"method"`
	UserID     string `json:"userid,omitempty"`
}

type Activity struct {
	UserID     string    `json:"userid" bson:"userid"`
	Action     string    `json:"action" bson:"action"`
	EntityType string    `json:"entity_type" bson:"entity_type"`
	EntityID   string    `json:"entity_id" bson:"entity_id"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
