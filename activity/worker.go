package activity

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"eventforge/db"
	"eventforge/models"
	"eventforge/rdx"
)

// StartAuditWorker drains the workflow-events channel into the
// activities collection. Runs for the life of the process.
func StartAuditWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, "workflow-events")
	ch := sub.Channel()

	log.Println("[AuditWorker] Listening for workflow events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[AuditWorker] Failed to parse event: %v", err)
			continue
		}

		record := models.Activity{
			UserID:     event.UserID,
			Action:     event.Method,
			EntityType: event.EntityType,
			EntityID:   event.EntityID,
			Timestamp:  time.Now(),
		}
		if _, err := db.ActivitiesCollection.InsertOne(ctx, record); err != nil {
			log.Printf("[AuditWorker] Insert error: %v", err)
		}
	}
}
