package mq

import (
	"context"
	"encoding/json"
	"log"

	"eventforge/models"
	"eventforge/rdx"
)

const auditChannel = "workflow-events"

// Emit publishes a workflow mutation to the Redis audit channel. Failures
// are logged and swallowed; the audit trail is best-effort and must never
// fail the request that produced it.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), auditChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}
