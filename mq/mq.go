package mq

import (
	"context"
	"encoding/json"
	"log"

	"wayfare/models"
	"wayfare/rdx"
)

const eventsChannel = "trip-events"

// Emit publishes an index event to the Redis event channel. Failures are
// logged and swallowed; event delivery is best-effort.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] failed to marshal %s event: %v", eventName, err)
		return
	}

	if err := rdx.Conn.Publish(ctx, eventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] failed to publish %s event: %v", eventName, err)
	}
}

// StartEventLogger consumes published events and logs them. Placeholder
// consumer until a real indexing/notification worker subscribes.
func StartEventLogger() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, eventsChannel)
	ch := sub.Channel()

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[EventLogger] failed to parse event: %v", err)
			continue
		}
		log.Printf("[EventLogger] %s %s %s", event.Method, event.EntityType, event.EntityId)
	}
}
