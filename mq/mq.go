package mq

import (
	"context"
	"encoding/json"
	"log"

	"twohtsounds/models"
	"twohtsounds/rdx"
	"twohtsounds/utils"
)

const channel = "content-events"

// Emit publishes a content-change notification to Redis. It is strictly
// fire-and-forget: callers run it in a goroutine and a publish failure is
// logged, never surfaced.
func Emit(eventName string, content models.Index) {
	if content.MessageID == "" {
		content.MessageID = utils.GetUUID()
	}

	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[mq] marshal %s: %v", eventName, err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[mq] publish %s: %v", eventName, err)
	}
}
