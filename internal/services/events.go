package services

import (
	"encoding/json"
	"log"

	"pawmarket/pkg/rabbitmq"
)

// EventPublisher publishes marketplace activity events to the message
// broker. Services tolerate a nil publisher: events are then skipped.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// publishActivity marshals the payload and publishes it on the activity
// queue. Publishing is best-effort: failures are logged, never propagated,
// so a broker outage cannot fail the request that triggered the event.
func publishActivity(mq EventPublisher, event string, payload map[string]interface{}) {
	if mq == nil {
		log.Printf("Event publisher is not configured. Skipping %s event.", event)
		return
	}

	payload["event"] = event
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}

	if err := mq.Publish("", rabbitmq.ActivityQueue, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", event, err)
	}
}
