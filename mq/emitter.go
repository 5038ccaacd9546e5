package mq

import (
	"context"
	"encoding/json"
	"log"

	"domz/rdx"
)

const cartChannel = "cart-events"

// CartEvent is broadcast whenever the cart wants the storefront's
// attention. "open" is emitted after an add so the drawer can slide out.
type CartEvent struct {
	SessionID string `json:"session_id"`
	Action    string `json:"action"`
	ProductID string `json:"product_id,omitempty"`
}

// Emit publishes a cart event to Redis; delivery is best-effort.
func Emit(ctx context.Context, ev CartEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, cartChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

// StartCartEventRelay forwards published cart events to the given sink,
// typically a websocket broadcast keyed by session.
func StartCartEventRelay(forward func(sessionID string, data []byte)) {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, cartChannel)
	ch := sub.Channel()

	log.Println("[CartEventRelay] Listening for cart events...")

	for msg := range ch {
		var ev CartEvent
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			log.Printf("[CartEventRelay] Failed to parse event: %v", err)
			continue
		}
		forward(ev.SessionID, []byte(msg.Payload))
	}
}
