package checkout

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"domz/models"
	"domz/rdx"

	"github.com/redis/go-redis/v9"
)

// ShippingStore persists the last submitted shipping details per
// session, used only to prefill the next checkout form.
type ShippingStore interface {
	Load(ctx context.Context, sessionID string) models.ShippingDetails
	Save(ctx context.Context, sessionID string, d models.ShippingDetails)
}

const shippingKeyPrefix = "shipping:"

const shippingTTL = 365 * 24 * time.Hour

type RedisShippingStore struct{}

func NewRedisShippingStore() RedisShippingStore {
	return RedisShippingStore{}
}

// Load degrades to zero-value details on absence, corruption, or any
// storage failure; prefill is best-effort.
func (RedisShippingStore) Load(ctx context.Context, sessionID string) models.ShippingDetails {
	var d models.ShippingDetails
	raw, err := rdx.Conn.Get(ctx, shippingKeyPrefix+sessionID).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("shipping load error:", err)
		}
		return d
	}
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		log.Println("shipping decode error:", err)
		return models.ShippingDetails{}
	}
	return d
}

func (RedisShippingStore) Save(ctx context.Context, sessionID string, d models.ShippingDetails) {
	data, err := json.Marshal(d)
	if err != nil {
		log.Println("shipping encode error:", err)
		return
	}
	if err := rdx.Conn.Set(ctx, shippingKeyPrefix+sessionID, data, shippingTTL).Err(); err != nil {
		log.Println("shipping save error:", err)
	}
}
