package cart

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"domz/models"
	"domz/rdx"

	"github.com/redis/go-redis/v9"
)

// Store is the persistence port for the cart aggregate. One durable
// slot per session, written in full on every mutation.
type Store interface {
	Load(ctx context.Context, sessionID string) (models.Cart, error)
	Save(ctx context.Context, sessionID string, c models.Cart) error
}

const cartKeyPrefix = "cart:"

// Carts are kept a year past their last mutation.
const cartTTL = 365 * 24 * time.Hour

// RedisStore keeps each cart as a single JSON blob. Absent or corrupt
// data degrades to an empty cart, never an error the caller must handle.
type RedisStore struct{}

func NewRedisStore() RedisStore {
	return RedisStore{}
}

func (RedisStore) Load(ctx context.Context, sessionID string) (models.Cart, error) {
	raw, err := rdx.Conn.Get(ctx, cartKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return models.Cart{}, nil
	}
	if err != nil {
		return models.Cart{}, err
	}
	return decodeCart([]byte(raw)), nil
}

func (RedisStore) Save(ctx context.Context, sessionID string, c models.Cart) error {
	data, err := encodeCart(c)
	if err != nil {
		return err
	}
	return rdx.Conn.Set(ctx, cartKeyPrefix+sessionID, data, cartTTL).Err()
}

// The stored record is the ordered line list itself, nothing more.
func encodeCart(c models.Cart) ([]byte, error) {
	lines := c.Lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	return json.Marshal(lines)
}

// decodeCart recovers locally from malformed payloads.
func decodeCart(raw []byte) models.Cart {
	var lines []models.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		log.Println("cart decode error, starting empty:", err)
		return models.Cart{}
	}
	return models.Cart{Lines: lines}
}
