package catalog

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"domz/db"
	"domz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Syncer keeps the Products and Coupons feeds current from MongoDB.
// The storefront core only ever reads the feeds; it does not know or
// care where the snapshots come from.
type Syncer struct {
	Products *Feed[models.Product]
	Coupons  *Feed[models.Coupon]

	interval     time.Duration
	lastProducts []byte
	lastCoupons  []byte
}

func NewSyncer(interval time.Duration) *Syncer {
	return &Syncer{
		Products: NewFeed[models.Product](),
		Coupons:  NewFeed[models.Coupon](),
		interval: interval,
	}
}

// Run polls until ctx is cancelled. A snapshot is published only when
// the collection actually changed, so subscribers can treat every
// emission as news. Poll errors keep the previous snapshot alive.
func (s *Syncer) Run(ctx context.Context) {
	s.poll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *Syncer) poll(ctx context.Context) {
	products, err := fetchAll[models.Product](ctx, db.ProductsCollection)
	if err != nil {
		log.Println("catalog products poll error:", err)
	} else if raw := fingerprint(products); !bytesEqual(raw, s.lastProducts) {
		s.lastProducts = raw
		s.Products.Publish(products)
	}

	coupons, err := fetchAll[models.Coupon](ctx, db.CouponsCollection)
	if err != nil {
		log.Println("catalog coupons poll error:", err)
	} else if raw := fingerprint(coupons); !bytesEqual(raw, s.lastCoupons) {
		s.lastCoupons = raw
		s.Coupons.Publish(coupons)
	}
}

// fetchAll reads the full collection ordered most recent first.
func fetchAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := coll.Find(cctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(cctx)

	var items []T
	if err := cursor.All(cctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func fingerprint(v any) []byte {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}

func bytesEqual(a, b []byte) bool {
	return a != nil && string(a) == string(b)
}
