package cart

import (
	"context"
	"log"

	"domz/models"
)

// Events receives presentation signals the cart itself does not own.
// CartOpened fires after an add so the storefront can reveal the drawer.
type Events interface {
	CartOpened(ctx context.Context, sessionID, productID string)
}

// NoopEvents ignores every signal.
type NoopEvents struct{}

func (NoopEvents) CartOpened(context.Context, string, string) {}

// Service owns all cart mutation for the storefront. Every operation
// loads the session's cart, applies one change, and persists the full
// aggregate before returning it. Persistence failures are logged and
// swallowed; the visitor keeps a working in-memory cart either way.
type Service struct {
	store  Store
	events Events
}

func NewService(store Store, events Events) *Service {
	if events == nil {
		events = NoopEvents{}
	}
	return &Service{store: store, events: events}
}

// Get returns the session's cart, empty when nothing usable is stored.
func (s *Service) Get(ctx context.Context, sessionID string) models.Cart {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		log.Println("cart load error, starting empty:", err)
		return models.Cart{}
	}
	return c
}

// Add increments the product's line, or appends a new line with
// quantity 1 that snapshots the product's current name, price and
// image. The snapshot is never re-synced from the catalog.
func (s *Service) Add(ctx context.Context, sessionID string, p models.Product) models.Cart {
	c := s.Get(ctx, sessionID)

	found := false
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ProductID {
			c.Lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		c.Lines = append(c.Lines, models.CartLine{
			ProductID: p.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Quantity:  1,
		})
	}

	s.persist(ctx, sessionID, c)
	s.events.CartOpened(ctx, sessionID, p.ProductID)
	return c
}

// UpdateQuantity applies delta to the named line, clamping the result
// at 1. Lines never leave the cart through this operation; Remove is
// the only way out.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) models.Cart {
	c := s.Get(ctx, sessionID)

	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			q := c.Lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.Lines[i].Quantity = q
			break
		}
	}

	s.persist(ctx, sessionID, c)
	return c
}

// Remove drops the line regardless of quantity. Unknown ids are a no-op.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) models.Cart {
	c := s.Get(ctx, sessionID)

	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	c.Lines = kept

	s.persist(ctx, sessionID, c)
	return c
}

// Clear empties the cart and persists the empty state.
func (s *Service) Clear(ctx context.Context, sessionID string) models.Cart {
	c := models.Cart{}
	s.persist(ctx, sessionID, c)
	return c
}

func (s *Service) persist(ctx context.Context, sessionID string, c models.Cart) {
	if err := s.store.Save(ctx, sessionID, c); err != nil {
		log.Println("cart save error:", err)
	}
}
