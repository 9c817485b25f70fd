package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"storefront-demo/internal/domains/cart/domain"
	"storefront-demo/internal/domains/cart/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository keeps one cart per session in memory. Carts live only for the
// session's lifetime; PurgeIdle reaps sessions that stopped interacting.
type Repository struct {
	mu    sync.RWMutex
	carts map[string]*entry
	now   func() time.Time
}

type entry struct {
	cart    *domain.Cart
	touched time.Time
}

func NewRepository() *Repository {
	return &Repository{carts: map[string]*entry{}, now: time.Now}
}

// Load returns a clone of the session's cart, creating an empty one for
// sessions seen for the first time.
func (r *Repository) Load(_ context.Context, sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, errors.New("session id is empty")
	}
	r.mu.RLock()
	e, ok := r.carts[sessionID]
	r.mu.RUnlock()
	if !ok {
		return domain.NewCart(), nil
	}
	return e.cart.Clone(), nil
}

// Save stores a clone of the cart and stamps the session as touched.
func (r *Repository) Save(_ context.Context, sessionID string, cart *domain.Cart) error {
	if sessionID == "" {
		return errors.New("session id is empty")
	}
	if cart == nil {
		return errors.New("cart is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[sessionID] = &entry{cart: cart.Clone(), touched: r.now()}
	return nil
}

// Delete drops the session's cart.
func (r *Repository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
	return nil
}

// PurgeIdle removes carts untouched since the cutoff.
func (r *Repository) PurgeIdle(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	purged := 0
	for sessionID, e := range r.carts {
		if e.touched.Before(cutoff) {
			delete(r.carts, sessionID)
			purged++
		}
	}
	return purged, nil
}
