package services

import (
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/models"
)

// CartListener receives the cart state produced by a mutation.
type CartListener func(snapshot models.CartSnapshot)

type subscription struct {
	id       uint64
	listener CartListener
}

// CartStore owns the shopping cart. Every mutating call notifies all
// subscribers with the post-mutation snapshot before it returns.
//
// Listeners run synchronously on the mutating goroutine, in registration
// order. They may read from the store but must not mutate it.
type CartStore struct {
	dispatch sync.Mutex // orders mutation+notification across goroutines

	mu        sync.RWMutex
	items     []models.CartItem
	version   uint64
	subs      []subscription
	nextSubID uint64

	logger *zap.Logger
}

func NewCartStore(logger *zap.Logger) *CartStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartStore{
		items:  []models.CartItem{},
		logger: logger.Named("cart"),
	}
}

// AddItem increments the quantity of an existing entry or appends a new
// entry with quantity 1. The product is copied, not referenced.
func (s *CartStore) AddItem(product models.Product) {
	s.mutate(func() {
		if i := s.indexOf(product.ID); i >= 0 {
			s.items[i].Quantity++
			return
		}
		s.items = append(s.items, models.CartItem{Product: product.Clone(), Quantity: 1})
	})
	s.logger.Debug("item added", zap.String("product_id", product.ID))
}

// UpdateQuantity sets the quantity of productID. A quantity of zero or less
// removes the entry. Unknown ids are ignored.
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	s.mutate(func() {
		i := s.indexOf(productID)
		if i < 0 {
			return
		}
		if quantity <= 0 {
			s.removeAt(i)
			return
		}
		s.items[i].Quantity = quantity
	})
	s.logger.Debug("quantity updated", zap.String("product_id", productID), zap.Int("quantity", quantity))
}

// RemoveItem deletes the entry for productID if present.
func (s *CartStore) RemoveItem(productID string) {
	s.mutate(func() {
		if i := s.indexOf(productID); i >= 0 {
			s.removeAt(i)
		}
	})
	s.logger.Debug("item removed", zap.String("product_id", productID))
}

func (s *CartStore) ClearCart() {
	s.mutate(func() {
		s.items = []models.CartItem{}
	})
	s.logger.Debug("cart cleared")
}

func (s *CartStore) Items() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyItems()
}

// TotalItems is the sum of quantities, not the number of entries.
func (s *CartStore) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totalItems(s.items)
}

func (s *CartStore) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totalPrice(s.items)
}

func (s *CartStore) GetState() models.CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Subscribe registers listener for every future mutation. The returned
// function unregisters it; calling it more than once is harmless.
func (s *CartStore) Subscribe(listener CartListener) (unsubscribe func()) {
	s.mu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subs = append(s.subs, subscription{id: id, listener: listener})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *CartStore) SubscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

func (s *CartStore) mutate(apply func()) {
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	s.mu.Lock()
	apply()
	s.version++
	snap := s.snapshot()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		if !s.subscribed(sub.id) {
			continue
		}
		sub.listener(snap)
	}
}

// subscribed reports whether id is still registered, so a listener removed
// by an earlier listener in the same dispatch is skipped.
func (s *CartStore) subscribed(id uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sub := range s.subs {
		if sub.id == id {
			return true
		}
	}
	return false
}

func (s *CartStore) indexOf(productID string) int {
	for i := range s.items {
		if s.items[i].ID == productID {
			return i
		}
	}
	return -1
}

func (s *CartStore) removeAt(i int) {
	s.items = append(s.items[:i:i], s.items[i+1:]...)
}

func (s *CartStore) snapshot() models.CartSnapshot {
	return models.CartSnapshot{
		Items:      s.copyItems(),
		TotalItems: totalItems(s.items),
		TotalPrice: totalPrice(s.items),
		Version:    s.version,
	}
}

func (s *CartStore) copyItems() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	for i, item := range s.items {
		out[i] = models.CartItem{Product: item.Product.Clone(), Quantity: item.Quantity}
	}
	return out
}

func totalItems(items []models.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

func totalPrice(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
