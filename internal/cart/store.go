// Package cart holds the browsing-session cart: an ordered list of line
// items keyed by their composite identity, mirrored to durable local storage
// through an injected persistence adapter.
package cart

import (
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sa9r/storefront/internal/model"
)

// Persister is the side-effecting adapter behind the store. The cart and the
// customer record are mirrored independently.
type Persister interface {
	LoadCart() ([]model.CartItem, error)
	SaveCart(items []model.CartItem) error
	ClearCart() error
	LoadCustomer() (*model.OrderCustomer, error)
	SaveCustomer(customer model.OrderCustomer) error
}

type Store struct {
	mu       sync.Mutex
	items    []model.CartItem
	customer *model.OrderCustomer
	persist  Persister
	log      *slog.Logger
}

// NewStore rehydrates the cart from the persister. Malformed or unreadable
// persisted state is discarded and logged, never fatal.
func NewStore(persist Persister, log *slog.Logger) *Store {
	s := &Store{persist: persist, log: log}

	items, err := persist.LoadCart()
	if err != nil {
		log.Warn("discarding persisted cart", "error", err)
	} else {
		s.items = items
	}

	customer, err := persist.LoadCustomer()
	if err != nil {
		log.Warn("discarding persisted customer", "error", err)
	} else {
		s.customer = customer
	}
	return s
}

// Add merges the item into the cart by its composite key: an existing line
// item has its quantity incremented by item.Quantity, otherwise the item is
// appended. Inputs are assumed pre-validated by the caller.
func (s *Store) Add(item model.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = item.Key()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity += item.Quantity
			s.mirror()
			return
		}
	}
	s.items = append(s.items, item)
	s.mirror()
}

// Remove deletes the line item with the given key; no-op when absent.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.remove(id)
	s.mirror()
}

// UpdateQuantity replaces the item's quantity. A quantity of zero or below
// removes the item.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(id)
		s.mirror()
		return
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.mirror()
}

// Clear empties the cart and purges its persisted mirror.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.persist.ClearCart(); err != nil {
		s.log.Warn("clear persisted cart", "error", err)
	}
}

// TotalPrice sums unit price times quantity across the cart. Line items whose
// display price does not parse are skipped and logged.
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		price, err := item.UnitPrice()
		if err != nil {
			s.log.Warn("skipping unparseable price", "item", item.ID, "error", err)
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Count is the sum of quantities across line items.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Items returns a snapshot copy of the line items.
func (s *Store) Items() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) SetCustomer(customer model.OrderCustomer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customer = &customer
	if err := s.persist.SaveCustomer(customer); err != nil {
		s.log.Warn("persist customer", "error", err)
	}
}

// Customer returns the saved customer record, or nil when none was set.
func (s *Store) Customer() *model.OrderCustomer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.customer == nil {
		return nil
	}
	c := *s.customer
	return &c
}

// remove and mirror expect s.mu held.
func (s *Store) remove(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Store) mirror() {
	if err := s.persist.SaveCart(s.items); err != nil {
		s.log.Warn("persist cart", "error", err)
	}
}
