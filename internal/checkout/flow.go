// Package checkout drives the single-shot order submission:
// Idle -> Processing -> Confirmed or Failed. A failed submission keeps the
// cart intact and requires an explicit Reset before resubmission.
package checkout

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sa9r/storefront/internal/cart"
	"github.com/sa9r/storefront/internal/model"
)

type State int

const (
	StateIdle State = iota
	StateProcessing
	StateConfirmed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProcessing:
		return "processing"
	case StateConfirmed:
		return "confirmed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNotIdle   = errors.New("submission already in progress or finished")
)

// OrderPlacer submits an order to the backend and returns the generated id.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, items []model.CartItem, customer model.OrderCustomer, total decimal.Decimal) (string, error)
}

// Form carries the user-entered contact and address fields.
type Form struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Street     string
	City       string
	PostalCode string
}

type Flow struct {
	cart   *cart.Store
	client OrderPlacer
	log    *slog.Logger

	mu      sync.Mutex
	state   State
	orderID string
	err     error
}

func NewFlow(cartStore *cart.Store, client OrderPlacer, log *slog.Logger) *Flow {
	return &Flow{cart: cartStore, client: client, log: log, state: StateIdle}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// OrderID returns the id of the confirmed order, or "".
func (f *Flow) OrderID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orderID
}

// Err returns the surfaced failure of the last submission, or nil.
func (f *Flow) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Submit composes the customer from the form, places the order and clears the
// cart on success. On failure the cart is left untouched so the user can
// resubmit after Reset.
func (f *Flow) Submit(ctx context.Context, form Form) (string, error) {
	f.mu.Lock()
	if f.state != StateIdle {
		f.mu.Unlock()
		return "", ErrNotIdle
	}
	if f.cart.Count() == 0 {
		f.mu.Unlock()
		return "", ErrEmptyCart
	}
	f.state = StateProcessing
	f.mu.Unlock()

	customer := model.OrderCustomer{
		Name:    form.FirstName + " " + form.LastName,
		Email:   form.Email,
		Phone:   form.Phone,
		Address: form.Street + ", " + form.City + " " + form.PostalCode,
		City:    form.City,
	}
	f.cart.SetCustomer(customer)

	orderID, err := f.client.PlaceOrder(ctx, f.cart.Items(), customer, f.cart.TotalPrice())

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.log.Error("order submission failed", "error", err)
		f.state = StateFailed
		f.err = err
		return "", err
	}

	f.cart.Clear()
	f.state = StateConfirmed
	f.orderID = orderID
	f.log.Info("order confirmed", "order_id", orderID)
	return orderID, nil
}

// Reset re-arms a failed flow for explicit resubmission. Confirmed flows are
// done; they do not reset.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateFailed {
		f.state = StateIdle
		f.err = nil
	}
}
