package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusConfirmed is the only status an order ever carries; no further
// transitions are modeled.
const OrderStatusConfirmed = "confirmed"

// CartItem is one distinct (category, name, color, size) combination with its
// own quantity. Price is kept in display form, e.g. "129.99 MAD".
type CartItem struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Color    string `json:"color"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

// Key is the composite identity of a line item. Two cart entries with the
// same key are the same line item.
func (i CartItem) Key() string {
	return i.Category + "-" + i.Name + "-" + i.Color + "-" + i.Size
}

// UnitPrice parses the stored display price, which is an amount followed by a
// space and a three-letter currency code.
func (i CartItem) UnitPrice() (decimal.Decimal, error) {
	return ParsePrice(i.Price)
}

// ParsePrice converts a display price like "129.99 MAD" to its numeric amount.
func ParsePrice(display string) (decimal.Decimal, error) {
	amount, _, found := strings.Cut(display, " ")
	if !found {
		return decimal.Zero, fmt.Errorf("price %q: missing currency suffix", display)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %w", display, err)
	}
	return d, nil
}

// OrderCustomer is the customer shape captured at order time: a composed
// display name and a free-text address.
type OrderCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// Order is an immutable snapshot taken at checkout submission.
type Order struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	City         string          `json:"city"`
	Items        []CartItem      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Date         time.Time       `json:"date"`
	Status       string          `json:"status"`
}

// Customer is the persisted customer record, keyed by email.
type Customer struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	FirstOrder time.Time `json:"firstOrder"`
	LastOrder  time.Time `json:"lastOrder"`
}

// AdminSession grants time-boxed admin access via an opaque random token.
type AdminSession struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Valid reports whether the session has not yet expired at the given instant.
func (s AdminSession) Valid(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
