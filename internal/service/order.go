package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sa9r/storefront/internal/model"
	"github.com/sa9r/storefront/internal/repository"
)

var (
	ErrMissingFields = errors.New("missing required fields: items, customer, total")
	ErrOrderNotFound = errors.New("order not found")
)

type OrderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	log          *slog.Logger

	mu     sync.Mutex
	lastID int64
}

func NewOrderService(orderRepo repository.OrderRepository, customerRepo repository.CustomerRepository, log *slog.Logger) *OrderService {
	return &OrderService{orderRepo: orderRepo, customerRepo: customerRepo, log: log}
}

// CreateOrder persists an order snapshot and upserts the customer record by
// email. Only presence of the three top-level fields is validated; the total
// is trusted from the caller and not recomputed against item prices.
func (s *OrderService) CreateOrder(ctx context.Context, items []model.CartItem, customer *model.OrderCustomer, total decimal.Decimal) (string, error) {
	if len(items) == 0 || customer == nil || total.IsZero() {
		return "", ErrMissingFields
	}

	now := time.Now().UTC()
	order := &model.Order{
		ID:           s.nextID(now),
		CustomerName: customer.Name,
		Email:        customer.Email,
		Phone:        customer.Phone,
		Address:      customer.Address,
		City:         customer.City,
		Items:        items,
		Total:        total,
		Date:         now,
		Status:       model.OrderStatusConfirmed,
	}

	if err := s.orderRepo.Append(ctx, order); err != nil {
		s.log.Error("append order", "error", err)
		return "", fmt.Errorf("append order: %w", err)
	}
	if err := s.customerRepo.Upsert(ctx, *customer, now); err != nil {
		s.log.Error("upsert customer", "order_id", order.ID, "error", err)
		return "", fmt.Errorf("upsert customer: %w", err)
	}
	return order.ID, nil
}

func (s *OrderService) GetOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.log.Error("list orders", "error", err)
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("get order", "order_id", id, "error", err)
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetCustomers(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		s.log.Error("list customers", "error", err)
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// nextID returns the order id for the given creation instant: unix
// milliseconds, bumped past the previous id when two orders land in the same
// instant.
func (s *OrderService) nextID(now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms := now.UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return strconv.FormatInt(ms, 10)
}
