package repository

import (
	"context"

	"github.com/sa9r/storefront/internal/model"
)

type OrderRepository interface {
	Append(ctx context.Context, order *model.Order) error
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
}

type fileOrderRepo struct {
	col *collection[model.Order]
}

// NewOrderRepository stores orders in orders.json under dataDir, created on
// first write.
func NewOrderRepository(dataDir string) OrderRepository {
	return &fileOrderRepo{col: newCollection[model.Order](dataDir, "orders.json")}
}

func (r *fileOrderRepo) Append(ctx context.Context, order *model.Order) error {
	return r.col.Update(func(orders []model.Order) []model.Order {
		return append(orders, *order)
	})
}

func (r *fileOrderRepo) List(ctx context.Context) ([]model.Order, error) {
	return r.col.List()
}

func (r *fileOrderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	orders, err := r.col.List()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}
