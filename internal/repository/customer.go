package repository

import (
	"context"
	"time"

	"github.com/sa9r/storefront/internal/model"
)

type CustomerRepository interface {
	// Upsert inserts or updates by email: an existing record keeps its
	// firstOrder and gets lastOrder = now, a new one gets both set to now.
	Upsert(ctx context.Context, customer model.OrderCustomer, now time.Time) error
	List(ctx context.Context) ([]model.Customer, error)
}

type fileCustomerRepo struct {
	col *collection[model.Customer]
}

func NewCustomerRepository(dataDir string) CustomerRepository {
	return &fileCustomerRepo{col: newCollection[model.Customer](dataDir, "customers.json")}
}

func (r *fileCustomerRepo) Upsert(ctx context.Context, customer model.OrderCustomer, now time.Time) error {
	return r.col.Update(func(customers []model.Customer) []model.Customer {
		for i := range customers {
			if customers[i].Email == customer.Email {
				customers[i].Name = customer.Name
				customers[i].Phone = customer.Phone
				customers[i].Address = customer.Address
				customers[i].City = customer.City
				customers[i].LastOrder = now
				return customers
			}
		}
		return append(customers, model.Customer{
			Name:       customer.Name,
			Email:      customer.Email,
			Phone:      customer.Phone,
			Address:    customer.Address,
			City:       customer.City,
			FirstOrder: now,
			LastOrder:  now,
		})
	})
}

func (r *fileCustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	return r.col.List()
}
