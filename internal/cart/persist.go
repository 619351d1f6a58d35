package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sa9r/storefront/internal/model"
)

// Storage keys, one file per key.
const (
	cartFile     = "sa9r-cart.json"
	customerFile = "sa9r-customer.json"
)

// FilePersister mirrors the cart to JSON files under a directory, the
// local-storage analogue for a single browsing session.
type FilePersister struct {
	dir string
}

func NewFilePersister(dir string) *FilePersister {
	return &FilePersister{dir: dir}
}

func (p *FilePersister) LoadCart() ([]model.CartItem, error) {
	data, err := os.ReadFile(filepath.Join(p.dir, cartFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cart mirror: %w", err)
	}
	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode cart mirror: %w", err)
	}
	return items, nil
}

func (p *FilePersister) SaveCart(items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}
	return p.save(cartFile, items)
}

func (p *FilePersister) ClearCart() error {
	err := os.Remove(filepath.Join(p.dir, cartFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove cart mirror: %w", err)
	}
	return nil
}

func (p *FilePersister) LoadCustomer() (*model.OrderCustomer, error) {
	data, err := os.ReadFile(filepath.Join(p.dir, customerFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read customer mirror: %w", err)
	}
	customer := &model.OrderCustomer{}
	if err := json.Unmarshal(data, customer); err != nil {
		return nil, fmt.Errorf("decode customer mirror: %w", err)
	}
	return customer, nil
}

func (p *FilePersister) SaveCustomer(customer model.OrderCustomer) error {
	return p.save(customerFile, customer)
}

func (p *FilePersister) save(name string, v any) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create mirror dir: %w", err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(p.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
