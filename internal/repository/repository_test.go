package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sa9r/storefront/internal/model"
)

func TestOrderRepo_AppendAndGet(t *testing.T) {
	dir := t.TempDir()
	repo := NewOrderRepository(dir)
	ctx := context.Background()

	order := &model.Order{
		ID: "1735000000000", CustomerName: "John Doe", Email: "john@example.com",
		Items: []model.CartItem{{ID: "tshirts-SA9R 1er-Black-M", Name: "SA9R 1er", Price: "129.99 MAD", Quantity: 2}},
		Total: decimal.RequireFromString("259.98"), Date: time.Now().UTC(),
		Status: model.OrderStatusConfirmed,
	}
	require.NoError(t, repo.Append(ctx, order))

	found, err := repo.GetByID(ctx, "1735000000000")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, order.Items, found.Items)
	assert.True(t, order.Total.Equal(found.Total))

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOrderRepo_MissingFileIsEmpty(t *testing.T) {
	repo := NewOrderRepository(t.TempDir())
	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepo_ListKeepsAppendOrder(t *testing.T) {
	repo := NewOrderRepository(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, repo.Append(ctx, &model.Order{ID: id, Total: decimal.NewFromInt(1)}))
	}

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "1", orders[0].ID)
	assert.Equal(t, "3", orders[2].ID)
}

func TestOrderRepo_CorruptFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.json"), []byte("{oops"), 0o644))

	repo := NewOrderRepository(dir)
	_, err := repo.List(context.Background())
	assert.Error(t, err)
}

func TestCustomerRepo_UpsertInserts(t *testing.T) {
	repo := NewCustomerRepository(t.TempDir())
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, repo.Upsert(ctx, model.OrderCustomer{
		Name: "John Doe", Email: "john@example.com", Phone: "0600000000",
		Address: "12 Rue Atlas, Casablanca 20000", City: "Casablanca",
	}, now))

	customers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, now, customers[0].FirstOrder.UTC())
	assert.Equal(t, now, customers[0].LastOrder.UTC())
}

func TestCustomerRepo_UpsertUpdatesByEmail(t *testing.T) {
	repo := NewCustomerRepository(t.TempDir())
	ctx := context.Background()
	first := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	second := first.Add(time.Hour)

	require.NoError(t, repo.Upsert(ctx, model.OrderCustomer{Name: "John Doe", Email: "john@example.com"}, first))
	require.NoError(t, repo.Upsert(ctx, model.OrderCustomer{Name: "Johnny Doe", Email: "john@example.com", City: "Rabat"}, second))

	customers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Johnny Doe", customers[0].Name)
	assert.Equal(t, "Rabat", customers[0].City)
	assert.Equal(t, first, customers[0].FirstOrder.UTC())
	assert.Equal(t, second, customers[0].LastOrder.UTC())
}

func TestSessionRepo_AppendGetDelete(t *testing.T) {
	repo := NewSessionRepository(t.TempDir())
	ctx := context.Background()
	now := time.Now().UTC()

	session := model.AdminSession{Token: "abc123", CreatedAt: now, ExpiresAt: now.Add(24 * time.Hour)}
	require.NoError(t, repo.Append(ctx, session))

	found, err := repo.GetByToken(ctx, "abc123")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "abc123", found.Token)

	require.NoError(t, repo.DeleteByToken(ctx, "abc123"))
	found, err = repo.GetByToken(ctx, "abc123")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRepo_DeleteUnknownIsNoop(t *testing.T) {
	repo := NewSessionRepository(t.TempDir())
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, model.AdminSession{Token: "keep"}))
	require.NoError(t, repo.DeleteByToken(ctx, "nope"))

	found, err := repo.GetByToken(ctx, "keep")
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestCollection_FileCreatedOnFirstWrite(t *testing.T) {
	dir := t.TempDir()
	repo := NewSessionRepository(dir)

	_, err := os.Stat(filepath.Join(dir, "admin-sessions.json"))
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, repo.Append(context.Background(), model.AdminSession{Token: "t"}))
	_, err = os.Stat(filepath.Join(dir, "admin-sessions.json"))
	assert.NoError(t, err)
}
