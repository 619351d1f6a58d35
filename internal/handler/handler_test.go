package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sa9r/storefront/internal/dto"
	"github.com/sa9r/storefront/internal/middleware"
	"github.com/sa9r/storefront/internal/model"
	"github.com/sa9r/storefront/internal/repository"
	"github.com/sa9r/storefront/internal/service"
)

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	orderRepo := repository.NewOrderRepository(dir)
	customerRepo := repository.NewCustomerRepository(dir)
	sessionRepo := repository.NewSessionRepository(dir)

	orderSvc := service.NewOrderService(orderRepo, customerRepo, log)
	adminSvc := service.NewAdminService(sessionRepo, orderRepo, "sa9r2025", "", 24*time.Hour, log)

	orderH := NewOrderHandler(orderSvc)
	adminH := NewAdminHandler(adminSvc, orderSvc)
	productH := NewProductHandler()
	healthH := NewHealthHandler(dir)

	router := gin.New()
	router.Use(middleware.RequestID())
	api := router.Group("/api")
	api.GET("/ping", healthH.Ping)
	api.GET("/products", productH.List)
	api.GET("/products/:category", productH.ListByCategory)
	api.POST("/orders", orderH.CreateOrder)
	api.GET("/orders", orderH.ListOrders)
	api.GET("/orders/:id", orderH.GetOrder)
	api.GET("/customers", orderH.ListCustomers)

	admin := api.Group("/admin")
	admin.POST("/login", adminH.Login)
	admin.POST("/logout", adminH.Logout)
	guarded := admin.Group("", middleware.AdminAuth(adminSvc))
	guarded.GET("/orders", adminH.ListOrders)
	guarded.GET("/stats", adminH.Stats)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func orderPayload() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Items: []model.CartItem{
			{ID: "tshirts-SA9R 1er-Black-M", Category: "tshirts", Name: "SA9R 1er", Price: "129.99 MAD", Color: "Black", Size: "M", Quantity: 2},
			{ID: "hoodies-SA9R VYRA Hoodie-Black-L", Category: "hoodies", Name: "SA9R VYRA Hoodie", Price: "179.99 MAD", Color: "Black", Size: "L", Quantity: 1},
		},
		Customer: &model.OrderCustomer{
			Name: "John Doe", Email: "john@example.com", Phone: "0600000000",
			Address: "12 Rue Atlas, Casablanca 20000", City: "Casablanca",
		},
		Total: mustDecimal("439.97"),
	}
}

func login(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/admin/login", dto.AdminLoginRequest{Password: "sa9r2025"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AdminLoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestCreateOrder_AndGetByID(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/orders", orderPayload(), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created dto.CreateOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	require.NotEmpty(t, created.OrderID)

	w = doJSON(t, router, http.MethodGet, "/api/orders/"+created.OrderID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var order model.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, orderPayload().Items, order.Items)
	assert.Equal(t, model.OrderStatusConfirmed, order.Status)
}

func TestCreateOrder_MissingCustomer(t *testing.T) {
	router := newTestRouter(t)

	payload := orderPayload()
	payload.Customer = nil
	w := doJSON(t, router, http.MethodPost, "/api/orders", payload, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/orders", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String(), "nothing written on validation failure")
}

func TestGetOrder_NotFound(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/orders/12345", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCustomers_UpsertedOnOrder(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/orders", orderPayload(), "").Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/orders", orderPayload(), "").Code)

	w := doJSON(t, router, http.MethodGet, "/api/customers", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var customers []model.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customers))
	require.Len(t, customers, 1)
	assert.Equal(t, "john@example.com", customers[0].Email)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/admin/login", dto.AdminLoginRequest{Password: "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLogin_MissingPassword(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/admin/login", dto.AdminLoginRequest{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminOrders_RequiresToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/admin/orders", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/admin/orders", nil, "bogus")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOrders_WithToken(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/orders", orderPayload(), "").Code)

	token := login(t, router)
	w := doJSON(t, router, http.MethodGet, "/api/admin/orders", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.AdminOrdersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Orders, 1)
}

func TestAdminStats(t *testing.T) {
	router := newTestRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/api/orders", orderPayload(), "").Code)

	token := login(t, router)
	w := doJSON(t, router, http.MethodGet, "/api/admin/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stats dto.AdminStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, 1, stats.TotalCustomers)
	assert.True(t, stats.TotalRevenue.Equal(mustDecimal("439.97")))
	assert.True(t, stats.AverageOrderValue.Equal(mustDecimal("439.97")))
}

func TestAdminStats_EmptyCollection(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/admin/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stats dto.AdminStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Zero(t, stats.TotalOrders)
	assert.True(t, stats.AverageOrderValue.IsZero())
}

func TestAdminLogout_RevokesToken(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/admin/logout", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/admin/stats", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLogout_WithoutToken(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/admin/logout", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProducts(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var all []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 6)

	w = doJSON(t, router, http.MethodGet, "/api/products/hoodies", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var hoodies []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hoodies))
	assert.Len(t, hoodies, 3)

	w = doJSON(t, router, http.MethodGet, "/api/products/socks", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestPing(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/ping", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"ping"}`, w.Body.String())
}
