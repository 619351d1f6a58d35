package dto

import (
	"github.com/shopspring/decimal"

	"github.com/sa9r/storefront/internal/model"
)

// --- Orders ---

// CreateOrderRequest carries the checkout submission. Presence of the three
// top-level fields is validated by the order service, not by binding tags.
type CreateOrderRequest struct {
	Items    []model.CartItem     `json:"items"`
	Customer *model.OrderCustomer `json:"customer"`
	Total    decimal.Decimal      `json:"total"`
}

type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// --- Admin ---

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

type AdminOrdersResponse struct {
	Orders []model.Order `json:"orders"`
}

type AdminStatsResponse struct {
	TotalOrders       int             `json:"totalOrders"`
	TotalCustomers    int             `json:"totalCustomers"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
}

type AdminLogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
