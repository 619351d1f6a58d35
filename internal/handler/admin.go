package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sa9r/storefront/internal/dto"
	"github.com/sa9r/storefront/internal/middleware"
	"github.com/sa9r/storefront/internal/model"
	"github.com/sa9r/storefront/internal/service"
)

type AdminHandler struct {
	adminService *service.AdminService
	orderService *service.OrderService
}

func NewAdminHandler(adminService *service.AdminService, orderService *service.OrderService) *AdminHandler {
	return &AdminHandler{adminService: adminService, orderService: orderService}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.adminService.Login(c.Request.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrMissingPassword.Error()})
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrInvalidPassword.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AdminLoginResponse{
		Success: true,
		Token:   token,
		Message: "Login successful",
	})
}

// ListOrders returns every order, wrapped per the admin dashboard contract.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.GetOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, dto.AdminOrdersResponse{Orders: orders})
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Logout revokes the presented session. A missing or unknown token still
// answers success.
func (h *AdminHandler) Logout(c *gin.Context) {
	if err := h.adminService.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.AdminLogoutResponse{Success: true, Message: "Logout successful"})
}
