package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sa9r/storefront/internal/catalog"
)

// ProductHandler serves the static catalog read-only.
type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

func (h *ProductHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.All())
}

func (h *ProductHandler) ListByCategory(c *gin.Context) {
	products := catalog.ByCategory(c.Param("category"))
	if products == nil {
		products = []catalog.Product{}
	}
	c.JSON(http.StatusOK, products)
}
