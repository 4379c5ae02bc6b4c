package httpserver

import (
	"net/http"
	"strconv"

	"storecrm/internal/domain"
	productsvc "storecrm/internal/service/product"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h handlers) createProduct(c *gin.Context) {
	var in productsvc.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	created, err := h.deps.ProductSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h handlers) listProducts(c *gin.Context) {
	products, err := h.deps.ProductSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productList(products))
}

func (h handlers) getProduct(c *gin.Context) {
	p, err := h.deps.ProductSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h handlers) searchProductsByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}
	products, err := h.deps.ProductSvc.SearchByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productList(products))
}

func (h handlers) productsByCategory(c *gin.Context) {
	products, err := h.deps.ProductSvc.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productList(products))
}

func (h handlers) listLowStockProducts(c *gin.Context) {
	products, err := h.deps.ProductSvc.ListLowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productList(products))
}

func (h handlers) productsByPriceRange(c *gin.Context) {
	min, err := decimal.NewFromString(c.Query("min"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min must be a decimal number"})
		return
	}
	max, err := decimal.NewFromString(c.Query("max"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "max must be a decimal number"})
		return
	}
	products, err := h.deps.ProductSvc.ListByPriceRange(c.Request.Context(), min, max)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productList(products))
}

func (h handlers) updateProduct(c *gin.Context) {
	var patch domain.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	updated, err := h.deps.ProductSvc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h handlers) setProductStock(c *gin.Context) {
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be an integer"})
		return
	}
	updated, err := h.deps.ProductSvc.SetStock(c.Request.Context(), c.Param("id"), quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h handlers) deleteProduct(c *gin.Context) {
	if err := h.deps.ProductSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func productList(products []domain.Product) []domain.Product {
	if products == nil {
		return []domain.Product{}
	}
	return products
}
