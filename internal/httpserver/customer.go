package httpserver

import (
	"net/http"
	"time"

	"storecrm/internal/domain"
	customersvc "storecrm/internal/service/customer"
	"github.com/gin-gonic/gin"
)

func (h handlers) createCustomer(c *gin.Context) {
	var in customersvc.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	created, err := h.deps.CustomerSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h handlers) listCustomers(c *gin.Context) {
	customers, err := h.deps.CustomerSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerList(customers))
}

func (h handlers) getCustomer(c *gin.Context) {
	cust, err := h.deps.CustomerSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h handlers) getCustomerByEmail(c *gin.Context) {
	cust, err := h.deps.CustomerSvc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h handlers) getCustomerByCPF(c *gin.Context) {
	cust, err := h.deps.CustomerSvc.GetByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h handlers) searchCustomersByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}
	customers, err := h.deps.CustomerSvc.SearchByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerList(customers))
}

func (h handlers) searchCustomersByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone query parameter is required"})
		return
	}
	customers, err := h.deps.CustomerSvc.SearchByPhone(c.Request.Context(), phone)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerList(customers))
}

func (h handlers) customersByPeriod(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be RFC 3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be RFC 3339"})
		return
	}
	customers, err := h.deps.CustomerSvc.ListRegisteredBetween(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerList(customers))
}

func (h handlers) countRegisteredToday(c *gin.Context) {
	n, err := h.deps.CustomerSvc.CountRegisteredToday(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h handlers) updateCustomer(c *gin.Context) {
	var patch domain.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	updated, err := h.deps.CustomerSvc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h handlers) deleteCustomer(c *gin.Context) {
	if err := h.deps.CustomerSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func customerList(customers []domain.Customer) []domain.Customer {
	if customers == nil {
		return []domain.Customer{}
	}
	return customers
}
