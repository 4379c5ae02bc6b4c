package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h handlers) statsDashboard(c *gin.Context) {
	report, err := h.deps.StatsSvc.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h handlers) statsSummary(c *gin.Context) {
	report, err := h.deps.StatsSvc.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
