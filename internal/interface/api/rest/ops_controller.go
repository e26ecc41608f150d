package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewOpsController(r *gin.Engine) {
	r.GET(RouteHealth, HealthHandler)
	r.GET(RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
