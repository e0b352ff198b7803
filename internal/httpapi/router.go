package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suPer8Hu/defi-sim/internal/common"
	"github.com/suPer8Hu/defi-sim/internal/httpapi/handlers"
	"github.com/suPer8Hu/defi-sim/internal/httpapi/middleware"
	"github.com/suPer8Hu/defi-sim/internal/metrics"
	"go.uber.org/zap"
)

func NewRouter(h *handlers.Handler, m *metrics.Metrics, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.Recovery(log))

	r.NoRoute(func(c *gin.Context) {
		common.Fail(c, http.StatusNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		common.Fail(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.GET("/ping", h.Ping)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	api := r.Group("/api")
	api.GET("/queries", h.ListQueries)
	api.GET("/queries/:slug", h.GetQuery)
	api.GET("/market-status", h.MarketStatus)
	api.POST("/simulate", h.Simulate)
	api.GET("/simulations", h.ListSimulations)
	return r
}
