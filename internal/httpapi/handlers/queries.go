package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suPer8Hu/defi-sim/internal/common"
	"github.com/suPer8Hu/defi-sim/internal/httpapi/middleware"
	"github.com/suPer8Hu/defi-sim/internal/scenario"
	"go.uber.org/zap"
)

const scenarioNotFoundMessage = "Query scenario not found"

func (h *Handler) Ping(c *gin.Context) {
	common.OK(c, gin.H{"message": "pong"})
}

func (h *Handler) ListQueries(c *gin.Context) {
	qs, err := h.Scenarios.List(c.Request.Context())
	if err != nil {
		h.Log.Error("list queries failed",
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.Error(err),
		)
		common.Internal(c)
		return
	}
	if qs == nil {
		qs = []scenario.Query{}
	}
	common.OK(c, qs)
}

func (h *Handler) GetQuery(c *gin.Context) {
	slug := c.Param("slug")

	q, err := h.Scenarios.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, scenario.ErrNotFound) {
			common.Fail(c, http.StatusNotFound, scenarioNotFoundMessage)
			return
		}
		h.Log.Error("get query failed",
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.String("slug", slug),
			zap.Error(err),
		)
		common.Internal(c)
		return
	}
	common.OK(c, q)
}
