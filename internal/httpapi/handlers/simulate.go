package handlers

import (
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/suPer8Hu/defi-sim/internal/common"
	"github.com/suPer8Hu/defi-sim/internal/httpapi/middleware"
	"github.com/suPer8Hu/defi-sim/internal/scenario"
	"github.com/suPer8Hu/defi-sim/internal/simulation"
	"go.uber.org/zap"
)

type simulateReq struct {
	QuerySlug string `json:"querySlug" binding:"required"`
	Action    string `json:"action" binding:"required"`
	// free text, stored as given
	Slippage string `json:"slippage"`
}

func (h *Handler) Simulate(c *gin.Context) {
	var req simulateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			common.FailField(c, http.StatusBadRequest, "missing required field", jsonName(ve[0].Field()))
			return
		}
		common.Fail(c, http.StatusBadRequest, "invalid json")
		return
	}

	res, err := h.Runner.Run(c.Request.Context(), simulation.Request{
		QuerySlug: req.QuerySlug,
		Action:    req.Action,
		Slippage:  req.Slippage,
	})
	if err != nil {
		switch {
		case errors.Is(err, scenario.ErrNotFound):
			common.Fail(c, http.StatusNotFound, scenarioNotFoundMessage)
		case errors.Is(err, simulation.ErrInvalidRequest):
			common.Fail(c, http.StatusBadRequest, "querySlug and action are required")
		default:
			h.Log.Error("simulate failed",
				zap.String("request_id", middleware.RequestIDFrom(c)),
				zap.String("query_slug", req.QuerySlug),
				zap.String("action", req.Action),
				zap.Error(err),
			)
			common.Internal(c)
		}
		return
	}
	common.OK(c, res)
}

func (h *Handler) ListSimulations(c *gin.Context) {
	runs, err := h.Runner.ListRuns(c.Request.Context())
	if err != nil {
		h.Log.Error("list simulations failed",
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.Error(err),
		)
		common.Internal(c)
		return
	}
	if runs == nil {
		runs = []simulation.Simulation{}
	}
	common.OK(c, runs)
}

// jsonName lower-cases the first rune of a Go field name: QuerySlug -> querySlug.
func jsonName(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError {
		return field
	}
	return string(unicode.ToLower(r)) + field[size:]
}
