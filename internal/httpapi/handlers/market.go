package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/suPer8Hu/defi-sim/internal/common"
)

func (h *Handler) MarketStatus(c *gin.Context) {
	st := h.Market.Status()
	if h.MarketObs != nil {
		h.MarketObs.ObserveMarketStatus(st.Congestion)
	}
	common.OK(c, st)
}
