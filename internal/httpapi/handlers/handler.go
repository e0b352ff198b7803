package handlers

import (
	"github.com/suPer8Hu/defi-sim/internal/market"
	"github.com/suPer8Hu/defi-sim/internal/scenario"
	"github.com/suPer8Hu/defi-sim/internal/simulation"
	"go.uber.org/zap"
)

type MarketObserver interface {
	ObserveMarketStatus(c market.Congestion)
}

type Handler struct {
	Scenarios *scenario.Service
	Runner    *simulation.Runner
	Market    *market.Generator
	MarketObs MarketObserver
	Log       *zap.Logger
}

func NewHandler(scenarios *scenario.Service, runner *simulation.Runner, gen *market.Generator, obs MarketObserver, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		Scenarios: scenarios,
		Runner:    runner,
		Market:    gen,
		MarketObs: obs,
		Log:       log,
	}
}
