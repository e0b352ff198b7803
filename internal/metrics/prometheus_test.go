package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/suPer8Hu/defi-sim/internal/market"
	"github.com/suPer8Hu/defi-sim/internal/simulation"
)

func TestObservers(t *testing.T) {
	m := New()
	_ = New() // private registries must not collide

	m.ObserveSimulation(simulation.StatusFailed, simulation.ErrOutOfGas)
	m.ObserveSimulation(simulation.StatusFailed, simulation.ErrOutOfGas)
	m.ObserveSimulation(simulation.StatusSuccess, "")
	m.ObserveMarketStatus(market.CongestionHigh)
	m.ObserveRequest("GET", "/api/queries", 200, 3*time.Millisecond)

	if got := testutil.ToFloat64(m.SimulationsTotal.WithLabelValues("failed", "OUT_OF_GAS")); got != 2 {
		t.Fatalf("failed simulations: %v", got)
	}
	if got := testutil.ToFloat64(m.SimulationsTotal.WithLabelValues("success", "")); got != 1 {
		t.Fatalf("successful simulations: %v", got)
	}
	if got := testutil.ToFloat64(m.MarketStatusTotal.WithLabelValues("high")); got != 1 {
		t.Fatalf("market status: %v", got)
	}
	if got := testutil.ToFloat64(m.RequestTotal.WithLabelValues("GET", "/api/queries", "200")); got != 1 {
		t.Fatalf("requests: %v", got)
	}
}
