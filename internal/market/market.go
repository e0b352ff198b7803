// Package market produces the synthetic network status shown on the
// dashboard. Nothing here talks to a chain.
package market

import (
	"fmt"
	"time"

	"github.com/suPer8Hu/defi-sim/internal/random"
)

type Congestion string

const (
	CongestionLow    Congestion = "low"
	CongestionMedium Congestion = "medium"
	CongestionHigh   Congestion = "high"
)

const (
	minBaseFeeGwei  = 10
	baseFeeSpanGwei = 20

	minEthPrice  = 2800.0
	ethPriceSpan = 100.0

	genesisBlock = 19283700
	slotMillis   = 12000
)

type Status struct {
	GasPrice    string     `json:"gasPrice"`
	EthPrice    string     `json:"ethPrice"`
	Congestion  Congestion `json:"congestion"`
	BlockNumber int64      `json:"blockNumber"`
}

type Generator struct {
	rand random.Source
	now  func() time.Time
}

func NewGenerator(src random.Source, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{rand: src, now: now}
}

// Status draws a fresh base fee and ETH price on every call.
func (g *Generator) Status() Status {
	fee := minBaseFeeGwei + g.rand.IntN(baseFeeSpanGwei)
	eth := minEthPrice + g.rand.Float64()*ethPriceSpan
	return Status{
		GasPrice:    fmt.Sprintf("%d gwei", fee),
		EthPrice:    fmt.Sprintf("$%.2f", eth),
		Congestion:  Classify(fee),
		BlockNumber: BlockNumberAt(g.now()),
	}
}

// Classify maps a base fee in gwei to a congestion tier.
func Classify(baseFeeGwei int) Congestion {
	switch {
	case baseFeeGwei > 25:
		return CongestionHigh
	case baseFeeGwei > 15:
		return CongestionMedium
	default:
		return CongestionLow
	}
}

// BlockNumberAt derives a pseudo block height from wall-clock time in 12s slots.
func BlockNumberAt(t time.Time) int64 {
	return genesisBlock + t.UnixMilli()/slotMillis
}
