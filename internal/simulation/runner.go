package simulation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/suPer8Hu/defi-sim/internal/random"
	"github.com/suPer8Hu/defi-sim/internal/scenario"
	"go.uber.org/zap"
)

var ErrInvalidRequest = errors.New("invalid simulation request")

const (
	ErrInsufficientOutput = "INSUFFICIENT_OUTPUT_AMOUNT"
	ErrOutOfGas           = "OUT_OF_GAS"
	ErrExecutionReverted  = "EXECUTION_REVERTED"

	DefaultSlippage = "0.5%"

	failureRate = 0.3
	minGas      = 21000
	gasSpan     = 150000
	txHashBytes = 32
)

const hexDigits = "0123456789abcdef"

type ScenarioLookup interface {
	GetBySlug(ctx context.Context, slug string) (*scenario.Query, error)
}

type EventPublisher interface {
	PublishSimulation(ctx context.Context, ev Event) error
}

// Recorder receives one observation per persisted run.
type Recorder interface {
	ObserveSimulation(status Status, errorCode string)
}

type Runner struct {
	repo      *Repo
	scenarios ScenarioLookup
	rand      random.Source
	publisher EventPublisher
	recorder  Recorder
	log       *zap.Logger
}

// NewRunner builds a Runner. publisher and recorder are optional.
func NewRunner(repo *Repo, scenarios ScenarioLookup, src random.Source, publisher EventPublisher, recorder Recorder, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		repo:      repo,
		scenarios: scenarios,
		rand:      src,
		publisher: publisher,
		recorder:  recorder,
		log:       log,
	}
}

// Run draws a fake outcome for req, appends it to the simulation log and
// returns it. Unknown slugs yield scenario.ErrNotFound and persist nothing.
func (r *Runner) Run(ctx context.Context, req Request) (*Result, error) {
	req.QuerySlug = strings.TrimSpace(req.QuerySlug)
	req.Action = strings.TrimSpace(req.Action)
	if req.QuerySlug == "" || req.Action == "" {
		return nil, fmt.Errorf("%w: querySlug and action are required", ErrInvalidRequest)
	}

	q, err := r.scenarios.GetBySlug(ctx, req.QuerySlug)
	if err != nil {
		return nil, err
	}

	success := r.rand.Float64() > failureRate
	gasUsed := minGas + r.rand.IntN(gasSpan)
	gas := strconv.Itoa(gasUsed)

	res := &Result{
		Success: success,
		GasUsed: gas,
	}
	if success {
		res.TxHash = r.txHash()
	} else {
		res.Error = ErrorCategory(req.QuerySlug)
	}
	res.SimulationLog = simulationLog(req.Action, req.QuerySlug, gas, success)

	slippage := req.Slippage
	if slippage == "" {
		slippage = DefaultSlippage
	}

	row := &Simulation{
		QueryID:           q.ID,
		Type:              req.Action,
		Status:            StatusSuccess,
		SimulatedGas:      gas,
		SimulatedSlippage: slippage,
	}
	if !success {
		row.Status = StatusFailed
		msg := res.Error
		row.ErrorMessage = &msg
	}
	if err := r.repo.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("persist simulation: %w", err)
	}

	if r.recorder != nil {
		r.recorder.ObserveSimulation(row.Status, res.Error)
	}
	r.publish(ctx, q, row, res.Error)

	return res, nil
}

// ListRuns returns the simulation history ordered by creation time.
func (r *Runner) ListRuns(ctx context.Context) ([]Simulation, error) {
	return r.repo.List(ctx)
}

func (r *Runner) publish(ctx context.Context, q *scenario.Query, row *Simulation, errCode string) {
	if r.publisher == nil {
		return
	}
	ev := Event{
		SimulationID: row.ID,
		QueryID:      q.ID,
		QuerySlug:    q.Slug,
		Action:       row.Type,
		Status:       row.Status,
		GasUsed:      row.SimulatedGas,
		Slippage:     row.SimulatedSlippage,
		Error:        errCode,
		CreatedAt:    row.CreatedAt,
	}
	// the row is already committed; a lost event is only logged
	if err := r.publisher.PublishSimulation(ctx, ev); err != nil {
		r.log.Warn("publish simulation event failed",
			zap.Uint64("simulation_id", row.ID),
			zap.String("query_slug", q.Slug),
			zap.Error(err),
		)
	}
}

// ErrorCategory picks the failure reason for a slug: first "slippage", then
// "gas", else a generic revert.
func ErrorCategory(slug string) string {
	switch {
	case strings.Contains(slug, "slippage"):
		return ErrInsufficientOutput
	case strings.Contains(slug, "gas"):
		return ErrOutOfGas
	default:
		return ErrExecutionReverted
	}
}

func (r *Runner) txHash() string {
	var b strings.Builder
	b.Grow(2 + txHashBytes*2)
	b.WriteString("0x")
	for i := 0; i < txHashBytes*2; i++ {
		b.WriteByte(hexDigits[r.rand.IntN(16)])
	}
	return b.String()
}

func simulationLog(action, slug, gas string, success bool) string {
	outcome := "Revert"
	if success {
		outcome = "Success"
	}
	return fmt.Sprintf("Simulating %s for %s... \nChecking liquidity... OK\nEstimating Gas... %s\nResult: %s",
		action, slug, gas, outcome)
}
