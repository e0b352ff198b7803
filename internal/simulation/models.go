package simulation

import "time"

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Simulation is one logged mock run. Rows are append-only.
type Simulation struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	QueryID           uint64    `gorm:"index;not null" json:"queryId"`
	Type              string    `gorm:"type:varchar(128);not null" json:"type"`
	Status            Status    `gorm:"type:varchar(16);index;not null" json:"status"`
	SimulatedGas      string    `gorm:"type:varchar(32)" json:"simulatedGas"`
	SimulatedSlippage string    `gorm:"type:varchar(64)" json:"simulatedSlippage"`
	ErrorMessage      *string   `gorm:"type:text" json:"errorMessage"`
	CreatedAt         time.Time `gorm:"index" json:"createdAt"`
}

func (Simulation) TableName() string { return "simulations" }

type Request struct {
	QuerySlug string
	Action    string
	Slippage  string
}

type Result struct {
	Success       bool   `json:"success"`
	TxHash        string `json:"txHash,omitempty"`
	Error         string `json:"error,omitempty"`
	GasUsed       string `json:"gasUsed"`
	SimulationLog string `json:"simulationLog"`
}

// Event is published after a run has been persisted.
type Event struct {
	SimulationID uint64    `json:"simulation_id"`
	QueryID      uint64    `json:"query_id"`
	QuerySlug    string    `json:"query_slug"`
	Action       string    `json:"action"`
	Status       Status    `json:"status"`
	GasUsed      string    `json:"gas_used"`
	Slippage     string    `json:"slippage"`
	Error        string    `json:"error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
