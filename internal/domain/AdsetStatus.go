package domain

import "time"

// Status de um adset exposto na API
const (
	AdsetStatusActive  = "active"
	AdsetStatusPaused  = "paused"
	AdsetStatusUnknown = "unknown"
)

// Status retornado pela API externa de adsets
const (
	ExternalStatusActive = "ACTIVE"
	ExternalStatusPaused = "PAUSED"
)

type AdsetStatus struct {
	AdsetID   string    `json:"adset_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Label converte o flag is_active no status exibido
func (s *AdsetStatus) Label() string {
	if s == nil {
		return AdsetStatusUnknown
	}
	if s.IsActive {
		return AdsetStatusActive
	}
	return AdsetStatusPaused
}

type UpdateAdsetStatusRequest struct {
	AdsetID  string `json:"adset_id"`
	IsActive *bool  `json:"is_active"`
}

// DecisionEntry é uma decisão persistida no histórico
type DecisionEntry struct {
	ID              int64     `json:"id"`
	RunID           string    `json:"run_id"`
	Cycle           int       `json:"cycle"`
	AdsetID         string    `json:"adset_id"`
	SourceKey       string    `json:"source_key"`
	SubSourceKey    string    `json:"sub_source_key"`
	Day             string    `json:"day"`
	Action          Action    `json:"action"`
	Reason          string    `json:"reason"`
	Suggestion      string    `json:"suggestion"`
	BudgetChangePct int       `json:"budget_change_pct"`
	Priority        int       `json:"priority"`
	CPCRate         CPCRate   `json:"cpc_rate"`
	Cost            float64   `json:"cost"`
	ROI             float64   `json:"roi"`
	Cluster         int       `json:"cluster"`
	CreatedAt       time.Time `json:"created_at"`
}
