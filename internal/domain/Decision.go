package domain

// Action é a recomendação calculada para um adset
type Action string

const (
	ActionPause          Action = "PAUSE"
	ActionIncreaseBudget Action = "INCREASE_BUDGET"
	ActionReduceBudget   Action = "REDUCE_BUDGET"
	ActionOptimize       Action = "OPTIMIZE"
	ActionRestructure    Action = "RESTRUCTURE"
	ActionKeepRunning    Action = "KEEP_RUNNING"
	ActionReview         Action = "REVIEW"
)

// UnmappedPriority é a prioridade de qualquer ação fora da tabela
const UnmappedPriority = 99

// Priority retorna o rank de urgência da ação (menor = mais urgente)
func (a Action) Priority() int {
	switch a {
	case ActionPause:
		return 1
	case ActionIncreaseBudget:
		return 2
	case ActionReduceBudget:
		return 3
	case ActionOptimize:
		return 4
	case ActionRestructure:
		return 5
	case ActionKeepRunning:
		return 6
	case ActionReview:
		return 8
	default:
		return UnmappedPriority
	}
}

// CPCRate classifica o CPC de um adset em relação aos pares da mesma geo
type CPCRate string

const (
	CPCRateLow              CPCRate = "LOW"
	CPCRateStandard         CPCRate = "STANDARD"
	CPCRateHigh             CPCRate = "HIGH"
	CPCRateInsufficientData CPCRate = "INSUFFICIENT_DATA"
)

// Decision é o resultado da classificação de uma MetricRecord
type Decision struct {
	MetricRecord

	Action          Action  `json:"action"`
	Reason          string  `json:"reason"`
	Suggestion      string  `json:"suggestion"`
	BudgetChangePct int     `json:"budget_change_pct"`
	Priority        int     `json:"priority"`
	CPCRate         CPCRate `json:"cpc_rate,omitempty"`
	Status          string  `json:"status,omitempty"`
}
