package domain

// Summary consolida os totais de um lote inteiro de decisões
type Summary struct {
	TotalAdset            int            `json:"total_adset"`
	TotalCost             float64        `json:"total_cost"`
	TotalRevenue          float64        `json:"total_revenue"`
	TotalProfit           float64        `json:"total_profit"`
	TotalClicks           int64          `json:"total_clicks"`
	TotalConversions      int64          `json:"total_conversions"`
	AverageROI            float64        `json:"average_roi"`
	AverageConversionRate float64        `json:"average_conversion_rate"`
	TotalROI              float64        `json:"total_roi"`
	PriorityDistribution  map[string]int `json:"priority_distribution"`
}

// BatchResult é a saída completa do pipeline para um lote
type BatchResult struct {
	RunID        string     `json:"run_id,omitempty"`
	Cycle        int        `json:"cycle"`
	RulesVersion string     `json:"rules_version"`
	Decisions    []Decision `json:"decisions"`
	Groups       []Group    `json:"groups"`
	Summary      Summary    `json:"summary"`
}
