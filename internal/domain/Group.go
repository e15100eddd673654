package domain

// GroupKey identifica a campanha de um grupo por (source_key, sub_source_key)
type GroupKey struct {
	SourceKey    string `json:"source_key"`
	SubSourceKey string `json:"sub_source_key"`
}

// String gera um identificador determinístico para o grupo
func (k GroupKey) String() string {
	return k.SourceKey + "|" + k.SubSourceKey
}

// GroupTotals são os totais e razões de um conjunto de decisões
type GroupTotals struct {
	TotalCost           float64 `json:"total_cost"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalProfit         float64 `json:"total_profit"`
	TotalClicks         int64   `json:"total_clicks"`
	TotalConversions    int64   `json:"total_conversions"`
	TotalROI            float64 `json:"total_roi"`
	TotalConversionRate float64 `json:"total_conversion_rate"`
	TotalCPC            float64 `json:"total_cpc"`
}

// Rollup é a recomendação consolidada de um grupo por voto majoritário
type Rollup struct {
	RolledUpRecommendation Action `json:"rolled_up_recommendation"`
	RecommendationPct      int    `json:"recommendation_percentage"`
	BudgetChangePctSum     int    `json:"budget_change_pct_sum"`
	AverageBudgetChangePct int    `json:"average_budget_change_pct"`
	BudgetedMembers        int    `json:"budgeted_members"`
	// MajorityVote é o voto antes da regra de override para PAUSE
	MajorityVote Action `json:"majority_vote,omitempty"`
}

// DayBucket agrupa as decisões de um grupo por dia
type DayBucket struct {
	Day string `json:"day"`
	GroupTotals
	Decisions []Decision `json:"adset"`
}

// Group é a agregação das decisões que compartilham a mesma chave
type Group struct {
	ID string `json:"id"`
	GroupKey
	Geo     string `json:"geo,omitempty"`
	Country string `json:"country_name,omitempty"`
	GroupTotals
	Rollup
	Days      []DayBucket `json:"days,omitempty"`
	Decisions []Decision  `json:"adset"`
}

// LatestDay retorna o dia mais recente entre as decisões do grupo
func (g Group) LatestDay() string {
	latest := ""
	for _, d := range g.Decisions {
		if d.Day > latest {
			latest = d.Day
		}
	}
	return latest
}
