package trackerdomain

// ReportRange é o período do relatório no fuso horário informado
type ReportRange struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Timezone string `json:"timezone"`
}

// ReportRequest é o corpo de POST /report/build
type ReportRequest struct {
	Range    ReportRange `json:"range"`
	Columns  []string    `json:"columns"`
	Metrics  []string    `json:"metrics"`
	Grouping []string    `json:"grouping"`
	Filters  []any       `json:"filters"`
	Summary  bool        `json:"summary"`
	Limit    int         `json:"limit"`
	Offset   int         `json:"offset"`
	Extended bool        `json:"extended"`
}

// ReportResponse traz as linhas cruas; cada linha usa os nomes de coluna do tracker
type ReportResponse struct {
	Rows  []map[string]any `json:"rows"`
	Total int              `json:"total"`
}

// Colunas do tracker que carregam as chaves de agrupamento
const (
	ColumnSourceKey    = "sub_id_6"
	ColumnAdKey        = "sub_id_5"
	ColumnSubSourceKey = "sub_id_3"
	ColumnAdsetID      = "sub_id_2"
	ColumnROIConfirmed = "roi_confirmed"
)

var (
	ReportColumns  = []string{"clicks", "day", "lp_clicks", "lp_ctr", "cr", "cpc"}
	ReportMetrics  = []string{"clicks", "cost", "campaign_unique_clicks", "conversions", ColumnROIConfirmed, "revenue", "profit"}
	ReportGrouping = []string{ColumnSourceKey, ColumnAdKey, ColumnAdsetID, ColumnSubSourceKey}
)
