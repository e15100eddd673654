package domain

// RawRow é uma linha crua vinda do relatório, antes da normalização
type RawRow map[string]any

// Campos numéricos esperados em cada linha do relatório
const (
	FieldCost                 = "cost"
	FieldRevenue              = "revenue"
	FieldProfit               = "profit"
	FieldClicks               = "clicks"
	FieldConversions          = "conversions"
	FieldCampaignUniqueClicks = "campaign_unique_clicks"
	FieldLPClicks             = "lp_clicks"
	FieldLPCTR                = "lp_ctr"
	FieldCR                   = "cr"
	FieldCPC                  = "cpc"
	FieldROI                  = "roi"
)

// Campos de identificação e agrupamento
const (
	FieldSourceKey    = "source_key"
	FieldSubSourceKey = "sub_source_key"
	FieldAdKey        = "ad_key"
	FieldAdsetID      = "adset_id"
	FieldDay          = "day"
	FieldGeo          = "geo"
	FieldCluster      = "cluster"
)

// NumericFields lista, em ordem fixa, os campos numéricos de uma MetricRecord
var NumericFields = []string{
	FieldCost,
	FieldRevenue,
	FieldProfit,
	FieldClicks,
	FieldConversions,
	FieldCampaignUniqueClicks,
	FieldLPClicks,
	FieldLPCTR,
	FieldCR,
	FieldCPC,
	FieldROI,
}

// GroupingKeyFields são os campos usados para identificar a origem de uma linha
var GroupingKeyFields = []string{FieldSourceKey, FieldSubSourceKey, FieldAdKey, FieldAdsetID}

// MetricRecord representa um adset normalizado e pronto para classificação
type MetricRecord struct {
	SourceKey    string `json:"source_key"`
	SubSourceKey string `json:"sub_source_key"`
	AdKey        string `json:"ad_key,omitempty"`
	AdsetID      string `json:"adset_id,omitempty"`
	Day          string `json:"day,omitempty"`

	Cost                 float64 `json:"cost"`
	Revenue              float64 `json:"revenue"`
	Profit               float64 `json:"profit"`
	Clicks               float64 `json:"clicks"`
	Conversions          float64 `json:"conversions"`
	CampaignUniqueClicks float64 `json:"campaign_unique_clicks"`
	LPClicks             float64 `json:"lp_clicks"`
	LPCTR                float64 `json:"lp_ctr"`
	CR                   float64 `json:"cr"`
	CPC                  float64 `json:"cpc"`
	ROI                  float64 `json:"roi"`

	RevenueToCostRatio float64 `json:"revenue_to_cost_ratio"`
	ConversionRate     float64 `json:"conversion_rate"`
	ProfitMargin       float64 `json:"profit_margin"`

	Geo     string `json:"geo,omitempty"`
	Country string `json:"country_name,omitempty"`

	// Cluster é nil enquanto o oráculo de clusterização não rotulou a linha
	Cluster *int `json:"cluster"`
}

// Feature retorna o valor de um campo numérico (base ou derivado) pelo nome
func (m MetricRecord) Feature(name string) (float64, bool) {
	switch name {
	case FieldCost:
		return m.Cost, true
	case FieldRevenue:
		return m.Revenue, true
	case FieldProfit:
		return m.Profit, true
	case FieldClicks:
		return m.Clicks, true
	case FieldConversions:
		return m.Conversions, true
	case FieldCampaignUniqueClicks:
		return m.CampaignUniqueClicks, true
	case FieldLPClicks:
		return m.LPClicks, true
	case FieldLPCTR:
		return m.LPCTR, true
	case FieldCR:
		return m.CR, true
	case FieldCPC:
		return m.CPC, true
	case FieldROI, "roi_confirmed":
		return m.ROI, true
	case "revenue_to_cost_ratio":
		return m.RevenueToCostRatio, true
	case "conversion_rate":
		return m.ConversionRate, true
	case "profit_margin":
		return m.ProfitMargin, true
	case "cost_per_click":
		if m.Clicks == 0 {
			return 0, true
		}
		return m.Cost / m.Clicks, true
	}
	return 0, false
}

// WithCluster devolve uma cópia do registro com o rótulo de cluster atribuído
func (m MetricRecord) WithCluster(label int) MetricRecord {
	m.Cluster = &label
	return m
}
