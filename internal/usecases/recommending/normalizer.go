package recommending

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/pkg/utils"
)

// geoSeparator divide o source_key "campanha +-+ GEO +-+ ..." ou "campanha - GEO - ..."
var geoSeparator = regexp.MustCompile(`\+-\+|\s-\s`)

type NormalizeOptions struct {
	// DedupeByAdset mantém apenas a primeira linha de cada adset_id
	DedupeByAdset bool
}

type NormalizeResult struct {
	Records  []domain.MetricRecord
	Rejected []*InputValidationError
	Warnings []*MissingFeatureError
}

type Normalizer struct {
	geo GeoResolver
}

// NewNormalizer cria o normalizador; geo pode ser nil quando o país não é necessário
func NewNormalizer(geo GeoResolver) *Normalizer {
	return &Normalizer{geo: geo}
}

// Normalize valida e limpa as linhas, calculando as razões derivadas. As linhas
// de entrada não são alteradas.
func (n *Normalizer) Normalize(rows []domain.RawRow, opts NormalizeOptions) NormalizeResult {
	result := NormalizeResult{
		Records: make([]domain.MetricRecord, 0, len(rows)),
	}

	seenAdsets := make(map[string]struct{})
	duplicates := 0

	for i, row := range rows {
		if !hasGroupingKey(row) {
			result.Rejected = append(result.Rejected, &InputValidationError{
				Row:    i,
				Reason: "all grouping keys (source_key, sub_source_key, ad_key, adset_id) are missing",
			})
			continue
		}

		record, warnings := n.normalizeRow(i, row)
		result.Warnings = append(result.Warnings, warnings...)

		if opts.DedupeByAdset && record.AdsetID != "" {
			if _, seen := seenAdsets[record.AdsetID]; seen {
				duplicates++
				continue
			}
			seenAdsets[record.AdsetID] = struct{}{}
		}

		result.Records = append(result.Records, record)
	}

	for _, w := range result.Warnings {
		logrus.WithFields(logrus.Fields{
			"row":   w.Row,
			"field": w.Field,
		}).Debug("recommending: numeric field defaulted to zero")
	}

	if len(result.Rejected) > 0 || len(result.Warnings) > 0 || duplicates > 0 {
		logrus.WithFields(logrus.Fields{
			"rows":       len(rows),
			"records":    len(result.Records),
			"rejected":   len(result.Rejected),
			"defaulted":  len(result.Warnings),
			"duplicates": duplicates,
		}).Warn("recommending: input rows cleaned")
	}

	return result
}

func (n *Normalizer) normalizeRow(index int, row domain.RawRow) (domain.MetricRecord, []*MissingFeatureError) {
	var warnings []*MissingFeatureError

	number := func(field string) float64 {
		raw, ok := row[field]
		if !ok || isPlaceholder(raw) {
			warnings = append(warnings, &MissingFeatureError{Row: index, Field: field})
			return 0
		}

		if s, isString := raw.(string); isString {
			raw = strings.TrimSpace(s)
		}

		value, err := cast.ToFloat64E(raw)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			warnings = append(warnings, &MissingFeatureError{Row: index, Field: field, Value: raw})
			return 0
		}
		return value
	}

	record := domain.MetricRecord{
		SourceKey:    text(row, domain.FieldSourceKey),
		SubSourceKey: text(row, domain.FieldSubSourceKey),
		AdKey:        text(row, domain.FieldAdKey),
		AdsetID:      text(row, domain.FieldAdsetID),
		Day:          text(row, domain.FieldDay),

		Cost:                 number(domain.FieldCost),
		Revenue:              number(domain.FieldRevenue),
		Profit:               number(domain.FieldProfit),
		Clicks:               number(domain.FieldClicks),
		Conversions:          number(domain.FieldConversions),
		CampaignUniqueClicks: number(domain.FieldCampaignUniqueClicks),
		LPClicks:             number(domain.FieldLPClicks),
		LPCTR:                number(domain.FieldLPCTR),
		CR:                   number(domain.FieldCR),
		CPC:                  number(domain.FieldCPC),
		ROI:                  number(domain.FieldROI),
	}

	record.RevenueToCostRatio = utils.Ratio(record.Revenue, record.Cost)
	record.ConversionRate = utils.Ratio(record.Conversions, record.Clicks)
	record.ProfitMargin = utils.Ratio(record.Profit, record.Cost)

	record.Geo = text(row, domain.FieldGeo)
	if record.Geo == "" {
		record.Geo = ExtractGeo(record.SourceKey)
	}
	if n.geo != nil {
		record.Country = n.geo.CountryName(record.Geo)
	}

	if raw, ok := row[domain.FieldCluster]; ok && !isPlaceholder(raw) {
		if label, ok := clusterLabel(raw); ok {
			record.Cluster = &label
		}
	}

	return record, warnings
}

// clusterLabel aceita apenas inteiros exatos: floats sem parte fracionária e
// strings em base 10. Qualquer outro valor deixa o registro sem cluster.
func clusterLabel(raw any) (int, bool) {
	switch v := raw.(type) {
	case string:
		label, err := strconv.Atoi(strings.TrimSpace(v))
		return label, err == nil
	case float64:
		return integral(v)
	case float32:
		return integral(float64(v))
	case bool:
		return 0, false
	}

	label, err := cast.ToIntE(raw)
	return label, err == nil
}

func integral(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

// ExtractGeo retorna o segmento de geo de um source_key, ou "" se não houver
func ExtractGeo(sourceKey string) string {
	if sourceKey == "" {
		return ""
	}
	parts := geoSeparator.Split(sourceKey, -1)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func hasGroupingKey(row domain.RawRow) bool {
	for _, field := range domain.GroupingKeyFields {
		if raw, ok := row[field]; ok && !isPlaceholder(raw) {
			return true
		}
	}
	return false
}

// isPlaceholder trata nil, strings vazias e macros não resolvidas ({{...}}) como ausentes
func isPlaceholder(raw any) bool {
	if raw == nil {
		return true
	}
	s, ok := raw.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	return s == "" || strings.HasPrefix(s, "{{")
}

func text(row domain.RawRow, field string) string {
	raw, ok := row[field]
	if !ok || isPlaceholder(raw) {
		return ""
	}
	return strings.TrimSpace(cast.ToString(raw))
}
