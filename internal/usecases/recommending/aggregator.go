package recommending

import (
	"math"
	"sort"

	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/pkg/utils"
)

type AggregateOptions struct {
	// DayBuckets aninha em cada grupo os sub-totais por dia
	DayBuckets bool
}

// Aggregate agrupa as decisões por (source_key, sub_source_key). Os grupos saem
// na ordem da primeira aparição e cada decisão pertence a exatamente um grupo.
// Com DayBuckets, cada grupo também traz os sub-totais por dia, do mais recente
// para o mais antigo.
func Aggregate(decisions []domain.Decision, opts AggregateOptions) []domain.Group {
	index := make(map[domain.GroupKey]int)
	groups := make([]domain.Group, 0)

	for _, d := range decisions {
		key := domain.GroupKey{SourceKey: d.SourceKey, SubSourceKey: d.SubSourceKey}

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, domain.Group{
				ID:       key.String(),
				GroupKey: key,
				Geo:      d.Geo,
				Country:  d.Country,
			})
		}
		groups[i].Decisions = append(groups[i].Decisions, d)
	}

	for i := range groups {
		groups[i].GroupTotals = Totals(groups[i].Decisions)
		if opts.DayBuckets {
			groups[i].Days = dayBuckets(groups[i].Decisions)
		}
	}

	return groups
}

// Totals soma as métricas de um conjunto de decisões e deriva as razões do grupo
func Totals(decisions []domain.Decision) domain.GroupTotals {
	var cost, revenue, clicks, conversions float64
	for _, d := range decisions {
		cost += d.Cost
		revenue += d.Revenue
		clicks += d.Clicks
		conversions += d.Conversions
	}

	t := domain.GroupTotals{
		TotalCost:        cost,
		TotalRevenue:     revenue,
		TotalProfit:      revenue - cost,
		TotalClicks:      int64(math.Round(clicks)),
		TotalConversions: int64(math.Round(conversions)),
	}

	if t.TotalCost > 0 {
		t.TotalROI = (t.TotalProfit / t.TotalCost) * 100
	}
	if t.TotalClicks > 0 {
		t.TotalConversionRate = (float64(t.TotalConversions) / float64(t.TotalClicks)) * 100
		t.TotalCPC = t.TotalCost / float64(t.TotalClicks)
	}

	return t
}

func dayBuckets(decisions []domain.Decision) []domain.DayBucket {
	index := make(map[string]int)
	buckets := make([]domain.DayBucket, 0)

	for _, d := range decisions {
		i, ok := index[d.Day]
		if !ok {
			i = len(buckets)
			index[d.Day] = i
			buckets = append(buckets, domain.DayBucket{Day: d.Day})
		}
		buckets[i].Decisions = append(buckets[i].Decisions, d)
	}

	for i := range buckets {
		buckets[i].GroupTotals = Totals(buckets[i].Decisions)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Day > buckets[j].Day
	})

	return buckets
}

// SortByLatestDay ordena os grupos pelo dia mais recente, do mais novo ao mais antigo
func SortByLatestDay(groups []domain.Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].LatestDay() > groups[j].LatestDay()
	})
}

// SumByAdset consolida os registros de um período em uma linha por adset_id.
// As métricas de volume são somadas, os campos de identificação vêm da primeira
// linha do adset e cpc, roi, lp_ctr e cr são recalculados sobre as somas.
// Registros sem adset_id seguem sem consolidação.
func SumByAdset(records []domain.MetricRecord) []domain.MetricRecord {
	index := make(map[string]int)
	summed := make([]domain.MetricRecord, 0, len(records))

	for _, r := range records {
		if r.AdsetID == "" {
			summed = append(summed, r)
			continue
		}

		i, ok := index[r.AdsetID]
		if !ok {
			index[r.AdsetID] = len(summed)
			summed = append(summed, r)
			continue
		}

		acc := &summed[i]
		acc.Cost += r.Cost
		acc.Revenue += r.Revenue
		acc.Clicks += r.Clicks
		acc.LPClicks += r.LPClicks
		acc.Conversions += r.Conversions
		acc.CampaignUniqueClicks += r.CampaignUniqueClicks
	}

	for i := range summed {
		if summed[i].AdsetID == "" {
			continue
		}
		recompute(&summed[i])
	}

	return summed
}

func recompute(r *domain.MetricRecord) {
	r.Profit = r.Revenue - r.Cost
	r.CPC = div(r.Cost, r.Clicks)
	r.ROI = div(r.Profit, r.Cost) * 100
	r.LPCTR = div(r.LPClicks, r.Clicks) * 100
	r.CR = div(r.Conversions, r.Clicks) * 100

	r.RevenueToCostRatio = utils.Ratio(r.Revenue, r.Cost)
	r.ConversionRate = utils.Ratio(r.Conversions, r.Clicks)
	r.ProfitMargin = utils.Ratio(r.Profit, r.Cost)
	r.Cluster = nil
}

// div devolve zero quando o denominador não é positivo
func div(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}
