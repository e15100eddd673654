package recommending

import (
	"math"
	"strconv"

	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

// Summarize calcula os totais do lote e o histograma de prioridades
func Summarize(decisions []domain.Decision) domain.Summary {
	summary := domain.Summary{
		TotalAdset:           len(decisions),
		PriorityDistribution: make(map[string]int),
	}

	if len(decisions) == 0 {
		return summary
	}

	var clicks, conversions, roiSum, conversionRateSum float64
	for _, d := range decisions {
		summary.TotalCost += d.Cost
		summary.TotalRevenue += d.Revenue
		summary.TotalProfit += d.Profit
		clicks += d.Clicks
		conversions += d.Conversions
		roiSum += d.ROI
		conversionRateSum += d.ConversionRate
		summary.PriorityDistribution[strconv.Itoa(d.Priority)]++
	}

	n := float64(len(decisions))
	summary.TotalClicks = int64(math.Round(clicks))
	summary.TotalConversions = int64(math.Round(conversions))
	summary.AverageROI = roiSum / n
	summary.AverageConversionRate = conversionRateSum / n
	if summary.TotalCost > 0 {
		summary.TotalROI = (summary.TotalRevenue - summary.TotalCost) / summary.TotalCost * 100
	}

	return summary
}
