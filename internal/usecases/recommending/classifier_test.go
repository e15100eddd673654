package recommending

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

func labeled(cost, roi float64, cluster int) domain.MetricRecord {
	return domain.MetricRecord{Cost: cost, ROI: roi, Cluster: &cluster}
}

func TestClassify_RuleTable(t *testing.T) {
	tests := []struct {
		name     string
		cost     float64
		roi      float64
		cluster  int
		action   domain.Action
		pct      int
		priority int
	}{
		{name: "gasto insuficiente vence qualquer cluster", cost: 3, roi: 80, cluster: 0, action: domain.ActionKeepRunning, pct: 0, priority: 6},
		{name: "gasto insuficiente com outlier", cost: 4.99, roi: 500, cluster: -1, action: domain.ActionKeepRunning, pct: 0, priority: 6},
		{name: "outlier com ROI positivo", cost: 50, roi: 80, cluster: -1, action: domain.ActionIncreaseBudget, pct: 16, priority: 2},
		{name: "outlier com ROI muito alto respeita o teto", cost: 50, roi: 5000, cluster: -1, action: domain.ActionIncreaseBudget, pct: 200, priority: 2},
		{name: "outlier com ROI levemente negativo", cost: 20, roi: -30, cluster: -1, action: domain.ActionOptimize, pct: -15, priority: 4},
		{name: "outlier com ROI exatamente -50 pausa", cost: 20, roi: -50, cluster: -1, action: domain.ActionPause, pct: 0, priority: 1},
		{name: "outlier com ROI ruim", cost: 20, roi: -60, cluster: -1, action: domain.ActionPause, pct: 0, priority: 1},
		{name: "outlier com ROI zero otimiza", cost: 20, roi: 0, cluster: -1, action: domain.ActionOptimize, pct: 0, priority: 4},
		{name: "cluster alto com ROI positivo", cost: 10, roi: 30, cluster: 4, action: domain.ActionIncreaseBudget, pct: 6, priority: 2},
		{name: "cluster 5 sem ROI", cost: 10, roi: 0, cluster: 5, action: domain.ActionOptimize, pct: 0, priority: 4},
		{name: "cluster moderado com ROI positivo", cost: 10, roi: 12, cluster: 1, action: domain.ActionOptimize, pct: 0, priority: 4},
		{name: "cluster moderado com ROI negativo", cost: 10, roi: -40, cluster: 0, action: domain.ActionReduceBudget, pct: -20, priority: 3},
		{name: "cluster moderado com desconto limitado a 50", cost: 10, roi: -300, cluster: 0, action: domain.ActionReduceBudget, pct: -50, priority: 3},
		{name: "cluster ruim com gasto alto pausa", cost: 150, roi: -30, cluster: 2, action: domain.ActionPause, pct: 0, priority: 1},
		{name: "cluster ruim com gasto exatamente 100 reestrutura", cost: 100, roi: -30, cluster: 6, action: domain.ActionRestructure, pct: 0, priority: 5},
		{name: "cluster ruim com gasto baixo", cost: 10, roi: -30, cluster: 2, action: domain.ActionRestructure, pct: 0, priority: 5},
		{name: "cluster desconhecido", cost: 10, roi: 10, cluster: 9, action: domain.ActionReview, pct: 0, priority: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecision(labeled(tt.cost, tt.roi, tt.cluster), domain.CPCRateStandard, "")

			assert.Equal(t, tt.action, d.Action)
			assert.Equal(t, tt.pct, d.BudgetChangePct)
			assert.Equal(t, tt.priority, d.Priority)
			assert.NotEmpty(t, d.Reason)
			assert.NotEmpty(t, d.Suggestion)
		})
	}
}

func TestClassify_NonFiniteValuesCountAsZero(t *testing.T) {
	c := Classify(domain.MetricRecord{Cost: 50, ROI: math.NaN()}, -1)
	assert.Equal(t, domain.ActionOptimize, c.Action)
	assert.Equal(t, 0, c.BudgetChangePct)

	c = Classify(domain.MetricRecord{Cost: math.Inf(1), ROI: 10}, 4)
	assert.Equal(t, domain.ActionKeepRunning, c.Action)
}

func TestClassify_Idempotent(t *testing.T) {
	record := labeled(50, 80, -1)
	assert.Equal(t, Classify(record, -1), Classify(record, -1))
}

func TestBudgetPercentages(t *testing.T) {
	assert.Equal(t, 16, IncreasePct(80))
	assert.Equal(t, 1, IncreasePct(2.5))
	assert.Equal(t, 200, IncreasePct(1000))
	assert.Equal(t, -15, DecreasePct(-30))
	assert.Equal(t, -50, DecreasePct(-1000))
	assert.Equal(t, 0, DecreasePct(0))
	assert.Equal(t, 0, IncreasePct(math.NaN()))
}

func TestActionPriority(t *testing.T) {
	assert.Equal(t, 1, domain.ActionPause.Priority())
	assert.Equal(t, 2, domain.ActionIncreaseBudget.Priority())
	assert.Equal(t, 3, domain.ActionReduceBudget.Priority())
	assert.Equal(t, 4, domain.ActionOptimize.Priority())
	assert.Equal(t, 5, domain.ActionRestructure.Priority())
	assert.Equal(t, 6, domain.ActionKeepRunning.Priority())
	assert.Equal(t, 8, domain.ActionReview.Priority())
	assert.Equal(t, domain.UnmappedPriority, domain.Action("MONITOR_CLOSELY").Priority())
}
