package recommending

import (
	"fmt"
	"math"

	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/pkg/utils"
)

// RulesVersion identifica a tabela de regras aplicada por Classify
const RulesVersion = "2024.06"

const (
	minBudgetedCost  = 5.0
	highSpendCost    = 100.0
	noiseCluster     = -1
	maxIncreasePct   = 200.0
	maxDecreasePct   = 50.0
	poorROIThreshold = -50.0
)

// Classification é o resultado puro da tabela de regras
type Classification struct {
	Action          domain.Action
	Reason          string
	Suggestion      string
	BudgetChangePct int
}

// Classify aplica a tabela de regras a um registro já rotulado. A primeira
// regra que casar vence. NaN e infinitos contam como zero.
func Classify(record domain.MetricRecord, cluster int) Classification {
	roi := utils.Finite(record.ROI)
	cost := utils.Finite(record.Cost)

	if cost < minBudgetedCost {
		return Classification{
			Action:     domain.ActionKeepRunning,
			Reason:     "Insufficient spend (<$5)",
			Suggestion: "Wait for more data before making changes",
		}
	}

	switch cluster {
	case noiseCluster:
		switch {
		case roi > 0:
			pct := IncreasePct(roi)
			return Classification{
				Action:          domain.ActionIncreaseBudget,
				Reason:          fmt.Sprintf("Outlier ROI %.1f%%", roi),
				Suggestion:      fmt.Sprintf("Increase budget by %d%%", pct),
				BudgetChangePct: pct,
			}
		case roi > poorROIThreshold:
			pct := DecreasePct(roi)
			return Classification{
				Action:          domain.ActionOptimize,
				Reason:          fmt.Sprintf("Outlier with slightly negative ROI %.1f%%", roi),
				Suggestion:      fmt.Sprintf("Decrease budget by %d%%", -pct),
				BudgetChangePct: pct,
			}
		default:
			return Classification{
				Action:     domain.ActionPause,
				Reason:     fmt.Sprintf("Outlier with poor ROI %.1f%%", roi),
				Suggestion: "Pause campaign immediately",
			}
		}

	case 4, 5:
		if roi > 0 {
			pct := IncreasePct(roi)
			return Classification{
				Action:          domain.ActionIncreaseBudget,
				Reason:          fmt.Sprintf("High ROI %.1f%%", roi),
				Suggestion:      fmt.Sprintf("Increase budget by %d%%", pct),
				BudgetChangePct: pct,
			}
		}
		return Classification{
			Action:     domain.ActionOptimize,
			Reason:     fmt.Sprintf("High performance cluster with no ROI %.1f%%", roi),
			Suggestion: "Improve ad quality or landing page",
		}

	case 0, 1:
		if roi > 0 {
			return Classification{
				Action:     domain.ActionOptimize,
				Reason:     fmt.Sprintf("Moderate ROI %.1f%%", roi),
				Suggestion: "Test creatives and refine targeting",
			}
		}
		pct := DecreasePct(roi)
		return Classification{
			Action:          domain.ActionReduceBudget,
			Reason:          fmt.Sprintf("Negative ROI %.1f%%", roi),
			Suggestion:      fmt.Sprintf("Reduce budget by %d%%", -pct),
			BudgetChangePct: pct,
		}

	case 2, 3, 6:
		if cost > highSpendCost {
			return Classification{
				Action:     domain.ActionPause,
				Reason:     fmt.Sprintf("High spend ($%.0f) with poor ROI %.1f%%", cost, roi),
				Suggestion: "Pause immediately",
			}
		}
		return Classification{
			Action:     domain.ActionRestructure,
			Reason:     fmt.Sprintf("Low spend with poor ROI %.1f%%", roi),
			Suggestion: "Restructure campaign from scratch",
		}
	}

	return Classification{
		Action:     domain.ActionReview,
		Reason:     "Unknown cluster",
		Suggestion: "Manual review required",
	}
}

// IncreasePct é round(min(200, roi/5)), com o teto aplicado antes do arredondamento
func IncreasePct(roi float64) int {
	return utils.RoundToInt(math.Min(maxIncreasePct, utils.Finite(roi)/5))
}

// DecreasePct é -round(min(50, |roi|/2)), sempre <= 0
func DecreasePct(roi float64) int {
	return -utils.RoundToInt(math.Min(maxDecreasePct, math.Abs(utils.Finite(roi))/2))
}

// NewDecision monta a Decision imutável de um registro rotulado
func NewDecision(record domain.MetricRecord, cpcRate domain.CPCRate, status string) domain.Decision {
	c := Classify(record, *record.Cluster)
	return domain.Decision{
		MetricRecord:    record,
		Action:          c.Action,
		Reason:          c.Reason,
		Suggestion:      c.Suggestion,
		BudgetChangePct: c.BudgetChangePct,
		Priority:        c.Action.Priority(),
		CPCRate:         cpcRate,
		Status:          status,
	}
}
