package recommending

import (
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/pkg/utils"
)

// RollUp consolida as decisões de um grupo em uma única recomendação.
//
// Apenas membros com custo >= 5 votam. A ação mais frequente vence e empates
// ficam com a ação encontrada primeiro na ordem de members (o pipeline passa os
// membros já ranqueados). Se recommendation_percentage, calculado a partir de
// averageROI, for negativo, a recomendação é forçada para PAUSE.
func RollUp(members []domain.Decision, averageROI float64) domain.Rollup {
	budgeted := make([]domain.Decision, 0, len(members))
	for _, m := range members {
		if m.Cost >= minBudgetedCost {
			budgeted = append(budgeted, m)
		}
	}

	if len(budgeted) == 0 {
		return domain.Rollup{RolledUpRecommendation: domain.ActionKeepRunning}
	}

	majority := majorityAction(budgeted)

	pctSum := 0
	roiSum := 0.0
	for _, m := range budgeted {
		pctSum += recalculatedPct(m)
		roiSum += m.ROI
	}

	rollup := domain.Rollup{
		MajorityVote:           majority,
		RolledUpRecommendation: majority,
		AverageBudgetChangePct: utils.RoundToInt(float64(pctSum) / float64(len(budgeted))),
		RecommendationPct:      signedPct(averageROI),
		BudgetChangePctSum:     signedPct(roiSum),
		BudgetedMembers:        len(budgeted),
	}

	if rollup.RecommendationPct < 0 {
		rollup.RolledUpRecommendation = domain.ActionPause
	}

	return rollup
}

func majorityAction(members []domain.Decision) domain.Action {
	counts := make(map[domain.Action]int)
	order := make([]domain.Action, 0)
	for _, m := range members {
		if _, seen := counts[m.Action]; !seen {
			order = append(order, m.Action)
		}
		counts[m.Action]++
	}

	winner := order[0]
	for _, action := range order[1:] {
		if counts[action] > counts[winner] {
			winner = action
		}
	}
	return winner
}

func recalculatedPct(m domain.Decision) int {
	switch m.Action {
	case domain.ActionIncreaseBudget:
		return IncreasePct(m.ROI)
	case domain.ActionReduceBudget, domain.ActionOptimize:
		if m.ROI < 0 {
			return DecreasePct(m.ROI)
		}
	}
	return 0
}

func signedPct(roi float64) int {
	if roi > 0 {
		return IncreasePct(roi)
	}
	return DecreasePct(roi)
}
