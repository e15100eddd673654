package recommending

import (
	"sort"

	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

// Rank devolve uma cópia ordenada por prioridade crescente e ROI decrescente.
// Empates em (prioridade, ROI) mantêm a ordem de entrada.
func Rank(decisions []domain.Decision) []domain.Decision {
	ranked := make([]domain.Decision, len(decisions))
	copy(ranked, decisions)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Priority != ranked[j].Priority {
			return ranked[i].Priority < ranked[j].Priority
		}
		return ranked[i].ROI > ranked[j].ROI
	})

	return ranked
}
