package recommending

import (
	"context"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// RunOptions carrega o estado explícito de uma execução
type RunOptions struct {
	RunID string
	// Cycle é o contador de ciclos mantido pelo chamador (0..7)
	Cycle int
	// DayBuckets aninha em cada campanha os sub-totais por dia
	DayBuckets bool
	// Statuses mapeia adset_id para o status exibido; nil omite o campo
	Statuses map[string]string
}

// Pipeline transforma registros rotulados em decisões, grupos e resumo. Não
// guarda estado entre execuções: a mesma entrada gera sempre a mesma saída.
type Pipeline struct {
	workers int
}

func NewPipeline(workers int) *Pipeline {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Pipeline{workers: workers}
}

// Run executa classificação, ranking, marcação de CPC, agregação, rollup e
// resumo. Um único registro sem cluster aborta o lote inteiro.
func (p *Pipeline) Run(ctx context.Context, records []domain.MetricRecord, opts RunOptions) (*domain.BatchResult, error) {
	for i, r := range records {
		if r.Cluster == nil {
			return nil, &MissingClusterLabelError{Index: i, AdsetID: r.AdsetID}
		}
	}

	rates := TagCPC(records)

	decisions := make([]domain.Decision, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			decisions[i] = NewDecision(records[i], rates[i], statusFor(records[i], opts.Statuses))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := Rank(decisions)
	groups := Aggregate(ranked, AggregateOptions{DayBuckets: opts.DayBuckets})

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i := range groups {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			groups[i].Rollup = RollUp(groups[i].Decisions, groups[i].TotalROI)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &domain.BatchResult{
		RunID:        opts.RunID,
		Cycle:        opts.Cycle,
		RulesVersion: RulesVersion,
		Decisions:    ranked,
		Groups:       groups,
		Summary:      Summarize(ranked),
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    opts.RunID,
		"cycle":     opts.Cycle,
		"decisions": len(ranked),
		"groups":    len(groups),
	}).Debug("recommending: batch processed")

	return result, nil
}

func statusFor(record domain.MetricRecord, statuses map[string]string) string {
	if statuses == nil || record.AdsetID == "" {
		return ""
	}
	if status, ok := statuses[record.AdsetID]; ok {
		return status
	}
	return domain.AdsetStatusUnknown
}
