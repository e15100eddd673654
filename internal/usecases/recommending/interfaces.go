package recommending

import (
	"context"

	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

// ReportSource fornece as linhas cruas do relatório de performance
type ReportSource interface {
	// FetchReport busca as linhas do período informado
	FetchReport(ctx context.Context, filters *domain.ReportFilters) ([]domain.RawRow, error)
}

// ClusterAssigner é o oráculo de clusterização: um rótulo por registro, na mesma ordem
type ClusterAssigner interface {
	AssignClusters(ctx context.Context, records []domain.MetricRecord) ([]int, error)
}

// GeoResolver traduz códigos de geo em nomes de país
type GeoResolver interface {
	CountryName(code string) string
}

// Recommender é o caso de uso completo exposto para a API e os agendadores
type Recommender interface {
	// DailyRecommendations gera as recomendações do dia corrente agrupadas por campanha
	DailyRecommendations(ctx context.Context, cycle int) (*domain.BatchResult, error)

	// RangeRecommendations gera as recomendações de um período agrupadas por
	// campanha, com os dias aninhados em cada grupo
	RangeRecommendations(ctx context.Context, filters *domain.ReportFilters, cycle int) (*domain.BatchResult, error)

	// AdsetRangeRecommendations soma cada adset sobre o período antes de classificar
	AdsetRangeRecommendations(ctx context.Context, filters *domain.ReportFilters, cycle int) (*domain.BatchResult, error)

	// Evaluate executa o pipeline sobre linhas já rotuladas enviadas pelo chamador
	Evaluate(ctx context.Context, rows []domain.RawRow, opts RunOptions) (*domain.BatchResult, error)

	// UpdateAdsetStatus altera manualmente o status local de um adset
	UpdateAdsetStatus(ctx context.Context, adsetID string, active bool) error
}
