package recommending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

func TestTagCPC(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.MetricRecord
		want    []domain.CPCRate
	}{
		{
			name: "z-score contra a mesma geo",
			records: []domain.MetricRecord{
				{Geo: "US", CPC: 1.0},
				{Geo: "US", CPC: 1.0},
				{Geo: "US", CPC: 1.0},
				{Geo: "US", CPC: 5.0},
				{Geo: "US", CPC: 0.1},
			},
			// média 1.62, desvio amostral ~1.95
			want: []domain.CPCRate{
				domain.CPCRateStandard,
				domain.CPCRateStandard,
				domain.CPCRateStandard,
				domain.CPCRateHigh,
				domain.CPCRateStandard,
			},
		},
		{
			name: "geos independentes",
			records: []domain.MetricRecord{
				{Geo: "US", CPC: 0.1},
				{Geo: "BR", CPC: 10},
				{Geo: "US", CPC: 0.5},
				{Geo: "BR", CPC: 10},
				{Geo: "US", CPC: 0.5},
			},
			want: []domain.CPCRate{
				domain.CPCRateLow,
				domain.CPCRateStandard,
				domain.CPCRateStandard,
				domain.CPCRateStandard,
				domain.CPCRateStandard,
			},
		},
		{
			name: "grupo de um membro e geo vazia",
			records: []domain.MetricRecord{
				{Geo: "MX", CPC: 2},
				{Geo: "", CPC: 2},
				{Geo: "", CPC: 4},
			},
			want: []domain.CPCRate{
				domain.CPCRateInsufficientData,
				domain.CPCRateInsufficientData,
				domain.CPCRateInsufficientData,
			},
		},
		{
			name: "variância zero não gera NaN",
			records: []domain.MetricRecord{
				{Geo: "CA", CPC: 0.3},
				{Geo: "CA", CPC: 0.3},
			},
			want: []domain.CPCRate{domain.CPCRateStandard, domain.CPCRateStandard},
		},
		{
			// a média de 0.1 repetido não é exatamente 0.1
			name: "valores iguais com ruído de ponto flutuante",
			records: []domain.MetricRecord{
				{Geo: "PT", CPC: 0.1},
				{Geo: "PT", CPC: 0.1},
				{Geo: "PT", CPC: 0.1},
				{Geo: "AR", CPC: 0.7},
				{Geo: "AR", CPC: 0.7},
				{Geo: "AR", CPC: 0.7},
				{Geo: "AR", CPC: 0.7},
				{Geo: "AR", CPC: 0.7},
			},
			want: []domain.CPCRate{
				domain.CPCRateStandard,
				domain.CPCRateStandard,
				domain.CPCRateStandard,
				domain.CPCRateStandard,
				domain.CPCRateStandard,
				domain.CPCRateStandard,
				domain.CPCRateStandard,
				domain.CPCRateStandard,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TagCPC(tt.records))
		})
	}
}

func TestTagCPC_Empty(t *testing.T) {
	assert.Empty(t, TagCPC(nil))
}
