package recommending

import (
	"math"

	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

const (
	zeroStdReplacement = 1e-6
	cpcZThreshold      = 1.0
)

type geoStats struct {
	mean    float64
	std     float64
	defined bool
}

// TagCPC rotula o CPC de cada registro contra os pares da mesma geo usando
// z = (cpc - média) / desvio padrão amostral. O resultado é alinhado por índice.
// Grupos de um único membro e registros sem geo ficam INSUFFICIENT_DATA.
func TagCPC(records []domain.MetricRecord) []domain.CPCRate {
	members := make(map[string][]float64)
	for _, r := range records {
		if r.Geo == "" {
			continue
		}
		members[r.Geo] = append(members[r.Geo], r.CPC)
	}

	stats := make(map[string]geoStats, len(members))
	for geo, values := range members {
		stats[geo] = computeGeoStats(values)
	}

	rates := make([]domain.CPCRate, len(records))
	for i, r := range records {
		s, ok := stats[r.Geo]
		if !ok || !s.defined {
			rates[i] = domain.CPCRateInsufficientData
			continue
		}

		z := (r.CPC - s.mean) / s.std
		switch {
		case math.IsNaN(z):
			rates[i] = domain.CPCRateInsufficientData
		case z < -cpcZThreshold:
			rates[i] = domain.CPCRateLow
		case z > cpcZThreshold:
			rates[i] = domain.CPCRateHigh
		default:
			rates[i] = domain.CPCRateStandard
		}
	}

	return rates
}

func computeGeoStats(values []float64) geoStats {
	n := len(values)
	if n < 2 {
		return geoStats{}
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	mean := sum / float64(n)
	sq := 0.0
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(n-1))
	if std == 0 {
		std = zeroStdReplacement
	}

	return geoStats{mean: mean, std: std, defined: true}
}
