package clustering

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

// Artifact é o modelo exportado pelo treino: scaler padrão mais as amostras
// núcleo do DBSCAN com seus rótulos
type Artifact struct {
	Version     string      `json:"version"`
	Features    []string    `json:"features"`
	Scaler      Scaler      `json:"scaler"`
	Eps         float64     `json:"eps"`
	MinSamples  int         `json:"min_samples"`
	CoreSamples [][]float64 `json:"core_samples"`
	CoreLabels  []int       `json:"core_labels"`
}

type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// LoadArtifact lê e valida o artefato JSON do modelo
func LoadArtifact(path string) (*Artifact, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o artefato %s", path)
	}

	var artifact Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar o artefato")
	}

	if err := artifact.Validate(); err != nil {
		return nil, err
	}

	return &artifact, nil
}

func (a *Artifact) Validate() error {
	n := len(a.Features)
	switch {
	case n == 0:
		return errors.New("artifact has no features")
	case len(a.Scaler.Mean) != n || len(a.Scaler.Scale) != n:
		return fmt.Errorf("scaler has %d/%d entries for %d features", len(a.Scaler.Mean), len(a.Scaler.Scale), n)
	case a.Eps <= 0:
		return fmt.Errorf("eps must be positive, got %v", a.Eps)
	case len(a.CoreSamples) != len(a.CoreLabels):
		return fmt.Errorf("%d core samples for %d labels", len(a.CoreSamples), len(a.CoreLabels))
	}

	for i, sample := range a.CoreSamples {
		if len(sample) != n {
			return fmt.Errorf("core sample %d has %d values for %d features", i, len(sample), n)
		}
	}

	if len(a.CoreSamples) == 0 && a.MinSamples <= 0 {
		return errors.New("artifact without core samples needs min_samples")
	}

	return nil
}

// ArtifactOracle atribui clusters localmente a partir do artefato. Com amostras
// núcleo, cada registro recebe o rótulo do núcleo mais próximo dentro de eps
// (ou -1). Sem elas, o lote é clusterizado do zero com DBSCAN(eps, min_samples).
type ArtifactOracle struct {
	artifact *Artifact
}

func NewArtifactOracle(artifact *Artifact) *ArtifactOracle {
	return &ArtifactOracle{artifact: artifact}
}

func (o *ArtifactOracle) AssignClusters(ctx context.Context, records []domain.MetricRecord) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	points := o.standardize(records)

	if len(o.artifact.CoreSamples) == 0 {
		return DBSCAN(points, o.artifact.Eps, o.artifact.MinSamples), nil
	}

	labels := make([]int, len(points))
	for i, p := range points {
		labels[i] = o.nearestCore(p)
	}

	return labels, nil
}

func (o *ArtifactOracle) standardize(records []domain.MetricRecord) [][]float64 {
	missing := make(map[string]struct{})
	points := make([][]float64, len(records))

	for i, r := range records {
		p := make([]float64, len(o.artifact.Features))
		for j, feature := range o.artifact.Features {
			value, ok := r.Feature(feature)
			if !ok {
				missing[feature] = struct{}{}
			}
			if math.IsNaN(value) || math.IsInf(value, 0) {
				value = 0
			}

			scale := o.artifact.Scaler.Scale[j]
			if scale == 0 {
				scale = 1
			}
			p[j] = (value - o.artifact.Scaler.Mean[j]) / scale
		}
		points[i] = p
	}

	for feature := range missing {
		logrus.WithField("feature", feature).Warn("clustering: feature not found, using zeros")
	}

	return points
}

func (o *ArtifactOracle) nearestCore(p []float64) int {
	label := noise
	best := o.artifact.Eps
	for i, core := range o.artifact.CoreSamples {
		if d := euclidean(p, core); d <= best {
			best = d
			label = o.artifact.CoreLabels[i]
		}
	}
	return label
}
