package clustering

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

const artifactJSON = `{
	"version": "2024.06",
	"features": ["cost", "roi_confirmed"],
	"scaler": {"mean": [50, 0], "scale": [10, 100]},
	"eps": 0.5,
	"min_samples": 2,
	"core_samples": [[0, 0], [2, 2]],
	"core_labels": [1, 4]
}`

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestArtifactOracle_NearestCore(t *testing.T) {
	artifact, err := LoadArtifact(writeArtifact(t, artifactJSON))
	require.NoError(t, err)
	assert.Equal(t, "2024.06", artifact.Version)

	oracle := NewArtifactOracle(artifact)
	records := []domain.MetricRecord{
		{Cost: 52, ROI: 10},   // (0.2, 0.1) perto do núcleo 1
		{Cost: 70, ROI: 210},  // (2, 2.1) perto do núcleo 4
		{Cost: 200, ROI: -90}, // longe de tudo
	}

	labels, err := oracle.AssignClusters(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, -1}, labels)
}

func TestArtifactOracle_BatchFitWithoutCoreSamples(t *testing.T) {
	artifact := &Artifact{
		Features:   []string{"cost"},
		Scaler:     Scaler{Mean: []float64{0}, Scale: []float64{1}},
		Eps:        0.5,
		MinSamples: 2,
	}
	require.NoError(t, artifact.Validate())

	labels, err := NewArtifactOracle(artifact).AssignClusters(context.Background(), []domain.MetricRecord{
		{Cost: 1}, {Cost: 1.2}, {Cost: 9},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, -1}, labels)
}

func TestArtifactOracle_CanceledContext(t *testing.T) {
	artifact, err := LoadArtifact(writeArtifact(t, artifactJSON))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewArtifactOracle(artifact).AssignClusters(ctx, []domain.MetricRecord{{}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadArtifact_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "json inválido", content: `{`},
		{name: "sem features", content: `{"features": [], "eps": 0.5}`},
		{name: "scaler incompleto", content: `{"features": ["cost"], "scaler": {"mean": [], "scale": [1]}, "eps": 0.5, "min_samples": 2}`},
		{name: "eps zero", content: `{"features": ["cost"], "scaler": {"mean": [0], "scale": [1]}, "eps": 0, "min_samples": 2}`},
		{name: "rótulos desalinhados", content: `{"features": ["cost"], "scaler": {"mean": [0], "scale": [1]}, "eps": 1, "core_samples": [[0]], "core_labels": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadArtifact(writeArtifact(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadArtifact(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestNew_SelectsMode(t *testing.T) {
	cfg := &config.Config{Clustering: config.Clustering{Mode: ModeArtifact, ArtifactPath: writeArtifact(t, artifactJSON)}}
	oracle, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &ArtifactOracle{}, oracle)

	cfg = &config.Config{Clustering: config.Clustering{Mode: ModeRemote, RemoteURL: "http://model:8080/predict"}}
	oracle, err = New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &RemoteOracle{}, oracle)

	_, err = New(&config.Config{Clustering: config.Clustering{Mode: ModeRemote}})
	assert.Error(t, err)

	_, err = New(&config.Config{Clustering: config.Clustering{Mode: "kmeans"}})
	assert.Error(t, err)
}
