package clustering

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	ModeArtifact = "artifact"
	ModeRemote   = "remote"
)

// Oracle é o oráculo de clusterização usado pelo caso de uso de recomendações
type Oracle interface {
	AssignClusters(ctx context.Context, records []domain.MetricRecord) ([]int, error)
}

// New escolhe a implementação pelo CLUSTERING_MODE
func New(cfg *config.Config) (Oracle, error) {
	switch cfg.Clustering.Mode {
	case ModeArtifact, "":
		artifact, err := LoadArtifact(cfg.Clustering.ArtifactPath)
		if err != nil {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"version":      artifact.Version,
			"features":     len(artifact.Features),
			"core_samples": len(artifact.CoreSamples),
		}).Info("clustering: artifact loaded")

		return NewArtifactOracle(artifact), nil

	case ModeRemote:
		if cfg.Clustering.RemoteURL == "" {
			return nil, fmt.Errorf("clustering: remote mode requires CLUSTERING_REMOTE_URL")
		}
		return NewRemoteOracle(
			cfg.Clustering.RemoteURL,
			cfg.Clustering.ModelVersion,
			cfg.Clustering.Timeout,
			cfg.Clustering.MaxAttempts,
		), nil
	}

	return nil, fmt.Errorf("clustering: unknown mode %q", cfg.Clustering.Mode)
}
