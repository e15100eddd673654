package trackerclient

import (
	"context"
	"net/http"
	"time"

	trackerdomain "github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/tracker/domain"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/pkg/resilience"
)

type Client interface {
	BuildReport(ctx context.Context, request trackerdomain.ReportRequest) (*trackerdomain.ReportResponse, error)
}

type TrackerClient struct {
	httpClient *http.Client
	config     *config.Tracker
	retry      resilience.RetryConfig
}

// NewClient cria o cliente da API de relatórios do tracker
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Tracker.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = cfg.Tracker.MaxAttempts
	retry.OnRetry = resilience.RetryLogger("tracker", "report/build")

	return &TrackerClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: &cfg.Tracker,
		retry:  retry,
	}
}
