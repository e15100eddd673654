package clustering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/pkg/resilience"
)

// DefaultFeatures são as variáveis usadas no treino do modelo
var DefaultFeatures = []string{
	"cost", "revenue", "profit", "clicks", "campaign_unique_clicks",
	"conversions", "roi_confirmed", "lp_clicks", "cr", "lp_ctr",
	"cost_per_click",
}

type predictRequest struct {
	ModelVersion string      `json:"model_version"`
	Features     []string    `json:"features"`
	Rows         [][]float64 `json:"rows"`
}

type predictResponse struct {
	ModelVersion string `json:"model_version"`
	Labels       []int  `json:"labels"`
}

// RemoteOracle delega a clusterização a um serviço de inferência
type RemoteOracle struct {
	httpClient   *http.Client
	url          string
	modelVersion string
	features     []string
	retry        resilience.RetryConfig
}

func NewRemoteOracle(url, modelVersion string, timeout time.Duration, maxAttempts int) *RemoteOracle {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = maxAttempts
	retry.InitialBackoff = time.Second
	retry.OnRetry = resilience.RetryLogger("clustering", "predict")

	return &RemoteOracle{
		httpClient:   &http.Client{Timeout: timeout},
		url:          url,
		modelVersion: modelVersion,
		features:     DefaultFeatures,
		retry:        retry,
	}
}

func (o *RemoteOracle) AssignClusters(ctx context.Context, records []domain.MetricRecord) ([]int, error) {
	if len(records) == 0 {
		return []int{}, nil
	}

	request := predictRequest{
		ModelVersion: o.modelVersion,
		Features:     o.features,
		Rows:         make([][]float64, len(records)),
	}
	for i, r := range records {
		row := make([]float64, len(o.features))
		for j, feature := range o.features {
			row[j], _ = r.Feature(feature)
		}
		request.Rows[i] = row
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	response, err := resilience.DoVal(ctx, o.retry, func(ctx context.Context) (*predictResponse, error) {
		return o.post(ctx, body)
	})
	if err != nil {
		return nil, err
	}

	if len(response.Labels) != len(records) {
		return nil, fmt.Errorf("oracle returned %d labels for %d rows", len(response.Labels), len(records))
	}

	return response.Labels, nil
}

func (o *RemoteOracle) post(ctx context.Context, body []byte) (*predictResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &resilience.HTTPStatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var response predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
