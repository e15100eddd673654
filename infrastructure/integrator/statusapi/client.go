package statusapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
	"github.com/vfg2006/campaign-advisor-api/pkg/resilience"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrInvalidStatus = errors.New("status api returned an unknown status")

type statusResponse struct {
	Status string `json:"status"`
}

// Client consulta o status real de um adset na plataforma de anúncios
type Client interface {
	GetStatus(ctx context.Context, adsetID string) (string, error)
}

type StatusClient struct {
	httpClient *http.Client
	baseURL    string
	retry      resilience.RetryConfig
}

// NewClient usa até STATUS_API_MAX_ATTEMPTS tentativas com atraso base
// STATUS_API_BASE_DELAY dobrando a cada tentativa, mais até 1s de jitter
func NewClient(cfg *config.Config) Client {
	timeout := cfg.StatusAPI.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	retry := resilience.RetryConfig{
		MaxAttempts:    cfg.StatusAPI.MaxAttempts,
		InitialBackoff: cfg.StatusAPI.BaseDelay,
		MaxBackoff:     time.Minute,
		Multiplier:     2,
		Jitter:         time.Second,
		ShouldRetry:    shouldRetry,
		OnRetry:        resilience.RetryLogger("statusapi", "get status"),
	}

	return &StatusClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.StatusAPI.URL,
		retry:      retry,
	}
}

// GetStatus devolve domain.ExternalStatusActive ou domain.ExternalStatusPaused
func (c *StatusClient) GetStatus(ctx context.Context, adsetID string) (string, error) {
	endpoint, err := url.JoinPath(c.baseURL, url.PathEscape(adsetID))
	if err != nil {
		return "", fmt.Errorf("erro ao montar a URL: %w", err)
	}

	return resilience.DoVal(ctx, c.retry, func(ctx context.Context) (string, error) {
		return c.get(ctx, endpoint)
	})
}

func (c *StatusClient) get(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", &resilience.HTTPStatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var body statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	status := strings.ToUpper(strings.TrimSpace(body.Status))
	if status != domain.ExternalStatusActive && status != domain.ExternalStatusPaused {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, body.Status)
	}

	return status, nil
}

// shouldRetry repete qualquer falha de rede ou HTTP, exceto cancelamento e
// respostas com status desconhecido
func shouldRetry(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, ErrInvalidStatus)
}
