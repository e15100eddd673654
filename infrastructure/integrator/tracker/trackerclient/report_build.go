package trackerclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	trackerdomain "github.com/vfg2006/campaign-advisor-api/infrastructure/integrator/tracker/domain"
	"github.com/vfg2006/campaign-advisor-api/pkg/resilience"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxErrorBody = 512

func (c *TrackerClient) BuildReport(ctx context.Context, request trackerdomain.ReportRequest) (*trackerdomain.ReportResponse, error) {
	endpoint, err := url.JoinPath(c.config.URL, "report", "build")
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar a URL do relatório")
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a requisição")
	}

	return resilience.DoVal(ctx, c.retry, func(ctx context.Context) (*trackerdomain.ReportResponse, error) {
		return c.post(ctx, endpoint, body)
	})
}

func (c *TrackerClient) post(ctx context.Context, endpoint string, body []byte) (*trackerdomain.ReportResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Api-Key", c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &resilience.HTTPStatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var response trackerdomain.ReportResponse
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &response, nil
}
