// Package gateway is the HTTP client of the logistics provider API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/transport-sync/internal/config"
	"github.com/SergeyBogomolovv/transport-sync/internal/entities"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	authHeader      = "X-AUTH-TOKEN"
	maxSummaryRunes = 200

	opCreate = "create"
	opFetch  = "fetch"
)

type Gateway struct {
	client  *http.Client
	baseURL string
	apiKey  string
	logger  *slog.Logger
}

func New(logger *slog.Logger, cfg config.Provider) *Gateway {
	return &Gateway{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger.With(slog.String("channel", "provider-api-error")),
	}
}

// Create registers a shipment and returns the provider's view of it.
func (g *Gateway) Create(ctx context.Context, req entities.ShipmentRequest) (entities.CreatedShipment, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return entities.CreatedShipment{}, fmt.Errorf("failed to marshal shipment: %w", err)
	}
	return g.do(ctx, opCreate, http.MethodPost, "/shipments", body)
}

func (g *Gateway) Fetch(ctx context.Context, id string) (entities.CreatedShipment, error) {
	if id == "" {
		return entities.CreatedShipment{}, fmt.Errorf("%w: empty shipment id", entities.ErrInvalidArgument)
	}
	return g.do(ctx, opFetch, http.MethodGet, "/shipments/"+url.PathEscape(id), nil)
}

func (g *Gateway) do(ctx context.Context, op, method, path string, body []byte) (entities.CreatedShipment, error) {
	start := time.Now()
	shipment, err := g.roundTrip(ctx, method, path, body)
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if err != nil {
		requestsTotal.WithLabelValues(op, outcome(err)).Inc()
		var apiErr *entities.APIError
		if errors.As(err, &apiErr) {
			g.logAPIError(ctx, op, apiErr)
		}
		return entities.CreatedShipment{}, err
	}

	requestsTotal.WithLabelValues(op, "ok").Inc()
	return shipment, nil
}

func (g *Gateway) roundTrip(ctx context.Context, method, path string, body []byte) (entities.CreatedShipment, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return entities.CreatedShipment{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(authHeader, g.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return entities.CreatedShipment{}, &entities.APIError{Message: method + " " + path + " failed", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.CreatedShipment{}, &entities.APIError{
			StatusCode: resp.StatusCode,
			Message:    "failed to read response body",
			Err:        err,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entities.CreatedShipment{}, &entities.APIError{
			StatusCode: resp.StatusCode,
			Body:       raw,
			Message:    method + " " + path + " returned " + strconv.Itoa(resp.StatusCode),
		}
	}

	var shipment entities.CreatedShipment
	if err := json.Unmarshal(raw, &shipment); err != nil {
		return entities.CreatedShipment{}, &entities.APIError{
			StatusCode: resp.StatusCode,
			Body:       raw,
			Message:    "malformed response body",
			Err:        err,
		}
	}
	return shipment, nil
}

// logAPIError writes the summary and the raw body as separate records.
func (g *Gateway) logAPIError(ctx context.Context, op string, err *entities.APIError) {
	g.logger.WarnContext(ctx, truncate(err.Error(), maxSummaryRunes),
		slog.String("operation", op),
		slog.Int("status_code", err.StatusCode),
	)
	if len(err.Body) > 0 {
		g.logger.WarnContext(ctx, "provider response body",
			slog.String("operation", op),
			slog.String("body", string(err.Body)),
		)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func outcome(err error) string {
	var apiErr *entities.APIError
	switch {
	case !errors.As(err, &apiErr):
		return "local_error"
	case apiErr.StatusCode == 0:
		return "network_error"
	case apiErr.StatusCode >= 200 && apiErr.StatusCode < 300:
		return "malformed"
	default:
		return strconv.Itoa(apiErr.StatusCode/100) + "xx"
	}
}
