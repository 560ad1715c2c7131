package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"transcript-relay/internal/domain"
	"transcript-relay/internal/domain/model"
	"transcript-relay/internal/domain/ports/adapter"
	"transcript-relay/internal/infra/metrics"
)

// Client POSTs extracted transcripts to the downstream endpoint. The send is
// bounded by a hard timeout; this is the only network call in the pipeline
// with its own cancellation.
type Client struct {
	http    *http.Client
	url     string
	apiKey  string
	timeout time.Duration
	log     *zerolog.Logger
}

var _ adapter.Deliverer = (*Client)(nil)

func NewClient(httpClient *http.Client, url, apiKey string, timeout time.Duration, logger *zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	l := logger.With().Str("component", "Deliverer").Logger()
	return &Client{
		http:    httpClient,
		url:     url,
		apiKey:  apiKey,
		timeout: timeout,
		log:     &l,
	}
}

// Send returns nil on HTTP 200. A non-200 response or timeout comes back as
// *domain.DeliveryError; transport failures are wrapped and returned as-is.
func (c *Client) Send(ctx context.Context, payload model.TranscriptPayload) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding delivery payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("building delivery request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)

	start := time.Now()
	res, err := c.http.Do(req)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		metrics.ObserveDelivery(elapsed, false)
		if errors.Is(err, context.DeadlineExceeded) {
			return &domain.DeliveryError{Timeout: true}
		}
		return fmt.Errorf("delivery request for %q: %w", payload.VideoID, err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode != http.StatusOK {
		metrics.ObserveDelivery(elapsed, false)
		return &domain.DeliveryError{StatusCode: res.StatusCode}
	}

	metrics.ObserveDelivery(elapsed, true)
	c.log.Debug().Str("video_id", payload.VideoID).Msg("transcript delivered")
	return nil
}
