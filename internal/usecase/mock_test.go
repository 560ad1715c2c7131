package usecase_test

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"transcript-relay/internal/domain/model"
	"transcript-relay/internal/domain/ports/adapter"
)

func newTestLogger() *zerolog.Logger {
	l := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	return &l
}

// ---- Mock TranscriptSource ----

type MockTranscriptSource struct {
	FetchFunc func(ctx context.Context, videoIDOrURL string, opts *adapter.FetchOptions) ([]model.TranscriptSegment, error)
	Calls     []string
}

var _ adapter.TranscriptSource = (*MockTranscriptSource)(nil)

func (m *MockTranscriptSource) Fetch(ctx context.Context, videoIDOrURL string, opts *adapter.FetchOptions) ([]model.TranscriptSegment, error) {
	m.Calls = append(m.Calls, videoIDOrURL)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, videoIDOrURL, opts)
	}
	return nil, nil
}

// ---- Mock Deliverer ----

type MockDeliverer struct {
	mu       sync.Mutex
	SendFunc func(ctx context.Context, payload model.TranscriptPayload) error
	Sent     []model.TranscriptPayload
}

var _ adapter.Deliverer = (*MockDeliverer)(nil)

func (m *MockDeliverer) Send(ctx context.Context, payload model.TranscriptPayload) error {
	m.mu.Lock()
	m.Sent = append(m.Sent, payload)
	m.mu.Unlock()
	if m.SendFunc != nil {
		return m.SendFunc(ctx, payload)
	}
	return nil
}

// ---- Mock RetryScheduler ----

type scheduledRetry struct {
	Body string
	At   time.Time
}

type MockScheduler struct {
	ScheduleFunc func(ctx context.Context, body string, at time.Time) error
	Scheduled    []scheduledRetry
}

var _ adapter.RetryScheduler = (*MockScheduler)(nil)

func (m *MockScheduler) ScheduleRedelivery(ctx context.Context, body string, at time.Time) error {
	m.Scheduled = append(m.Scheduled, scheduledRetry{Body: body, At: at})
	if m.ScheduleFunc != nil {
		return m.ScheduleFunc(ctx, body, at)
	}
	return nil
}
