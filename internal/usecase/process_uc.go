package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"transcript-relay/internal/domain/model"
	"transcript-relay/internal/domain/ports/adapter"
	"transcript-relay/internal/infra/metrics"
)

// Compile-time check
var _ ProcessUseCase = (*processUC)(nil)

// ProcessUseCase runs one queue message through extraction and delivery and
// reports whether the message was handled. Handled messages get deleted by
// the consumer; unhandled ones are redelivered after the visibility timeout.
type ProcessUseCase interface {
	Process(ctx context.Context, msg *adapter.Message) bool
}

type processUC struct {
	source     adapter.TranscriptSource
	deliverer  adapter.Deliverer
	scheduler  adapter.RetryScheduler // nil when scheduling identities are not configured
	retryDelay time.Duration
	log        *zerolog.Logger
}

func NewProcessUseCase(
	source adapter.TranscriptSource,
	deliverer adapter.Deliverer,
	scheduler adapter.RetryScheduler,
	retryDelay time.Duration,
	logger *zerolog.Logger,
) *processUC {
	l := logger.With().Str("component", "ProcessUC").Logger()
	return &processUC{
		source:     source,
		deliverer:  deliverer,
		scheduler:  scheduler,
		retryDelay: retryDelay,
		log:        &l,
	}
}

func (p *processUC) Process(ctx context.Context, msg *adapter.Message) bool {
	log := p.log.With().Str("message_id", msg.ID).Str("attempt_id", uuid.NewString()).Logger()
	log.Info().Msg("processing message")
	start := time.Now()
	defer func() { metrics.ObserveJobDuration(time.Since(start).Seconds()) }()

	var job model.Job
	if err := json.Unmarshal([]byte(msg.Body), &job); err != nil {
		// Unclassified: leave the message for natural redelivery. A body that
		// never parses will retry until the queue's own policy gives up.
		log.Error().Err(err).Msg("could not parse job body")
		metrics.IncJob(model.OutcomeNone.String())
		return false
	}
	log = log.With().Str("video_id", job.VideoID).Logger()

	segments, err := p.source.Fetch(ctx, job.VideoID, nil)
	if err != nil {
		return p.resolve(ctx, &log, msg, err)
	}

	payload := model.TranscriptPayload{
		Transcript: model.JoinSegments(segments),
		VideoID:    job.VideoID,
		Author:     job.Author,
		Link:       job.Link,
	}
	if err := p.deliverer.Send(ctx, payload); err != nil {
		return p.resolve(ctx, &log, msg, err)
	}

	metrics.IncJob("delivered")
	log.Info().Int("segments", len(segments)).Msg("message processed")
	return true
}

// resolve classifies the failure and acts on the outcome.
func (p *processUC) resolve(ctx context.Context, log *zerolog.Logger, msg *adapter.Message, err error) bool {
	outcome := Classify(err, p.scheduler != nil, p.retryDelay)
	metrics.IncJob(outcome.Kind.String())

	switch outcome.Kind {
	case model.OutcomeAck:
		log.Warn().Err(err).Msg("permanent failure, dropping job")
		return true

	case model.OutcomeRedeliver:
		log.Error().Err(err).Msg("delivery failed, leaving message for redelivery")
		return false

	case model.OutcomeScheduleRetry:
		fireAt := time.Now().Add(outcome.Delay)
		log.Warn().Err(err).Time("fire_at", fireAt).Msg("rescheduling message")
		if schedErr := p.scheduler.ScheduleRedelivery(ctx, msg.Body, fireAt); schedErr != nil {
			// Ack anyway: a dropped retry beats a message stuck in an
			// endless redeliver loop nothing will ever resolve.
			log.Error().Err(schedErr).Msg("could not create redelivery schedule")
		}
		return true

	default:
		log.Error().Err(err).Msg("error processing message")
		return false
	}
}
