package usecase

import (
	"errors"
	"strings"
	"time"

	"transcript-relay/internal/domain"
	"transcript-relay/internal/domain/model"
)

// Classify partitions a failed processing attempt into an outcome. It is a
// pure function of the error and the scheduling configuration; acting on the
// outcome is the controller's job.
//
// The partition: permanent failures are dropped (ack), transient resource
// failures lean on the queue's own redelivery, and the one failure with a
// known future resolution (a live stream that has not started) gets an
// explicit scheduled wake-up. Everything else stays unclassified and falls
// back to redelivery via visibility timeout expiry.
func Classify(err error, canScheduleRetry bool, retryDelay time.Duration) model.Outcome {
	var deliveryErr *domain.DeliveryError
	if errors.As(err, &deliveryErr) {
		return model.Outcome{Kind: model.OutcomeRedeliver}
	}

	var disabledErr *domain.TranscriptsDisabledError
	if errors.As(err, &disabledErr) {
		return model.Outcome{Kind: model.OutcomeAck}
	}

	var statusErr *domain.VideoStatusError
	if errors.As(err, &statusErr) {
		if strings.Contains(statusErr.Reason, "Video unavailable") {
			return model.Outcome{Kind: model.OutcomeAck}
		}
		if statusErr.Status == domain.PlayabilityStatusLiveOffline {
			if canScheduleRetry {
				return model.Outcome{Kind: model.OutcomeScheduleRetry, Delay: retryDelay}
			}
			// No scheduler role or queue ARN configured; there is no way to
			// redeliver at a known time, so drop instead of spinning.
			return model.Outcome{Kind: model.OutcomeAck}
		}
	}

	return model.Outcome{Kind: model.OutcomeNone}
}
