package adapter

import (
	"context"

	"transcript-relay/internal/domain/model"
)

// Deliverer forwards an extracted transcript to the downstream endpoint.
// A non-200 response or a delivery timeout is reported as
// *domain.DeliveryError; transport failures are returned as-is.
type Deliverer interface {
	Send(ctx context.Context, payload model.TranscriptPayload) error
}
