package adapter

import (
	"context"

	"transcript-relay/internal/domain/model"
)

// FetchOptions narrows a transcript fetch to a specific caption language.
type FetchOptions struct {
	Lang string
}

// TranscriptSource resolves a video id or URL and returns its caption lines
// in temporal order. A nil opts selects the first track in upstream order.
type TranscriptSource interface {
	Fetch(ctx context.Context, videoIDOrURL string, opts *FetchOptions) ([]model.TranscriptSegment, error)
}
