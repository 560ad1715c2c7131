package sqs

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"transcript-relay/internal/domain/ports/adapter"
)

// Handler processes one received message and reports whether it was handled.
// Handled messages are deleted; unhandled ones become visible again after the
// visibility timeout and the queue redelivers them.
type Handler interface {
	Process(ctx context.Context, msg *adapter.Message) bool
}

// Consumer is the fetch loop: receive one message, hand it to the handler,
// resolve it, repeat. Receive failures back off exponentially so a broken
// queue connection does not spin; the backoff resets on the first success.
type Consumer struct {
	queue   adapter.Queue
	handler Handler
	log     *zerolog.Logger
}

func NewConsumer(queue adapter.Queue, handler Handler, logger *zerolog.Logger) *Consumer {
	l := logger.With().Str("component", "Consumer").Logger()
	return &Consumer{
		queue:   queue,
		handler: handler,
		log:     &l,
	}
}

// Run blocks until ctx is cancelled. An in-flight message is always processed
// to completion before the loop exits.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info().Msg("consumer started")
	defer c.log.Info().Msg("consumer stopped")

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 0 // keep retrying until shutdown

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msg, err := c.queue.Receive(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			wait := bo.NextBackOff()
			c.log.Error().Err(err).Dur("retry_in", wait).Msg("receive failed")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
			continue
		}
		bo.Reset()

		if msg == nil {
			continue // empty poll window
		}

		// Processing and the ack run on a detached context so shutdown
		// cannot abort an in-flight message; the loop exits on the next
		// iteration instead.
		pctx := context.WithoutCancel(ctx)
		if handled := c.handler.Process(pctx, msg); handled {
			if err := c.queue.Delete(pctx, msg); err != nil {
				c.log.Error().Err(err).Str("message_id", msg.ID).Msg("delete failed")
			}
		}
	}
}
