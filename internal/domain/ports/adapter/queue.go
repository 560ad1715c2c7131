package adapter

import "context"

// Message is one received queue message. Body is the raw serialized Job.
type Message struct {
	ID            string
	Body          string
	ReceiptHandle string
}

// Queue is the receive-one-at-a-time message source. Receive blocks up to the
// configured long-poll window and returns nil when no message arrived.
// Messages not passed to Delete become visible again after the queue's
// visibility timeout and are redelivered.
type Queue interface {
	Receive(ctx context.Context) (*Message, error)
	Delete(ctx context.Context, msg *Message) error
}
