package sqs

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/rs/zerolog"

	"transcript-relay/internal/domain/ports/adapter"
)

// api is the slice of the SQS client the queue needs; narrowed for tests.
type api interface {
	ReceiveMessage(ctx context.Context, params *awssqs.ReceiveMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *awssqs.DeleteMessageInput, optFns ...func(*awssqs.Options)) (*awssqs.DeleteMessageOutput, error)
}

// Queue receives one message at a time from an SQS queue. Batch size is fixed
// at 1: the worker fully resolves a message before fetching the next.
type Queue struct {
	client     api
	url        string
	visibility int32
	waitTime   int32
	log        *zerolog.Logger
}

var _ adapter.Queue = (*Queue)(nil)

func NewQueue(client api, url string, visibility, waitTime time.Duration, logger *zerolog.Logger) *Queue {
	l := logger.With().Str("component", "SQSQueue").Logger()
	return &Queue{
		client:     client,
		url:        url,
		visibility: int32(visibility / time.Second),
		waitTime:   int32(waitTime / time.Second),
		log:        &l,
	}
}

// Receive long-polls for a single message. Returns nil when the poll window
// elapsed without a message.
func (q *Queue) Receive(ctx context.Context) (*adapter.Message, error) {
	out, err := q.client.ReceiveMessage(ctx, &awssqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.url),
		MaxNumberOfMessages: 1,
		VisibilityTimeout:   q.visibility,
		WaitTimeSeconds:     q.waitTime,
	})
	if err != nil {
		return nil, fmt.Errorf("receive message: %w", err)
	}
	if len(out.Messages) == 0 {
		return nil, nil
	}

	m := out.Messages[0]
	return &adapter.Message{
		ID:            aws.ToString(m.MessageId),
		Body:          aws.ToString(m.Body),
		ReceiptHandle: aws.ToString(m.ReceiptHandle),
	}, nil
}

// Delete acknowledges a message so the queue never redelivers it.
func (q *Queue) Delete(ctx context.Context, msg *adapter.Message) error {
	_, err := q.client.DeleteMessage(ctx, &awssqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.url),
		ReceiptHandle: aws.String(msg.ReceiptHandle),
	})
	if err != nil {
		return fmt.Errorf("delete message %s: %w", msg.ID, err)
	}
	return nil
}
