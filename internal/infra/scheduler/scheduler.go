package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsscheduler "github.com/aws/aws-sdk-go-v2/service/scheduler"
	"github.com/aws/aws-sdk-go-v2/service/scheduler/types"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"transcript-relay/internal/domain/ports/adapter"
	"transcript-relay/internal/infra/metrics"
)

// api is the slice of the EventBridge Scheduler client we use; narrowed for tests.
type api interface {
	CreateSchedule(ctx context.Context, params *awsscheduler.CreateScheduleInput, optFns ...func(*awsscheduler.Options)) (*awsscheduler.CreateScheduleOutput, error)
}

// EventBridge creates one-shot schedules that re-inject a message body into
// the work queue at a future time and delete themselves after firing.
type EventBridge struct {
	client   api
	queueARN string
	roleARN  string
	log      *zerolog.Logger
}

var _ adapter.RetryScheduler = (*EventBridge)(nil)

func NewEventBridge(client api, queueARN, roleARN string, logger *zerolog.Logger) *EventBridge {
	l := logger.With().Str("component", "EventBridge").Logger()
	return &EventBridge{
		client:   client,
		queueARN: queueARN,
		roleARN:  roleARN,
		log:      &l,
	}
}

// ScheduleRedelivery creates the trigger. Names are ULIDs, which embed the
// creation timestamp and stay unique across concurrently scheduled retries.
func (s *EventBridge) ScheduleRedelivery(ctx context.Context, body string, at time.Time) error {
	name := "one-time-" + ulid.Make().String()
	// EventBridge one-shot expressions take yyyy-MM-ddTHH:mm:ss.
	expression := fmt.Sprintf("at(%s)", at.UTC().Format("2006-01-02T15:04:05"))

	_, err := s.client.CreateSchedule(ctx, &awsscheduler.CreateScheduleInput{
		Name:               aws.String(name),
		ScheduleExpression: aws.String(expression),
		FlexibleTimeWindow: &types.FlexibleTimeWindow{Mode: types.FlexibleTimeWindowModeOff},
		Target: &types.Target{
			Arn:     aws.String(s.queueARN),
			RoleArn: aws.String(s.roleARN),
			Input:   aws.String(body),
		},
		ActionAfterCompletion: types.ActionAfterCompletionDelete,
	})
	if err != nil {
		metrics.IncScheduleCreated("failed")
		return fmt.Errorf("create schedule %s: %w", name, err)
	}

	metrics.IncScheduleCreated("created")
	s.log.Info().Str("schedule", name).Time("fire_at", at).Msg("redelivery scheduled")
	return nil
}
