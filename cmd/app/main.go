package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsscheduler "github.com/aws/aws-sdk-go-v2/service/scheduler"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"transcript-relay/internal/config"
	"transcript-relay/internal/domain/ports/adapter"
	"transcript-relay/internal/infra/delivery"
	"transcript-relay/internal/infra/logging"
	"transcript-relay/internal/infra/metrics"
	"transcript-relay/internal/infra/scheduler"
	"transcript-relay/internal/infra/sqs"
	"transcript-relay/internal/infra/web"
	"transcript-relay/internal/infra/youtube"
	"transcript-relay/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "development mode (console logs)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.MustRegister()
	logger.Info().
		Str("queue", cfg.Queue.URL).
		Str("endpoint", cfg.Endpoint.URL).
		Msg("starting transcript relay")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---- AWS clients ----
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Queue.Region))
	if err != nil {
		logger.Fatal().Err(err).Msg("aws config")
	}

	// ---- Adapters ----
	queue := sqs.NewQueue(awssqs.NewFromConfig(awsCfg), cfg.Queue.URL, time.Duration(cfg.Queue.VisibilityTimeout), time.Duration(cfg.Queue.WaitTime), logger)
	source := youtube.NewClient(nil, logger)
	deliverer := delivery.NewClient(nil, cfg.Endpoint.URL, cfg.Endpoint.APIKey, time.Duration(cfg.Endpoint.Timeout), logger)

	var retrySched adapter.RetryScheduler
	if cfg.CanScheduleRetry() {
		retrySched = scheduler.NewEventBridge(awsscheduler.NewFromConfig(awsCfg), cfg.Queue.ARN, cfg.Scheduler.RoleARN, logger)
	} else {
		logger.Warn().Msg("scheduler role or queue ARN not configured; live stream retries degrade to drop")
	}

	// ---- Pipeline ----
	uc := usecase.NewProcessUseCase(source, deliverer, retrySched, time.Duration(cfg.Scheduler.RetryDelay), logger)
	consumer := sqs.NewConsumer(queue, uc, logger)
	ops := web.NewServer(cfg.Ops.Port, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return consumer.Run(gctx) })
	g.Go(func() error { return ops.Run(gctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("worker exited")
	}
	logger.Info().Msg("shutdown complete")
}
