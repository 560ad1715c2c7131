package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

// Duration is a time.Duration that decodes yaml values like "60s" or "24h".
// A unit suffix is required; bare integers are rejected rather than silently
// read as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

type LogConfig struct {
	Level  string `yaml:"level"`  // trace|debug|info|warn|error
	Format string `yaml:"format"` // json|console
}

type QueueConfig struct {
	URL               string   `yaml:"url"`
	ARN               string   `yaml:"arn"`
	Region            string   `yaml:"region"`
	VisibilityTimeout Duration `yaml:"visibility_timeout"`
	WaitTime          Duration `yaml:"wait_time"`
}

type EndpointConfig struct {
	URL     string   `yaml:"url"`
	APIKey  string   `yaml:"api_key"`
	Timeout Duration `yaml:"timeout"`
}

type SchedulerConfig struct {
	RoleARN    string   `yaml:"role_arn"`
	RetryDelay Duration `yaml:"retry_delay"`
}

type OpsConfig struct {
	Port int `yaml:"port"`
}

type Config struct {
	Log       LogConfig       `yaml:"log"`
	Queue     QueueConfig     `yaml:"queue"`
	Endpoint  EndpointConfig  `yaml:"endpoint"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Ops       OpsConfig       `yaml:"ops"`

	Runtime RuntimeConfig `yaml:"-"`
}

// CanScheduleRetry reports whether deferred redelivery is possible at all.
// Both the scheduler role identity and the queue's own ARN are needed to
// build a trigger that targets the queue; without them the live-stream retry
// degrades to an acknowledge.
func (c *Config) CanScheduleRetry() bool {
	return c.Scheduler.RoleARN != "" && c.Queue.ARN != ""
}

func LoadConfig(path string, dev bool) (*Config, error) {
	var cfg Config
	if b, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Environment overrides, same names the deployment already uses.
	overrideEnv(&cfg.Queue.Region, "AWS_REGION")
	overrideEnv(&cfg.Queue.URL, "SQS_QUEUE_URL")
	overrideEnv(&cfg.Queue.ARN, "SQS_ARN")
	overrideEnv(&cfg.Endpoint.URL, "ENDPOINT_URL")
	overrideEnv(&cfg.Endpoint.APIKey, "ENDPOINT_API_KEY")
	overrideEnv(&cfg.Scheduler.RoleARN, "SCHEDULER_ROLE_ARN")

	// defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Queue.Region == "" {
		cfg.Queue.Region = "us-east-1"
	}
	if cfg.Queue.VisibilityTimeout <= 0 {
		cfg.Queue.VisibilityTimeout = Duration(60 * time.Second)
	}
	if cfg.Queue.WaitTime <= 0 {
		cfg.Queue.WaitTime = Duration(20 * time.Second)
	}
	if cfg.Endpoint.Timeout <= 0 {
		cfg.Endpoint.Timeout = Duration(60 * time.Second)
	}
	if cfg.Scheduler.RetryDelay <= 0 {
		cfg.Scheduler.RetryDelay = Duration(24 * time.Hour)
	}
	if cfg.Ops.Port <= 0 {
		cfg.Ops.Port = 8080
	}

	// Minimal validation
	if cfg.Queue.URL == "" {
		return nil, errors.New("queue.url (SQS_QUEUE_URL) is required")
	}
	if cfg.Endpoint.URL == "" {
		return nil, errors.New("endpoint.url (ENDPOINT_URL) is required")
	}
	if cfg.Endpoint.APIKey == "" {
		return nil, errors.New("endpoint.api_key (ENDPOINT_API_KEY) is required")
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}

func overrideEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
