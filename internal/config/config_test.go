package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults and validates required fields", func(t *testing.T) {
		path := writeConfig(t, `
queue:
  url: https://sqs.us-east-1.amazonaws.com/1/jobs
endpoint:
  url: https://example.com/ingest
  api_key: secret
`)
		cfg, err := LoadConfig(path, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Queue.VisibilityTimeout != Duration(60*time.Second) {
			t.Errorf("visibility timeout = %v", cfg.Queue.VisibilityTimeout)
		}
		if cfg.Scheduler.RetryDelay != Duration(24*time.Hour) {
			t.Errorf("retry delay = %v", cfg.Scheduler.RetryDelay)
		}
		if cfg.Queue.Region != "us-east-1" {
			t.Errorf("region = %q", cfg.Queue.Region)
		}
		if cfg.CanScheduleRetry() {
			t.Error("scheduling must be off without role and queue ARNs")
		}
	})

	t.Run("durations decode from unit strings", func(t *testing.T) {
		path := writeConfig(t, `
queue:
  url: https://sqs.us-east-1.amazonaws.com/1/jobs
  visibility_timeout: 90s
endpoint:
  url: https://example.com/ingest
  api_key: secret
  timeout: 30s
scheduler:
  retry_delay: 48h
`)
		cfg, err := LoadConfig(path, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Queue.VisibilityTimeout != Duration(90*time.Second) {
			t.Errorf("visibility timeout = %v", cfg.Queue.VisibilityTimeout)
		}
		if cfg.Endpoint.Timeout != Duration(30*time.Second) {
			t.Errorf("endpoint timeout = %v", cfg.Endpoint.Timeout)
		}
		if cfg.Scheduler.RetryDelay != Duration(48*time.Hour) {
			t.Errorf("retry delay = %v", cfg.Scheduler.RetryDelay)
		}
	})

	t.Run("unitless duration is rejected", func(t *testing.T) {
		path := writeConfig(t, `
queue:
  url: https://sqs.us-east-1.amazonaws.com/1/jobs
  visibility_timeout: 90
endpoint:
  url: https://example.com/ingest
  api_key: secret
`)
		if _, err := LoadConfig(path, false); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("missing endpoint api key is fatal", func(t *testing.T) {
		path := writeConfig(t, `
queue:
  url: https://sqs.us-east-1.amazonaws.com/1/jobs
endpoint:
  url: https://example.com/ingest
`)
		if _, err := LoadConfig(path, false); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("environment overrides win over yaml", func(t *testing.T) {
		path := writeConfig(t, `
queue:
  url: https://sqs.us-east-1.amazonaws.com/1/jobs
endpoint:
  url: https://example.com/ingest
  api_key: from-yaml
`)
		t.Setenv("ENDPOINT_API_KEY", "from-env")
		t.Setenv("SQS_ARN", "arn:aws:sqs:us-east-1:1:jobs")
		t.Setenv("SCHEDULER_ROLE_ARN", "arn:aws:iam::1:role/sched")

		cfg, err := LoadConfig(path, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Endpoint.APIKey != "from-env" {
			t.Errorf("api key = %q", cfg.Endpoint.APIKey)
		}
		if !cfg.CanScheduleRetry() {
			t.Error("scheduling must be on with both identities configured")
		}
	})
}
