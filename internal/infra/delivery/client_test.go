package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"transcript-relay/internal/domain"
	"transcript-relay/internal/domain/model"
)

func testLogger() *zerolog.Logger {
	l := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	return &l
}

func TestSend(t *testing.T) {
	t.Run("posts json payload with api key header", func(t *testing.T) {
		var gotKey, gotContentType string
		var gotBody model.TranscriptPayload
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotKey = r.Header.Get("X-Api-Key")
			gotContentType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := NewClient(srv.Client(), srv.URL, "secret", time.Minute, testLogger())
		err := c.Send(context.Background(), model.TranscriptPayload{
			Transcript: "hello world",
			VideoID:    "abc12345678",
			Author:     "X",
			Link:       "https://youtu.be/abc12345678",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotKey != "secret" {
			t.Errorf("X-Api-Key = %q", gotKey)
		}
		if gotContentType != "application/json" {
			t.Errorf("Content-Type = %q", gotContentType)
		}
		if gotBody.Transcript != "hello world" || gotBody.VideoID != "abc12345678" {
			t.Errorf("body = %+v", gotBody)
		}
	})

	t.Run("non 200 becomes DeliveryError with status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewClient(srv.Client(), srv.URL, "secret", time.Minute, testLogger())
		err := c.Send(context.Background(), model.TranscriptPayload{VideoID: "abc12345678"})

		var deliveryErr *domain.DeliveryError
		if !errors.As(err, &deliveryErr) {
			t.Fatalf("expected DeliveryError, got %v", err)
		}
		if deliveryErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("status = %d", deliveryErr.StatusCode)
		}
		if deliveryErr.Timeout {
			t.Error("timeout flag should not be set")
		}
	})

	t.Run("timeout becomes DeliveryError with timeout flag", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer srv.Close()
		defer close(release)

		c := NewClient(srv.Client(), srv.URL, "secret", 50*time.Millisecond, testLogger())
		err := c.Send(context.Background(), model.TranscriptPayload{VideoID: "abc12345678"})

		var deliveryErr *domain.DeliveryError
		if !errors.As(err, &deliveryErr) {
			t.Fatalf("expected DeliveryError, got %v", err)
		}
		if !deliveryErr.Timeout {
			t.Error("expected timeout flag")
		}
	})
}
