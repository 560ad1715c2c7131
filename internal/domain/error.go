package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidVideoReference means the input was neither an 11 character
	// video id nor a recognized YouTube URL shape.
	ErrInvalidVideoReference = errors.New("impossible to retrieve youtube video id")

	// ErrTooManyRequests means YouTube is captcha-walling this IP.
	ErrTooManyRequests = errors.New("youtube requires solving a captcha to continue")
)

// PlayabilityStatusLiveOffline is the playability status YouTube reports for a
// scheduled live broadcast that has not started yet.
const PlayabilityStatusLiveOffline = "LIVE_STREAM_OFFLINE"

// VideoStatusError is returned when the player response playability status is
// anything other than "OK". Status carries the raw upstream value, Reason the
// optional human readable explanation.
type VideoStatusError struct {
	VideoID string
	Status  string
	Reason  string
}

func (e *VideoStatusError) Error() string {
	return fmt.Sprintf("the video %s response is %s. %s", e.VideoID, e.Status, e.Reason)
}

// TranscriptsDisabledError means the player response carries no captions
// section at all; the video will never have a transcript.
type TranscriptsDisabledError struct {
	VideoID string
}

func (e *TranscriptsDisabledError) Error() string {
	return fmt.Sprintf("transcript is disabled on this video (%s)", e.VideoID)
}

// NoCaptionsDataError means the captions section lacks a tracklist renderer.
type NoCaptionsDataError struct {
	VideoID string
}

func (e *NoCaptionsDataError) Error() string {
	return fmt.Sprintf("no captions data found for this video (%s)", e.VideoID)
}

// NoTranscriptsAvailableError means the tracklist renderer carries no caption
// tracks.
type NoTranscriptsAvailableError struct {
	VideoID string
}

func (e *NoTranscriptsAvailableError) Error() string {
	return fmt.Sprintf("no transcripts are available for this video (%s)", e.VideoID)
}

// LanguageNotAvailableError means a language was requested but no caption
// track matches it exactly.
type LanguageNotAvailableError struct {
	Lang      string
	Available []string
	VideoID   string
}

func (e *LanguageNotAvailableError) Error() string {
	return fmt.Sprintf("no transcripts are available in %s for this video (%s), available languages: %s",
		e.Lang, e.VideoID, strings.Join(e.Available, ", "))
}

// NotAvailableError means the caption document fetch came back with a
// non-success HTTP status.
type NotAvailableError struct {
	VideoID string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("no transcripts are available for this video (%s)", e.VideoID)
}

// DeliveryError is returned by the downstream deliverer when the endpoint
// responded with a non-200 status or the 60 second delivery timeout fired.
// Transport level failures are NOT wrapped in this type so they fall through
// to the queue's natural redelivery instead.
type DeliveryError struct {
	StatusCode int
	Timeout    bool
}

func (e *DeliveryError) Error() string {
	if e.Timeout {
		return "delivery to endpoint timed out"
	}
	return fmt.Sprintf("endpoint responded with status %d", e.StatusCode)
}
