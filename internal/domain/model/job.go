package model

// Job is one unit of work: a video to transcribe and forward downstream.
// It arrives as the queue message body and is never mutated; on deferred
// redelivery the original body is re-injected verbatim.
type Job struct {
	VideoID string `json:"videoId"`
	Author  string `json:"author"`
	Link    string `json:"link"`
}

// TranscriptPayload is the body POSTed to the downstream endpoint.
type TranscriptPayload struct {
	Transcript string `json:"transcript"`
	VideoID    string `json:"videoId"`
	Author     string `json:"author"`
	Link       string `json:"link"`
}
