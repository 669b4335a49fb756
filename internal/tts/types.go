package tts

import (
	"context"
	"errors"
	"fmt"
)

// Gender selects between the voices mapped for a language.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderNeutral Gender = "neutral"
)

// Language identifies the narration language of a request.
type Language string

const (
	LanguageLatamSpanish Language = "es-latam"
	LanguageEnglish      Language = "en"
)

// NarrationRequest is the input to a synthesis call. Text is required;
// Gender and Language default to neutral and es-latam when empty.
type NarrationRequest struct {
	Text     string   `json:"text"`
	Gender   Gender   `json:"gender,omitempty"`
	Language Language `json:"contentLanguage,omitempty"`
}

// RawAudioPayload is the inline audio extracted from a generate-content
// response, held in memory only for the duration of one request.
type RawAudioPayload struct {
	Data     []byte
	MIMEType string
}

// SynthesisResult is the terminal output of a synthesis call.
// AudioContent marshals to base64 in JSON responses.
type SynthesisResult struct {
	AudioContent []byte `json:"audioContent"`
	MimeType     string `json:"mimeType"`
	Voice        string `json:"voice"`
	Language     string `json:"language"`
}

// Synthesizer converts narration text into audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, req NarrationRequest) (*SynthesisResult, error)
}

// ErrEmptyText is returned when a request carries no text. It is raised
// before any upstream call is attempted.
var ErrEmptyText = errors.New("text is required")

// ErrNoAudio is returned when an upstream response carries no inline
// audio part. It consumes a retry attempt like any other failure.
var ErrNoAudio = errors.New("upstream response contains no audio")

// ErrorCategory is the user-facing classification of a synthesis failure.
type ErrorCategory string

const (
	// CategoryNetwork covers connection-level failures reaching the
	// synthesis service.
	CategoryNetwork ErrorCategory = "network"
	// CategoryTimeout covers attempts aborted by an expired deadline.
	CategoryTimeout ErrorCategory = "timeout"
	// CategoryUpstream carries the raw upstream message through.
	CategoryUpstream ErrorCategory = "upstream"
)

// SynthesisError is the failure surfaced after the retry budget is
// exhausted, rewritten into one of three user-facing categories.
type SynthesisError struct {
	Category ErrorCategory
	Message  string
	Err      error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesis failed (%s): %s", e.Category, e.Message)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}
