package tts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/alanquantic/APIgeminiTTSPRO/internal/audio"
	"github.com/alanquantic/APIgeminiTTSPRO/internal/config"
	"github.com/alanquantic/APIgeminiTTSPRO/internal/observability"
	"github.com/alanquantic/APIgeminiTTSPRO/internal/resilience"
)

// generateFunc issues one generate-content attempt and returns the
// inline audio payload. Swappable in tests to avoid the network.
type generateFunc func(ctx context.Context, prompt, voice string) (*RawAudioPayload, error)

// GeminiClient implements Synthesizer against the Gemini
// generate-content API with a prebuilt-voice speech config.
type GeminiClient struct {
	model    string
	timeout  time.Duration
	retry    *resilience.RetryConfig
	generate generateFunc
	logger   zerolog.Logger
}

// NewGeminiClient creates a synthesizer backed by the Gemini API. The
// underlying client is concurrency-safe and reused across requests.
func NewGeminiClient(ctx context.Context, cfg *config.Config) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &GeminiClient{
		model:   cfg.GeminiModel,
		timeout: cfg.SynthesisTimeoutDuration(),
		retry: &resilience.RetryConfig{
			MaxAttempts:       cfg.RetryMaxAttempts,
			InitialBackoff:    cfg.RetryDelayDuration(),
			MaxBackoff:        cfg.RetryDelayDuration(),
			BackoffMultiplier: 1.0,
		},
		logger: observability.GetLogger().With().Str("component", "gemini").Logger(),
	}

	c.generate = func(ctx context.Context, prompt, voice string) (*RawAudioPayload, error) {
		resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
			ResponseModalities: []string{"AUDIO"},
			Temperature:        genai.Ptr[float32](1),
			SpeechConfig: &genai.SpeechConfig{
				VoiceConfig: &genai.VoiceConfig{
					PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
						VoiceName: voice,
					},
				},
			},
		})
		if err != nil {
			return nil, err
		}
		return extractInlineAudio(resp)
	}

	return c, nil
}

// Synthesize converts narration text into audio. Empty text fails before
// any upstream call; every other failure consumes the retry budget
// uniformly, and the last error is rewritten into a user-facing
// category. Raw linear16 payloads are wrapped into a WAV container.
func (c *GeminiClient) Synthesize(ctx context.Context, req NarrationRequest) (*SynthesisResult, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyText
	}

	voice, language := ResolveVoice(req.Language, req.Gender)
	prompt := StylePrompt(language) + text

	start := time.Now()
	attempt := 0
	var payload *RawAudioPayload

	err := resilience.Retry(ctx, func(ctx context.Context) error {
		attempt++
		actx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		p, err := c.generate(actx, prompt, voice)
		observability.RecordUpstreamAttempt(err == nil)
		if err != nil {
			c.logger.Warn().
				Err(err).
				Int("attempt", attempt).
				Str("voice", voice).
				Msg("Synthesis attempt failed")
			return err
		}

		payload = p
		return nil
	}, c.retry, nil)

	if err != nil {
		observability.RecordSynthesis(false, time.Since(start))
		return nil, rewriteError(err)
	}

	data, mimeType := payload.Data, payload.MIMEType
	if isLinear16(mimeType) {
		data = audio.EncodeWAV(data, audio.GeminiSampleRate, audio.GeminiChannels, audio.GeminiBitsPerSample)
		mimeType = audio.MIMETypeWAV
	}

	observability.RecordSynthesis(true, time.Since(start))
	observability.RecordAudioOut(len(data), audio.Duration(len(payload.Data),
		audio.GeminiSampleRate, audio.GeminiChannels, audio.GeminiBitsPerSample))

	c.logger.Debug().
		Int("attempts", attempt).
		Str("voice", voice).
		Str("mime_type", mimeType).
		Int("bytes", len(data)).
		Msg("Synthesis succeeded")

	return &SynthesisResult{
		AudioContent: data,
		MimeType:     mimeType,
		Voice:        voice,
		Language:     string(language),
	}, nil
}

// extractInlineAudio returns the first candidate part carrying inline
// audio data, or ErrNoAudio when the response has none.
func extractInlineAudio(resp *genai.GenerateContentResponse) (*RawAudioPayload, error) {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &RawAudioPayload{
					Data:     part.InlineData.Data,
					MIMEType: part.InlineData.MIMEType,
				}, nil
			}
		}
	}
	return nil, ErrNoAudio
}

// isLinear16 reports whether a MIME type declares raw linear16 PCM,
// e.g. "audio/L16;codec=pcm;rate=24000".
func isLinear16(mimeType string) bool {
	return strings.Contains(strings.ToUpper(mimeType), "L16")
}

// rewriteError maps the last attempt's failure to one of three
// user-facing categories: connection failure, timeout, or the raw
// upstream message.
func rewriteError(err error) *SynthesisError {
	switch {
	case resilience.IsNetworkError(err):
		return &SynthesisError{
			Category: CategoryNetwork,
			Message:  "connection error with the synthesis service",
			Err:      err,
		}
	case resilience.IsTimeoutError(err):
		return &SynthesisError{
			Category: CategoryTimeout,
			Message:  "synthesis request timed out",
			Err:      err,
		}
	default:
		return &SynthesisError{
			Category: CategoryUpstream,
			Message:  err.Error(),
			Err:      err,
		}
	}
}
