package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/alanquantic/APIgeminiTTSPRO/internal/config"
	"github.com/alanquantic/APIgeminiTTSPRO/internal/observability"
	"github.com/alanquantic/APIgeminiTTSPRO/internal/tts"
)

// ServiceName identifies this service in status payloads and logs
const ServiceName = "gemini-tts-api"

// Server wires the HTTP handlers to a synthesizer
type Server struct {
	cfg    *config.Config
	synth  tts.Synthesizer
	logger zerolog.Logger
}

// NewServer creates the HTTP layer over a synthesizer
func NewServer(cfg *config.Config, synth tts.Synthesizer) *Server {
	return &Server{
		cfg:    cfg,
		synth:  synth,
		logger: observability.GetLogger().With().Str("component", "api").Logger(),
	}
}

// Routes builds the full handler chain: mux plus CORS, request ID,
// access log and metrics middleware
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleStatus)
	mux.HandleFunc("/health", observability.StatusHandler(ServiceName, s.cfg.GeminiModel))
	mux.HandleFunc("/ready", observability.ReadinessHandler(ServiceName, s.readinessChecks()))
	mux.HandleFunc("/synthesize", s.handleSynthesize)
	mux.HandleFunc("/voices", s.handleVoices)

	if s.cfg.MetricsEnabled {
		mux.Handle("/metrics", promhttp.Handler())
	}

	return CORS(RequestID(AccessLog(s.logger, mux)))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	// "/" is the mux catch-all; anything else is an unknown route
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	observability.StatusHandler(ServiceName, s.cfg.GeminiModel)(w, r)
}

func (s *Server) handleSynthesize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req tts.NarrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusBadRequest, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	result, err := s.synth.Synthesize(r.Context(), req)
	if err != nil {
		if errors.Is(err, tts.ErrEmptyText) {
			writeError(w, http.StatusBadRequest, tts.ErrEmptyText.Error())
			return
		}

		logger := observability.WithRequestID(RequestIDFromContext(r.Context()))
		logger.Error().Err(err).Msg("Synthesis failed")

		var synthErr *tts.SynthesisError
		if errors.As(err, &synthErr) {
			writeError(w, http.StatusInternalServerError, synthErr.Message)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// voicesResponse is the /voices listing payload
type voicesResponse struct {
	Model              string                       `json:"model"`
	Voices             map[string]map[string]string `json:"voices"`
	Descriptions       map[string]string            `json:"descriptions"`
	AllAvailableVoices []string                     `json:"allAvailableVoices"`
}

func (s *Server) handleVoices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET only")
		return
	}

	writeJSON(w, http.StatusOK, voicesResponse{
		Model:              s.cfg.GeminiModel,
		Voices:             tts.VoiceTable(),
		Descriptions:       tts.VoiceDescriptions,
		AllAvailableVoices: tts.AllVoices,
	})
}

// readinessChecks reports whether the synthesizer is wired
func (s *Server) readinessChecks() map[string]observability.HealthCheckFunc {
	return map[string]observability.HealthCheckFunc{
		"gemini": func(ctx context.Context) (bool, error) {
			if s.synth == nil {
				return false, errors.New("synthesizer not configured")
			}
			return true, nil
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
