package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"arduchat/internal/config"
	"arduchat/internal/llm"
)

// Server is the REST API server.
type Server struct {
	cfg    *config.Config
	router *llm.Router
	log    logr.Logger
}

// NewServer creates a new API server.
func NewServer(cfg *config.Config, router *llm.Router, log logr.Logger) *Server {
	return &Server{
		cfg:    cfg,
		router: router,
		log:    log,
	}
}

// Handler builds the HTTP handler with all routes and middleware. It is
// separate from Start so tests can exercise the full stack via httptest.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(loggingMiddleware(s.log))

	r.HandleFunc("/", s.root).Methods("GET")
	r.HandleFunc("/health", s.health).Methods("GET")
	r.HandleFunc("/providers", s.listProviders).Methods("GET")
	r.HandleFunc("/chat", s.chat).Methods("POST")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// CORS wraps the router rather than going through r.Use: mux only runs
	// route middleware after a route matches, which would leave a browser's
	// OPTIONS preflight (no OPTIONS routes are registered) answered with a
	// bare 405 and no CORS headers.
	return corsMiddleware(r)
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("listening", "address", s.cfg.ListenAddr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// --- Request / Response shapes ---

type chatRequest struct {
	Message             string        `json:"message"`
	Provider            string        `json:"provider"`
	Model               string        `json:"model"`
	ConversationHistory []llm.Message `json:"conversation_history"`
}

type chatResponse struct {
	Response string `json:"response"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

type providerEntry struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	DefaultModel   string `json:"default_model"`
	RequiresAPIKey bool   `json:"requires_api_key"`
}

// --- Handlers ---

// root is the liveness marker.
func (s *Server) root(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":             "Arduino Chatbot API is running",
		"available_providers": llm.KnownProviders,
	})
}

// health reports per-provider key presence. No network calls are made.
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"providers": s.router.Status(),
	})
}

// listProviders returns the static provider catalog with default models.
func (s *Server) listProviders(w http.ResponseWriter, _ *http.Request) {
	infos := s.router.Providers()
	entries := make([]providerEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, providerEntry{
			Name:           info.Name,
			Description:    info.Description,
			DefaultModel:   info.DefaultModel,
			RequiresAPIKey: true,
		})
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"providers": entries})
}

// chat is the main endpoint: resolve the provider, prepend the system
// prompt, clamp history, make exactly one vendor call.
func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		respondError(w, http.StatusBadRequest, "message must not be empty")
		return
	}

	name := req.Provider
	if name == "" {
		name = s.router.DefaultProvider()
	}

	provider, err := s.router.Resolve(name)
	if err != nil {
		s.respondChatError(w, err)
		return
	}

	messages := s.buildMessages(req)

	start := time.Now()
	result, err := provider.Chat(r.Context(), messages, req.Model)
	chatDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		s.log.Error(err, "chat call failed", "provider", name)
		s.respondChatError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, chatResponse{
		Response: result.Content,
		Provider: name,
		Model:    result.Model,
	})
}

// buildMessages assembles the provider payload: the fixed system prompt,
// then the most recent history turns, then the new question. History is
// clamped to avoid blowing the vendor's context window on long sessions.
func (s *Server) buildMessages(req chatRequest) []llm.Message {
	history := req.ConversationHistory
	if limit := s.cfg.Chat.MaxHistoryMessages; limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: arduinoSystemPrompt})
	messages = append(messages, history...)
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: req.Message})
	return messages
}

// respondChatError translates provider-layer error kinds into HTTP statuses.
// Every error is request-local; nothing here is fatal to the process.
func (s *Server) respondChatError(w http.ResponseWriter, err error) {
	var unknown *llm.UnknownProviderError
	var unavailable *llm.UnavailableError
	var upstream *llm.UpstreamError
	var transport *llm.TransportError

	switch {
	case errors.As(err, &unknown):
		respondError(w, http.StatusBadRequest, unknown.Error())
	case errors.As(err, &unavailable):
		respondError(w, http.StatusBadRequest, unavailable.Error())
	case errors.As(err, &upstream):
		respondError(w, http.StatusBadGateway, upstream.Error())
	case errors.As(err, &transport):
		respondError(w, http.StatusGatewayTimeout, transport.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

// --- Helpers ---

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func respondError(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, map[string]string{"detail": detail})
}

// --- Middleware ---

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func loggingMiddleware(log logr.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := uuid.NewString()
			w.Header().Set("X-Request-ID", requestID)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			requestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rec.status)).Inc()
			log.Info("request",
				"id", requestID,
				"method", r.Method,
				"uri", r.RequestURI,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}

// corsMiddleware mirrors the permissive policy the frontend expects:
// any origin, credentials allowed, all methods and headers.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
