package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cjdenio/slack-club-bank/internal/config"
	"github.com/cjdenio/slack-club-bank/internal/handler"
	"github.com/cjdenio/slack-club-bank/internal/services"
	"github.com/google/uuid"
	"github.com/slack-go/slack"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// One client for every call to the bank.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	apiSource, err := services.NewAPISource(cfg.BankAPIURL, httpClient)
	if err != nil {
		slog.Error("Failed to init APISource", "error", err)
		os.Exit(1)
	}

	source, err := services.NewDataSource(cfg.Backend, cfg.BankAPIURL, cfg.BankWebURL, httpClient)
	if err != nil {
		slog.Error("Failed to init data source", "backend", cfg.Backend, "error", err)
		os.Exit(1)
	}

	slackClient := slack.New(cfg.SlackToken,
		slack.OptionLog(slog.NewLogLogger(slog.Default().Handler(), slog.LevelDebug)),
	)

	deps := &handler.Dependencies{
		Source:        source,
		Directory:     apiSource,
		Slack:         slackClient,
		SigningSecret: cfg.SigningSecret,
		WebURL:        cfg.BankWebURL,
	}

	// Router
	mux := http.NewServeMux()

	mux.HandleFunc("POST /slack/events", deps.VerifySlackSignature(deps.HandleEvents))
	mux.HandleFunc("POST /slack/interactions", deps.VerifySlackSignature(deps.HandleInteractions))

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Wrap mux with logging middleware
	loggedMux := loggingMiddleware(mux)

	slog.Info("Starting server", "port", cfg.Port, "backend", cfg.Backend)
	if err := http.ListenAndServe(":"+cfg.Port, loggedMux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs one line per request. Bodies are not logged since
// Slack payloads carry tokens and user data.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		slog.Debug("incoming request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
			"content_length", r.ContentLength,
			"retry_num", r.Header.Get("X-Slack-Retry-Num"),
		)

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		slog.Info("request completed", "request_id", requestID, "method", r.Method, "path", r.URL.Path, "status", rw.status, "duration", duration)
	})
}
