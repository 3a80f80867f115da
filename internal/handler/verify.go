package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/slack-go/slack"
)

// maxBodyBytes bounds what we are willing to hash for signature checks.
const maxBodyBytes = 1 << 20

// VerifySlackSignature rejects requests that were not signed with the app's
// signing secret, or whose timestamp is more than five minutes off. The body
// is restored for the next handler.
func (d *Dependencies) VerifySlackSignature(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			slog.Error("failed to read request body", "error", err)
			WriteError(w, http.StatusBadRequest, "Failed to read request body")
			return
		}

		sv, err := slack.NewSecretsVerifier(r.Header, d.SigningSecret)
		if err != nil {
			slog.Warn("rejected unsigned request", "path", r.URL.Path, "error", err)
			WriteError(w, http.StatusUnauthorized, "Invalid signature")
			return
		}
		if _, err := sv.Write(body); err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to verify signature")
			return
		}
		if err := sv.Ensure(); err != nil {
			slog.Warn("rejected request with bad signature", "path", r.URL.Path)
			WriteError(w, http.StatusUnauthorized, "Invalid signature")
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next(w, r)
	}
}
