package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func echoBody(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	w.Write(b)
}

func TestVerifySlackSignature(t *testing.T) {
	body := `{"type":"url_verification","challenge":"abc"}`

	tests := []struct {
		name       string
		secret     string
		at         time.Time
		unsigned   bool
		wantStatus int
	}{
		{"valid", testSecret, time.Now(), false, http.StatusOK},
		{"wrong secret", "not-the-secret", time.Now(), false, http.StatusUnauthorized},
		{"stale timestamp", testSecret, time.Now().Add(-10 * time.Minute), false, http.StatusUnauthorized},
		{"missing headers", testSecret, time.Now(), true, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := &Dependencies{SigningSecret: testSecret}

			req := httptest.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(body))
			if !tt.unsigned {
				sign(req.Header, tt.secret, body, tt.at)
			}
			w := httptest.NewRecorder()

			deps.VerifySlackSignature(echoBody)(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, body, w.Body.String())
			}
		})
	}
}

func TestVerifySlackSignature_TamperedBody(t *testing.T) {
	deps := &Dependencies{SigningSecret: testSecret}

	req := httptest.NewRequest(http.MethodPost, "/slack/events", strings.NewReader(`{"type":"evil"}`))
	sign(req.Header, testSecret, `{"type":"good"}`, time.Now())
	w := httptest.NewRecorder()

	called := false
	deps.VerifySlackSignature(func(w http.ResponseWriter, r *http.Request) { called = true })(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}
