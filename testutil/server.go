package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// RecordedRequest captures one request the mock game master received.
type RecordedRequest struct {
	Method string
	Path   string
	Body   string
}

// MockGM is a fake game-master service backed by httptest. Response
// payloads are raw JSON strings so tests can exercise sparse and
// malformed bodies directly.
type MockGM struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest

	// Payloads per endpoint. Empty string means `{}`.
	SessionPayload   string // GET /api/session/{id} and POST /api/session
	TurnPayload      string // POST /api/gm/turn
	RollPayload      string // POST /api/dice/roll
	CharacterPayload string // POST /api/character
}

// NewMockGM starts a mock game master. The server is shut down when the
// test finishes.
func NewMockGM(t *testing.T) *MockGM {
	t.Helper()

	gm := &MockGM{}
	gm.Server = httptest.NewServer(http.HandlerFunc(gm.handle))
	t.Cleanup(gm.Server.Close)
	return gm
}

// URL returns the mock server's base URL.
func (gm *MockGM) URL() string {
	return gm.Server.URL
}

// Requests returns a copy of every request received so far.
func (gm *MockGM) Requests() []RecordedRequest {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	out := make([]RecordedRequest, len(gm.requests))
	copy(out, gm.requests)
	return out
}

// CountRequests returns how many requests matched the method and path
// prefix.
func (gm *MockGM) CountRequests(method, pathPrefix string) int {
	count := 0
	for _, r := range gm.Requests() {
		if r.Method == method && strings.HasPrefix(r.Path, pathPrefix) {
			count++
		}
	}
	return count
}

// LastRequestBody decodes the most recent request body matching the
// path prefix into out. Fails the test if none matched.
func (gm *MockGM) LastRequestBody(t *testing.T, pathPrefix string, out interface{}) {
	t.Helper()

	var body string
	found := false
	for _, r := range gm.Requests() {
		if strings.HasPrefix(r.Path, pathPrefix) {
			body = r.Body
			found = true
		}
	}
	if !found {
		t.Fatalf("no request recorded for path prefix %s", pathPrefix)
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		t.Fatalf("failed to decode request body %q: %v", body, err)
	}
}

func (gm *MockGM) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	gm.mu.Lock()
	gm.requests = append(gm.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Body:   string(body),
	})
	payload := "{}"
	switch {
	case strings.HasPrefix(r.URL.Path, "/api/session"):
		if gm.SessionPayload != "" {
			payload = gm.SessionPayload
		}
	case r.URL.Path == "/api/gm/turn":
		if gm.TurnPayload != "" {
			payload = gm.TurnPayload
		}
	case r.URL.Path == "/api/dice/roll":
		if gm.RollPayload != "" {
			payload = gm.RollPayload
		}
	case r.URL.Path == "/api/character":
		if gm.CharacterPayload != "" {
			payload = gm.CharacterPayload
		}
	}
	gm.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(payload))
}
