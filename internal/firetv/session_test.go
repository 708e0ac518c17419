package firetv

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	fterrors "github.com/0w0mewo/firetv-cli/internal/firetv/errors"
	"github.com/0w0mewo/firetv-cli/internal/models"
)

// newTestSession points a session at an httptest TLS server, which
// conveniently serves a self-signed cert just like the real device.
func newTestSession(t *testing.T, handler http.Handler) *Session {
	t.Helper()

	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("Failed to parse test server url: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("Failed to parse test server port: %v", err)
	}

	sess := NewSession(u.Hostname())
	sess.port = port

	return sess
}

func TestRequestFixedHeaders(t *testing.T) {
	var got http.Header
	sess := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))

	err := sess.request(http.MethodGet, "/v1/FireTV/status", false, nil, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	tests := []struct {
		header   string
		expected string
	}{
		{"Content-Type", "application/json; charset=utf-8"},
		{"Accept", "*/*"},
		{"x-api-key", "0987654321"},
		{"User-Agent", "FireTV-Go/1.0"},
	}
	for _, tt := range tests {
		if got.Get(tt.header) != tt.expected {
			t.Errorf("header %s = %q; want %q", tt.header, got.Get(tt.header), tt.expected)
		}
	}

	if got.Get("x-amzn-request-id") == "" {
		t.Error("expected a request id header")
	}
	if got.Get("x-client-token") != "" {
		t.Error("unauthenticated request must not carry a token")
	}
}

func TestRequestIDFreshPerCall(t *testing.T) {
	ids := make([]string, 0, 2)
	sess := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get("x-amzn-request-id"))
	}))

	for i := 0; i < 2; i++ {
		if err := sess.request(http.MethodGet, "/", false, nil, nil); err != nil {
			t.Fatalf("request failed: %v", err)
		}
	}

	if len(ids) != 2 || ids[0] == "" || ids[0] == ids[1] {
		t.Errorf("expected two distinct request ids, got %v", ids)
	}
}

func TestRequestAttachesToken(t *testing.T) {
	var got string
	sess := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("x-client-token")
	}))
	sess.token = "token-abc"

	err := sess.request(http.MethodGet, "/", true, nil, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if got != "token-abc" {
		t.Errorf("x-client-token = %q; want token-abc", got)
	}
}

func TestRequestNonSuccessStatus(t *testing.T) {
	sess := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("denied"))
	}))

	err := sess.request(http.MethodGet, "/", false, nil, nil)

	var terr *fterrors.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if terr.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d; want %d", terr.StatusCode, http.StatusForbidden)
	}
	if terr.Body != "denied" {
		t.Errorf("Body = %q; want denied", terr.Body)
	}
}

func TestRequestMalformedBody(t *testing.T) {
	sess := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))

	var out map[string]any
	err := sess.request(http.MethodGet, "/v1/FireTV/status", false, nil, &out)

	var perr *fterrors.ProtocolError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
}

func TestRequestEmptyBodyIsNotAnError(t *testing.T) {
	sess := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var out map[string]any
	err := sess.request(http.MethodGet, "/", false, nil, &out)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected untouched output, got %v", out)
	}
}

func TestRequestConnectionFailure(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	u, _ := url.Parse(srv.URL)
	port, _ := strconv.Atoi(u.Port())
	srv.Close()

	sess := NewSession(u.Hostname())
	sess.port = port

	err := sess.request(http.MethodGet, "/", false, nil, nil)

	var terr *fterrors.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if terr.Err == nil {
		t.Error("connection failure must carry the underlying error")
	}
	if terr.StatusCode != 0 {
		t.Errorf("StatusCode = %d; want 0 for connection failure", terr.StatusCode)
	}
}

func TestNewSessionFromDevice(t *testing.T) {
	sess := NewSessionFromDevice(models.Device{Name: "Den TV", Host: "192.168.1.50", Port: 9090})
	if sess.host != "192.168.1.50" || sess.port != 9090 {
		t.Errorf("session = %s:%d; want 192.168.1.50:9090", sess.host, sess.port)
	}

	// zero port falls back to the fixed API port
	sess = NewSessionFromDevice(models.Device{Name: "Den TV", Host: "192.168.1.50"})
	if sess.port != 8080 {
		t.Errorf("port = %d; want the default API port", sess.port)
	}
}

func TestSetTimeoutBoundsRequests(t *testing.T) {
	sess := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	sess.SetTimeout(20 * time.Millisecond)

	err := sess.request(http.MethodGet, "/", false, nil, nil)

	var terr *fterrors.TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError on timeout, got %v", err)
	}
	if terr.Err == nil {
		t.Error("timeout must carry the underlying error")
	}
}

func TestPinFingerprintMismatchRefuses(t *testing.T) {
	sess := newTestSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	sess.PinFingerprint("0000000000000000000000000000000000000000000000000000000000000000")

	err := sess.request(http.MethodGet, "/", false, nil, nil)
	if err == nil {
		t.Fatal("expected the pinned session to refuse a mismatching cert")
	}
}
