package firetv

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// the DIAL endpoint is plain http on its own port and never sees the
// client token
func newDialSession(t *testing.T, handler http.Handler) *Session {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	sess := NewSession(u.Hostname())
	sess.dialPort = port

	return sess
}

func TestLaunchAppCreated(t *testing.T) {
	var gotPath, gotMethod, gotToken string
	sess := newDialSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotToken = r.Header.Get("x-client-token")
		w.WriteHeader(http.StatusCreated)
	}))
	sess.token = "tok"

	ok, err := sess.LaunchApp("FireTVRemote")
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, "/apps/FireTVRemote", gotPath)
	require.Equal(t, http.MethodPost, gotMethod)
	require.Empty(t, gotToken, "DIAL launch is unauthenticated")
}

// A launch must hand its agent back to the pool exactly once; a double
// release would let two later acquirers share the same agent.
func TestLaunchAppReleasesAgentOnce(t *testing.T) {
	sess := newDialSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	ok, err := sess.LaunchApp("FireTVRemote")
	require.NoError(t, err)
	require.True(t, ok)

	a := fiber.AcquireAgent()
	b := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(a)
	defer fiber.ReleaseAgent(b)

	require.NotSame(t, a, b)
}

func TestLaunchAppNon201IsFalseNotError(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNotFound, http.StatusServiceUnavailable} {
		sess := newDialSession(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		ok, err := sess.LaunchApp("Netflix")
		require.NoError(t, err)
		require.False(t, ok, "status %d must not count as launched", status)
	}
}
