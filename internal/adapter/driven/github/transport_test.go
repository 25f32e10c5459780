package github

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevalidatingTransport_DoesNotMutateCallerRequest(t *testing.T) {
	var seen string
	next := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Get("Cache-Control")
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Header: http.Header{}}, nil
	})

	req, err := http.NewRequest(http.MethodGet, "http://example.invalid/", nil)
	require.NoError(t, err)

	resp, err := (&revalidatingTransport{next: next}).RoundTrip(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "max-age=0", seen)
	assert.Empty(t, req.Header.Get("Cache-Control"))
}

// TestCachingTransport_AlwaysRevalidates verifies a response marked fresh for
// a minute is still confirmed upstream on the next call.
func TestCachingTransport_AlwaysRevalidates(t *testing.T) {
	var hits, conditional atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("ETag", `"v1"`)
		w.Header().Set("Cache-Control", "public, max-age=60")
		if r.Header.Get("If-None-Match") == `"v1"` {
			conditional.Add(1)
			w.WriteHeader(http.StatusNotModified)
			return
		}
		_, _ = w.Write([]byte(`[{"name":"a"}]`))
	}))
	t.Cleanup(server.Close)

	client := &http.Client{Transport: newCachingTransport(server.Client().Transport)}

	get := func() (*http.Response, string) {
		resp, err := client.Get(server.URL + "/users/x/repos")
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, resp.Body.Close())
		return resp, string(body)
	}

	first, firstBody := get()
	assert.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, `[{"name":"a"}]`, firstBody)

	second, secondBody := get()
	assert.Equal(t, http.StatusOK, second.StatusCode)
	assert.Equal(t, firstBody, secondBody)
	assert.Equal(t, "1", second.Header.Get("X-From-Cache"))

	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, int32(1), conditional.Load())
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
