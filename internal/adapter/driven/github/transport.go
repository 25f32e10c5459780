package github

import (
	"net/http"

	"github.com/gregjones/httpcache"
)

// newCachingTransport returns an ETag-revalidating transport over base
// (http.DefaultTransport when nil). Stored responses are only ever returned
// after the upstream confirmed them with 304 Not Modified, which GitHub does
// not count against the primary rate limit.
func newCachingTransport(base http.RoundTripper) http.RoundTripper {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	if base != nil {
		cacheTransport.Transport = base
	}
	return &revalidatingTransport{next: cacheTransport}
}

// revalidatingTransport marks every request max-age=0 so httpcache treats any
// stored entry as stale and sends a conditional request instead of serving it.
type revalidatingTransport struct {
	next http.RoundTripper
}

// RoundTrip implements http.RoundTripper. The caller's request is not modified.
func (t *revalidatingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Cache-Control", "max-age=0")
	return t.next.RoundTrip(r)
}
