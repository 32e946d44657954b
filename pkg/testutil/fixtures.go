package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
)

// FakeUpstream is an httptest JSON server that counts requests and records
// the last query string it received.
type FakeUpstream struct {
	*httptest.Server

	hits atomic.Int32

	mu        sync.Mutex
	status    int
	body      string
	lastQuery string
}

// NewFakeUpstream starts a server answering every request with status and body.
// It is closed when the test ends.
func NewFakeUpstream(t *testing.T, status int, body string) *FakeUpstream {
	t.Helper()
	f := &FakeUpstream{status: status, body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		f.mu.Lock()
		status, body := f.status, f.body
		f.lastQuery = r.URL.RawQuery
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.Close)
	return f
}

// SetReply changes the reply for subsequent requests.
func (f *FakeUpstream) SetReply(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status, f.body = status, body
}

// Hits returns the number of requests served.
func (f *FakeUpstream) Hits() int32 {
	return f.hits.Load()
}

// LastQuery returns the raw query string of the most recent request.
func (f *FakeUpstream) LastQuery() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastQuery
}

// GuardBody builds a protected-list document with values under field.
func GuardBody(field string, values ...string) string {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(map[string][]string{field: values})
	return string(b)
}
