package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type httpObservation struct {
	method, route string
	status        int
}

type fakeHTTPObserver struct {
	mu   sync.Mutex
	seen []httpObservation
}

func (f *fakeHTTPObserver) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, httpObservation{method, route, status})
}

func TestMetrics_RecordsMatchedRoute(t *testing.T) {
	obs := &fakeHTTPObserver{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze-sentence", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	handler := Metrics(obs)(mux)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/analyze-sentence", nil))

	require.Len(t, obs.seen, 1)
	assert.Equal(t, httpObservation{"POST", "POST /analyze-sentence", http.StatusBadRequest}, obs.seen[0])
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	obs := &fakeHTTPObserver{}

	handler := Metrics(obs)(http.NewServeMux())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no/such/path", nil))

	require.Len(t, obs.seen, 1)
	assert.Equal(t, unmatchedRoute, obs.seen[0].route)
	assert.Equal(t, http.StatusNotFound, obs.seen[0].status)
}

func TestMetrics_DefaultStatusOK(t *testing.T) {
	obs := &fakeHTTPObserver{}

	handler := Metrics(obs)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, obs.seen, 1)
	assert.Equal(t, http.StatusOK, obs.seen[0].status)
}
