package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brtemplate/authgate/internal/middleware"
)

func TestSafeResponseWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	w := middleware.NewSafeResponseWriter(context.Background(), rec)

	w.WriteHeader(http.StatusServiceUnavailable)
	w.WriteHeader(http.StatusOK)
	n, err := w.Write([]byte(`"down"`))
	if err != nil {
		t.Fatal(err)
	}

	if got, want := rec.Code, http.StatusServiceUnavailable; got != want {
		t.Errorf("rec.Code = %d, want: %d", got, want)
	}
	if got, want := w.Status(), http.StatusServiceUnavailable; got != want {
		t.Errorf("w.Status() = %d, want: %d", got, want)
	}
	if got, want := w.BytesWritten(), n; got != want {
		t.Errorf("w.BytesWritten() = %d, want: %d", got, want)
	}
	if got, want := rec.Body.String(), `"down"`; got != want {
		t.Errorf("rec.Body.String() = %q, want: %q", got, want)
	}
}

func TestSafeResponseWriter_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := httptest.NewRecorder()
	w := middleware.NewSafeResponseWriter(ctx, rec)

	n, err := w.Write([]byte("late"))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("w.Write() = %d, want: 0", n)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("rec.Body.Len() = %d, want: 0", rec.Body.Len())
	}
}

func TestLogRequest(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	middleware.InjectWriter(middleware.LogRequest(handler)).ServeHTTP(rec, req)

	if got, want := rec.Code, http.StatusTeapot; got != want {
		t.Errorf("rec.Code = %d, want: %d", got, want)
	}
}
