package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brtemplate/authgate/internal/middleware"
)

func TestMiddleware_CORS(t *testing.T) {
	t.Parallel()

	const allowedOrigin = "http://localhost:3000"

	tests := []struct {
		name          string
		method        string
		origin        string
		preflight     bool
		wantNext      bool
		wantOrigin    string
		wantCreds     string
		wantAllowMeth string
	}{
		{"GET with allowed origin", http.MethodGet, allowedOrigin, false, true, allowedOrigin, "true", ""},
		{"POST with allowed origin", http.MethodPost, allowedOrigin, false, true, allowedOrigin, "true", ""},
		{"Preflight with allowed origin", http.MethodOptions, allowedOrigin, true, false, allowedOrigin, "true", http.MethodPost},
		{"GET with unknown origin", http.MethodGet, "http://example.com", false, true, "", "", ""},
		{"Preflight with unknown origin", http.MethodOptions, "http://example.com", true, false, "", "", ""},
		{"No origin", http.MethodGet, "", false, true, "", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var called bool
			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tc.method, "/", http.NoBody)
			if tc.origin != "" {
				req.Header.Set(middleware.HeaderOrigin, tc.origin)
			}
			if tc.preflight {
				req.Header.Set(middleware.HeaderRequestMethod, http.MethodPost)
			}
			rec := httptest.NewRecorder()
			middleware.CORS(allowedOrigin)(handler).ServeHTTP(rec, req)

			if rec.Code < 200 || rec.Code > 299 {
				t.Errorf("rec.Code = %d, want: 2xx", rec.Code)
			}
			if called != tc.wantNext {
				t.Errorf("next called = %v, want: %v", called, tc.wantNext)
			}

			headers := map[string]string{
				middleware.HeaderAllowOrigin:  tc.wantOrigin,
				middleware.HeaderAllowCreds:   tc.wantCreds,
				middleware.HeaderAllowMethods: tc.wantAllowMeth,
			}
			for header, want := range headers {
				if got := rec.Header().Get(header); got != want {
					t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, got, want)
				}
			}
		})
	}
}
