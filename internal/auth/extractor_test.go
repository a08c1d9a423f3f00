package auth_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/brtemplate/authgate/internal/auth"
)

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		values  []string
		want    string
		wantErr bool
	}{
		{"Valid", []string{"Bearer abc.def.ghi"}, "abc.def.ghi", false},
		{"Surrounding whitespace is trimmed", []string{"Bearer   abc.def.ghi  "}, "abc.def.ghi", false},
		{"First value wins", []string{"Bearer first", "Bearer second"}, "first", false},
		{"Missing header", nil, "", true},
		{"Empty header", []string{""}, "", true},
		{"Wrong scheme", []string{"Basic dXNlcjpwYXNz"}, "", true},
		{"Lowercase scheme", []string{"bearer abc"}, "", true},
		{"Prefix without space", []string{"Bearerabc"}, "", true},
		{"Prefix only", []string{"Bearer "}, "", true},
		{"Prefix and whitespace", []string{"Bearer    "}, "", true},
		{"Invalid text", []string{"Bearer \xff\xfe"}, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			header := http.Header{}
			for _, v := range tc.values {
				header.Add(auth.HeaderAuthorization, v)
			}

			got, err := auth.ExtractBearerToken(header)
			if tc.wantErr {
				if !errors.Is(err, auth.ErrMissingOrMalformedToken) {
					t.Fatalf("auth.ExtractBearerToken() = %v, want: %v", err, auth.ErrMissingOrMalformedToken)
				}
				if got != "" {
					t.Errorf("token = %q, want: empty", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("auth.ExtractBearerToken() = %v, want: nil", err)
			}
			if got != tc.want {
				t.Errorf("auth.ExtractBearerToken() = %q, want: %q", got, tc.want)
			}
		})
	}
}
