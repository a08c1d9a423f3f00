package auth_test

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/brtemplate/authgate/internal/auth"
)

func TestIssuer_Issue_RoundTrip(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	secrets := auth.StaticSecret(testSecret)

	issuer := auth.NewIssuer(secrets).WithClock(fixedClock(t0))
	token, err := issuer.Issue(testIdentity)
	if err != nil {
		t.Fatalf("issuer.Issue(%+v) = %v, want: nil", testIdentity, err)
	}

	verifier := auth.NewVerifier(secrets).WithClock(fixedClock(t0))
	got, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("verifier.Verify(token) = %v, want: nil", err)
	}

	want := &auth.Claims{
		ID:       testIdentity.ID.String(),
		PublicID: testIdentity.PublicID,
		UserType: testIdentity.UserType,
		Email:    testIdentity.Email,
		Exp:      t0.Unix() + 3600,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("verifier.Verify(token) = %+v, want: %+v", got, want)
	}
}

func TestIssuer_Issue_WireFormat(t *testing.T) {
	t.Parallel()

	issuer := auth.NewIssuer(auth.StaticSecret(testSecret))
	token, err := issuer.Issue(testIdentity)
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(token, ".")
	if gotLen, wantLen := len(parts), 3; gotLen != wantLen {
		t.Fatalf("len(parts) = %d, want: %d", gotLen, wantLen)
	}

	headerJSON, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		t.Fatalf("decode header: %v", err)
	}
	var header map[string]any
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		t.Fatalf("unmarshal header: %v", err)
	}
	if gotAlg, wantAlg := header["alg"], "HS256"; gotAlg != wantAlg {
		t.Errorf("header[%q] = %v, want: %q", "alg", gotAlg, wantAlg)
	}

	payloadJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(payloadJSON, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	for _, field := range []string{"id", "public_id", "user_type", "email", "exp"} {
		if _, ok := payload[field]; !ok {
			t.Errorf("payload[%q] is missing, payload: %v", field, payload)
		}
	}
	if gotLen, wantLen := len(payload), 5; gotLen != wantLen {
		t.Errorf("len(payload) = %d, want: %d", gotLen, wantLen)
	}
}

func TestIssuer_Issue_SecretUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		secrets auth.SecretProvider
	}{
		{"Provider fails", auth.SecretFunc(func() ([]byte, error) {
			return nil, errors.New("environment variable JWT_SECRET is not set")
		})},
		{"Empty static secret", auth.StaticSecret("")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			token, err := auth.NewIssuer(tc.secrets).Issue(testIdentity)
			if token != "" {
				t.Errorf("token = %q, want: empty", token)
			}
			if !errors.Is(err, auth.ErrConfig) {
				t.Fatalf("issuer.Issue() = %v, want: %v", err, auth.ErrConfig)
			}

			var authErr *auth.Error
			if !errors.As(err, &authErr) {
				t.Fatalf("errors.As(%v, *auth.Error) = false, want: true", err)
			}
			if gotCode, wantCode := authErr.StatusCode(), http.StatusServiceUnavailable; gotCode != wantCode {
				t.Errorf("authErr.StatusCode() = %d, want: %d", gotCode, wantCode)
			}
		})
	}
}

func TestEnvSecretProvider(t *testing.T) {
	const key = "AUTHGATE_TEST_SECRET"

	tests := []struct {
		name    string
		set     bool
		val     string
		wantErr bool
	}{
		{"Set", true, testSecret, false},
		{"Set but empty", true, "", true},
		{"Not set", false, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.set {
				t.Setenv(key, tc.val)
			}

			secret, err := auth.NewEnvSecretProvider(key).Secret()
			if (err != nil) != tc.wantErr {
				t.Fatalf("provider.Secret() = %v, wantErr: %v", err, tc.wantErr)
			}
			if !tc.wantErr && string(secret) != tc.val {
				t.Errorf("provider.Secret() = %q, want: %q", secret, tc.val)
			}
		})
	}
}
