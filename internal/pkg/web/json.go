package web

import (
	"encoding/json"
	"io"
	"strings"
	"testing"
)

const (
	HeaderContentType = "Content-Type"
	MimeJSON          = "application/json"
)

// DecodeJSONString decodes a response body holding a single JSON string.
func DecodeJSONString(t *testing.T, body io.Reader) string {
	t.Helper()

	var msg string
	if err := json.NewDecoder(body).Decode(&msg); err != nil {
		t.Fatalf("failed to decode json string: %v", err)
	}

	return msg
}

// AssertContentType fails the test when the header is not JSON.
func AssertContentType(t *testing.T, got string) {
	t.Helper()

	if !strings.HasPrefix(got, MimeJSON) {
		t.Errorf("Content-Type = %q, want: %q", got, MimeJSON)
	}
}
