package observability

import (
	"errors"
	"testing"
)

func TestInitSentry_EmptyDSN(t *testing.T) {
	flush, err := InitSentry("", "test", "dev")
	if err != nil {
		t.Fatalf("InitSentry() error = %v", err)
	}
	flush()
}

func TestInitSentry_BadDSN(t *testing.T) {
	if _, err := InitSentry("not a dsn", "test", "dev"); err == nil {
		t.Fatal("InitSentry() should reject a malformed DSN")
	}
}

func TestCaptureErr_WithoutClient(t *testing.T) {
	CaptureErr(nil, "/api/ai/chat")
	CaptureErr(errors.New("boom"), "/api/ai/chat")
}
