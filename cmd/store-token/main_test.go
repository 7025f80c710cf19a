package main

import (
	"path/filepath"
	"testing"

	"github.com/blaisecz/fitbit-sleep/internal/credentials"
)

func TestStoreAndVerify(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitbit", "credentials.env")

	if err := storeAndVerify(path, " token-value\n"); err != nil {
		t.Fatalf("storeAndVerify() error = %v", err)
	}

	token, err := credentials.ResolveToken("", path)
	if err != nil {
		t.Fatalf("ResolveToken() error = %v", err)
	}
	if token != "token-value" {
		t.Errorf("expected stored token-value, got %q", token)
	}
}

func TestStoreAndVerify_EmptyToken(t *testing.T) {
	if err := storeAndVerify(filepath.Join(t.TempDir(), "credentials.env"), "   "); err == nil {
		t.Fatal("expected an error for a blank token")
	}
}
