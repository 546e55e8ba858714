package utils

import (
	"strings"
	"testing"
)

func TestGenerateAPIKeyFormat(t *testing.T) {
	key, err := GenerateAPIKey("ts_test")
	if err != nil {
		t.Fatalf("GenerateAPIKey: %v", err)
	}
	if !strings.HasPrefix(key, "ts_test_") {
		t.Errorf("key %q missing prefix", key)
	}
	// prefix + underscore + 32 random bytes hex-encoded
	if want := len("ts_test_") + 64; len(key) != want {
		t.Errorf("key length = %d, want %d", len(key), want)
	}
}

func TestGenerateKeyPrefixes(t *testing.T) {
	live, err := GenerateLiveKey()
	if err != nil {
		t.Fatalf("GenerateLiveKey: %v", err)
	}
	if !strings.HasPrefix(live, "ts_live_") {
		t.Errorf("live key %q missing ts_live_ prefix", live)
	}

	sandbox, err := GenerateSandboxKey()
	if err != nil {
		t.Fatalf("GenerateSandboxKey: %v", err)
	}
	if !strings.HasPrefix(sandbox, "ts_sandbox_") {
		t.Errorf("sandbox key %q missing ts_sandbox_ prefix", sandbox)
	}
}

func TestGeneratedKeysAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 32; i++ {
		key, err := GenerateLiveKey()
		if err != nil {
			t.Fatalf("GenerateLiveKey: %v", err)
		}
		if seen[key] {
			t.Fatalf("duplicate key generated: %s", key)
		}
		seen[key] = true
	}
}
