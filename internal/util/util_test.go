package util

import (
	"testing"
	"time"
)

func TestTokenFingerprint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		secret   string
		expected string
	}{
		{name: "empty secret", secret: "", expected: ""},
		// First 12 hex characters of sha256("access-token").
		{name: "stable digest prefix", secret: "access-token", expected: "3f16bed7089f"},
		{name: "short secret still full length", secret: "x", expected: "2d711642b726"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TokenFingerprint(tt.secret); got != tt.expected {
				t.Fatalf("TokenFingerprint(%q) = %s, want %s", tt.secret, got, tt.expected)
			}
		})
	}
}

func TestTokenFingerprintDistinguishesSecrets(t *testing.T) {
	t.Parallel()

	first := TokenFingerprint("token-one")
	second := TokenFingerprint("token-two")

	if first == second {
		t.Fatalf("expected distinct fingerprints, both were %s", first)
	}
	if len(first) != fingerprintLength || len(second) != fingerprintLength {
		t.Fatalf("expected %d-character fingerprints, got %d and %d", fingerprintLength, len(first), len(second))
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
