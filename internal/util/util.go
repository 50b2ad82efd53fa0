package util

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// fingerprintLength is the number of hex characters kept from the digest.
const fingerprintLength = 12

// TokenFingerprint derives a short identifier from a secret so logs can
// correlate token rotations without carrying recoverable token material.
// Empty secrets map to an empty fingerprint.
func TokenFingerprint(secret string) string {
	if secret == "" {
		return ""
	}

	sha256Sum := sha256.Sum256([]byte(secret))

	return fmt.Sprintf("%x", sha256Sum)[:fingerprintLength]
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
