// Package entity contains the core business objects of the project.
package entity

import "slices"

// Provider represents an external content platform a user can link.
type Provider string

const (
	// ProviderYouTube indicates a linked YouTube account (subscription feed).
	ProviderYouTube Provider = "youtube"
	// ProviderSpotify indicates a linked Spotify account (shows and episodes).
	ProviderSpotify Provider = "spotify"
	// ProviderGmail indicates a linked Gmail account (newsletter inbox).
	ProviderGmail Provider = "gmail"
)

// String returns the string representation of the Provider.
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the Provider is a valid value.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderYouTube, ProviderSpotify, ProviderGmail:
		return true
	default:
		return false
	}
}

// KnownProviders returns the closed set of providers the product supports.
// Listing endpoints report one entry per member, connected or not.
func KnownProviders() []Provider {
	return []Provider{ProviderYouTube, ProviderSpotify, ProviderGmail}
}

// Providers is a slice of Provider for convenience.
type Providers []Provider

// Contains checks if the providers slice contains a specific provider.
func (ps Providers) Contains(provider Provider) bool {
	return slices.Contains(ps, provider)
}
