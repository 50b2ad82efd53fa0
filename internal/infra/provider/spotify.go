package provider

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"inlet/config"
	"inlet/internal/domain/entity"
	domainerrors "inlet/internal/domain/errors"
	"inlet/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyMeURL    = "https://api.spotify.com/v1/me"

	defaultSpotifyScopes = "user-library-read user-read-playback-position playlist-read-private"
)

// spotifyAdapter implements ProviderAdapter for Spotify podcast shows.
// Spotify departs from Google in one way that matters here: client
// credentials go in a Basic Authorization header on the token request,
// not in the form body.
type spotifyAdapter struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string
	tokenURL     string
	profileURL   string
	httpClient   *http.Client
}

// NewSpotifyAdapter builds the adapter for Spotify shows. Returns nil when
// the deployment has no Spotify client registered.
func NewSpotifyAdapter(cfg *config.Config) service.ProviderAdapter {
	client := cfg.Providers.Spotify
	if client == nil || client.ClientID == "" {
		return nil
	}

	scopes := client.Scopes
	if scopes == "" {
		scopes = defaultSpotifyScopes
	}

	return &spotifyAdapter{
		clientID:     client.ClientID,
		clientSecret: client.ClientSecret,
		redirectURI:  client.RedirectURI,
		scopes:       scopes,
		tokenURL:     spotifyTokenURL,
		profileURL:   spotifyMeURL,
		httpClient: &http.Client{
			Timeout: adapterHTTPTimeout,
		},
	}
}

// Provider identifies which platform this adapter speaks for.
func (a *spotifyAdapter) Provider() entity.Provider {
	return entity.ProviderSpotify
}

// AuthorizationURL constructs the Spotify consent URL.
func (a *spotifyAdapter) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("client_id", a.clientID)
	params.Set("redirect_uri", a.redirectURI)
	params.Set("scope", a.scopes)
	params.Set("response_type", "code")
	params.Set("state", state)

	return spotifyAuthURL + "?" + params.Encode()
}

// ExchangeCode trades an authorization code for tokens using Spotify's
// Basic-auth token endpoint.
func (a *spotifyAdapter) ExchangeCode(ctx context.Context, code, codeVerifier string) (*service.TokenGrant, error) {
	data := url.Values{}
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", a.redirectURI)
	if codeVerifier != "" {
		data.Set("code_verifier", codeVerifier)
	}

	basic := base64.StdEncoding.EncodeToString([]byte(a.clientID + ":" + a.clientSecret))
	header := http.Header{}
	header.Set("Authorization", "Basic "+basic)

	return exchangeForm(ctx, a.httpClient, a.tokenURL, data, header)
}

// FetchIdentity resolves the Spotify account behind a fresh access token.
func (a *spotifyAdapter) FetchIdentity(ctx context.Context, accessToken string) (*service.ProviderIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.profileURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, "profile request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Wrapf(domainerrors.ErrProviderUnavailable, "profile request returned status %d: %s", resp.StatusCode, string(body))
	}

	var profile struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
		Email       string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, "failed to decode profile response")
	}
	if profile.ID == "" {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, "profile response contained no account ID")
	}

	return &service.ProviderIdentity{
		ProviderUserID: profile.ID,
		DisplayName:    profile.DisplayName,
		Email:          profile.Email,
	}, nil
}
