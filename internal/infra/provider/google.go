// Package provider implements the per-platform OAuth adapters. Each
// adapter owns one platform's endpoints and request quirks; everything
// above this package speaks the uniform ProviderAdapter surface.
package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"inlet/config"
	"inlet/internal/domain/entity"
	domainerrors "inlet/internal/domain/errors"
	"inlet/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	defaultYouTubeScopes = "https://www.googleapis.com/auth/youtube.readonly"
	defaultGmailScopes   = "https://www.googleapis.com/auth/gmail.readonly"

	adapterHTTPTimeout = 15 * time.Second
)

// googleAdapter serves every Google-backed platform. YouTube and Gmail
// share the account system, the token endpoint and the identity endpoint;
// only the requested scopes differ.
type googleAdapter struct {
	provider     entity.Provider
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       string
	tokenURL     string
	userInfoURL  string
	httpClient   *http.Client
}

// NewYouTubeAdapter builds the adapter for YouTube subscriptions. Returns
// nil when the deployment has no YouTube client registered.
func NewYouTubeAdapter(cfg *config.Config) service.ProviderAdapter {
	return newGoogleAdapter(entity.ProviderYouTube, cfg.Providers.YouTube, defaultYouTubeScopes)
}

// NewGmailAdapter builds the adapter for Gmail newsletters. Returns nil
// when the deployment has no Gmail client registered.
func NewGmailAdapter(cfg *config.Config) service.ProviderAdapter {
	return newGoogleAdapter(entity.ProviderGmail, cfg.Providers.Gmail, defaultGmailScopes)
}

func newGoogleAdapter(provider entity.Provider, client *config.OAuthClient, defaultScopes string) service.ProviderAdapter {
	if client == nil || client.ClientID == "" {
		return nil
	}

	scopes := client.Scopes
	if scopes == "" {
		scopes = defaultScopes
	}

	return &googleAdapter{
		provider:     provider,
		clientID:     client.ClientID,
		clientSecret: client.ClientSecret,
		redirectURI:  client.RedirectURI,
		scopes:       scopes,
		tokenURL:     googleTokenURL,
		userInfoURL:  googleUserInfoURL,
		httpClient: &http.Client{
			Timeout: adapterHTTPTimeout,
		},
	}
}

// Provider identifies which platform this adapter speaks for.
func (a *googleAdapter) Provider() entity.Provider {
	return a.provider
}

// AuthorizationURL constructs the Google consent URL. access_type=offline
// with prompt=consent is what makes Google return a refresh token; without
// it the vault would only ever hold short-lived access tokens.
func (a *googleAdapter) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("client_id", a.clientID)
	params.Set("redirect_uri", a.redirectURI)
	params.Set("scope", a.scopes)
	params.Set("response_type", "code")
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	params.Set("state", state)

	return googleAuthURL + "?" + params.Encode()
}

// ExchangeCode trades an authorization code for tokens.
func (a *googleAdapter) ExchangeCode(ctx context.Context, code, codeVerifier string) (*service.TokenGrant, error) {
	data := url.Values{}
	data.Set("client_id", a.clientID)
	data.Set("client_secret", a.clientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", a.redirectURI)
	if codeVerifier != "" {
		data.Set("code_verifier", codeVerifier)
	}

	return exchangeForm(ctx, a.httpClient, a.tokenURL, data, nil)
}

// FetchIdentity resolves the Google account behind a fresh access token.
func (a *googleAdapter) FetchIdentity(ctx context.Context, accessToken string) (*service.ProviderIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, "user info request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Wrapf(domainerrors.ErrProviderUnavailable, "user info request returned status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, "failed to decode user info response")
	}
	if googleUser.ID == "" {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, "user info response contained no account ID")
	}

	return &service.ProviderIdentity{
		ProviderUserID: googleUser.ID,
		DisplayName:    googleUser.Name,
		Email:          googleUser.Email,
	}, nil
}

// exchangeForm posts an OAuth token request and maps the outcome onto the
// domain taxonomy: 4xx means the platform rejected the grant, anything
// else that is not a clean 200 means the platform is unavailable.
func exchangeForm(ctx context.Context, client *http.Client, tokenURL string, data url.Values, header http.Header) (*service.TokenGrant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, "token exchange request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Wrapf(domainerrors.ErrOAuthCodeRejected, "token exchange returned status %d: %s", resp.StatusCode, string(body))
	default:
		return nil, errors.Wrapf(domainerrors.ErrProviderUnavailable, "token exchange returned status %d", resp.StatusCode)
	}

	var tokenResponse struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, "failed to decode token response")
	}
	if tokenResponse.AccessToken == "" {
		return nil, errors.Wrap(domainerrors.ErrOAuthCodeRejected, "token response contained no access token")
	}

	return &service.TokenGrant{
		AccessToken:  tokenResponse.AccessToken,
		RefreshToken: tokenResponse.RefreshToken,
		ExpiresIn:    tokenResponse.ExpiresIn,
	}, nil
}
