package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"inlet/config"
	"inlet/internal/domain/entity"
	domainerrors "inlet/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpotifyAdapter(server *httptest.Server) *spotifyAdapter {
	return &spotifyAdapter{
		clientID:     "test_client_id",
		clientSecret: "test_secret",
		redirectURI:  "http://localhost:8080/callback",
		scopes:       defaultSpotifyScopes,
		tokenURL:     server.URL + "/api/token",
		profileURL:   server.URL + "/v1/me",
		httpClient:   server.Client(),
	}
}

func TestNewSpotifyAdapter(t *testing.T) {
	tests := []struct {
		name    string
		client  *config.OAuthClient
		wantNil bool
	}{
		{name: "no client registered", client: nil, wantNil: true},
		{name: "client without ID", client: &config.OAuthClient{ClientSecret: "test_secret"}, wantNil: true},
		{
			name: "configured client",
			client: &config.OAuthClient{
				ClientID:     "test_client_id",
				ClientSecret: "test_secret",
				RedirectURI:  "http://localhost:8080/callback",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Providers.Spotify = tt.client

			adapter := NewSpotifyAdapter(cfg)
			if tt.wantNil {
				assert.Nil(t, adapter)

				return
			}

			require.NotNil(t, adapter)
			assert.Equal(t, entity.ProviderSpotify, adapter.Provider())
		})
	}
}

func TestSpotifyAdapter_AuthorizationURL(t *testing.T) {
	adapter := &spotifyAdapter{
		clientID:    "test_client_id",
		redirectURI: "http://localhost:8080/callback",
		scopes:      defaultSpotifyScopes,
	}

	result := adapter.AuthorizationURL("abc123")

	expected := "https://accounts.spotify.com/authorize?client_id=test_client_id&redirect_uri=http%3A%2F%2Flocalhost%3A8080%2Fcallback&response_type=code&scope=user-library-read+user-read-playback-position+playlist-read-private&state=abc123"
	assert.Equal(t, expected, result)
}

func TestSpotifyAdapter_ExchangeCode(t *testing.T) {
	t.Run("credentials travel in basic auth header", func(t *testing.T) {
		var (
			gotUser, gotPass string
			gotBasic         bool
			gotForm          map[string][]string
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUser, gotPass, gotBasic = r.BasicAuth()
			require.NoError(t, r.ParseForm())
			gotForm = r.PostForm

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"access_token":  "BQB-access",
				"refresh_token": "AQC-refresh",
				"expires_in":    3600,
			})
		}))
		defer server.Close()

		adapter := newTestSpotifyAdapter(server)

		grant, err := adapter.ExchangeCode(context.Background(), "auth_code", "")
		require.NoError(t, err)

		assert.True(t, gotBasic)
		assert.Equal(t, "test_client_id", gotUser)
		assert.Equal(t, "test_secret", gotPass)

		// Spotify wants credentials in the header only, never in the body.
		assert.NotContains(t, gotForm, "client_id")
		assert.NotContains(t, gotForm, "client_secret")
		assert.Equal(t, []string{"auth_code"}, gotForm["code"])
		assert.Equal(t, []string{"authorization_code"}, gotForm["grant_type"])

		assert.Equal(t, "BQB-access", grant.AccessToken)
		assert.Equal(t, "AQC-refresh", grant.RefreshToken)
		assert.Equal(t, int64(3600), grant.ExpiresIn)
	})

	t.Run("rejected code maps to domain error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Authorization code expired"}`))
		}))
		defer server.Close()

		adapter := newTestSpotifyAdapter(server)

		_, err := adapter.ExchangeCode(context.Background(), "expired_code", "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrOAuthCodeRejected))
	})

	t.Run("platform outage maps to domain error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		adapter := newTestSpotifyAdapter(server)

		_, err := adapter.ExchangeCode(context.Background(), "auth_code", "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrProviderUnavailable))
	})
}

func TestSpotifyAdapter_FetchIdentity(t *testing.T) {
	t.Run("successful lookup", func(t *testing.T) {
		var gotAuthorization string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuthorization = r.Header.Get("Authorization")

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":           "spotify-listener-7",
				"display_name": "Listener",
				"email":        "listener@example.com",
			})
		}))
		defer server.Close()

		adapter := newTestSpotifyAdapter(server)

		identity, err := adapter.FetchIdentity(context.Background(), "BQB-access")
		require.NoError(t, err)

		assert.Equal(t, "Bearer BQB-access", gotAuthorization)
		assert.Equal(t, "spotify-listener-7", identity.ProviderUserID)
		assert.Equal(t, "Listener", identity.DisplayName)
		assert.Equal(t, "listener@example.com", identity.Email)
	})

	t.Run("response without account ID is rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"display_name":"Listener"}`))
		}))
		defer server.Close()

		adapter := newTestSpotifyAdapter(server)

		_, err := adapter.FetchIdentity(context.Background(), "BQB-access")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrProviderUnavailable))
	})
}
