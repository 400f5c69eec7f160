// Package spotify adapts the Spotify Web API to the catalog port. It
// resolves playlist specifications into tracks and creates playlists on
// the user's account, batching writes per API limits.
package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/vibechef/vibechef/internal/core/ports"
)

// Client wraps the Spotify API client behind the catalog port.
type Client struct {
	api *spotify.Client
}

// compile-time interface assertion
var _ ports.CatalogProvider = (*Client)(nil)

// New wraps an already-authenticated API client.
func New(api *spotify.Client) *Client {
	return &Client{api: api}
}

// NewFromCredentials authenticates with the client-credentials flow and
// returns a ready client. Rate-limit retries are handled by the underlying
// library.
func NewFromCredentials(ctx context.Context, clientID, clientSecret string) (*Client, error) {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("spotify adapter: token request: %w", err)
	}

	httpClient := spotifyauth.New().Client(ctx, token)
	return New(spotify.New(httpClient, spotify.WithRetry(true))), nil
}
