// Package ghclient looks up covenant releases on GitHub.
package ghclient

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/google/go-github/v67/github"
	"golang.org/x/oauth2"
)

// Client wraps the go-github client.
type Client struct {
	gh            *github.Client
	authenticated bool
}

// New creates a GitHub client. Token resolution order: GITHUB_TOKEN,
// GH_TOKEN, unauthenticated. Release lookups work unauthenticated; a
// token just raises the rate limit.
func New() *Client {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GH_TOKEN")
	}

	var httpClient *http.Client
	authenticated := false
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		authenticated = true
	}

	return &Client{
		gh:            github.NewClient(httpClient),
		authenticated: authenticated,
	}
}

// IsAuthenticated returns true if the client has a token.
func (c *Client) IsAuthenticated() bool {
	return c.authenticated
}

// Release describes a published release.
type Release struct {
	Tag string
	URL string
}

// LatestRelease fetches the latest published release of a repository.
func (c *Client) LatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	rel, _, err := c.gh.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release of %s/%s: %w", owner, repo, err)
	}

	return &Release{
		Tag: rel.GetTagName(),
		URL: rel.GetHTMLURL(),
	}, nil
}
