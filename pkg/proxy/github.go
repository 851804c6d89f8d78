package proxy

import (
	"context"
	"net/http"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🐙 GitHubFetcher is the real subject, backed by the GitHub API
type GitHubFetcher struct {
	client *github.Client
}

// 🏭 NewGitHubFetcher creates a fetcher using the given http client; nil
// falls back to http.DefaultClient
func NewGitHubFetcher(httpClient *http.Client) *GitHubFetcher {
	return &GitHubFetcher{client: github.NewClient(httpClient)}
}

// 📝 FetchDescription implements Fetcher against the live API
func (f *GitHubFetcher) FetchDescription(ctx context.Context, owner, repo string) (string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("owner", owner).Str("repo", repo).Msg("fetching repository from GitHub")

	r, _, err := f.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return "", errors.Errorf("getting repository %s/%s: %w", owner, repo, err)
	}
	return r.GetDescription(), nil
}
