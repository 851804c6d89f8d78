package proxy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

// stubFetcher counts how often the real subject is hit.
type stubFetcher struct {
	calls int
	err   error
}

func (s *stubFetcher) FetchDescription(ctx context.Context, owner, repo string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return "description of " + owner + "/" + repo, nil
}

func TestCachingFetcher(t *testing.T) {
	t.Run("caches_repeat_requests", func(t *testing.T) {
		stub := &stubFetcher{}
		proxy, err := NewCachingFetcher(stub, 8)
		require.NoError(t, err)
		ctx := context.Background()

		first, err := proxy.FetchDescription(ctx, "golang", "go")
		require.NoError(t, err)
		second, err := proxy.FetchDescription(ctx, "golang", "go")
		require.NoError(t, err)

		assert.Equal(t, first, second, "cached answer should match the original")
		assert.Equal(t, 1, stub.calls, "the real subject should be hit once")
	})

	t.Run("distinct_repos_miss", func(t *testing.T) {
		stub := &stubFetcher{}
		proxy, err := NewCachingFetcher(stub, 8)
		require.NoError(t, err)
		ctx := context.Background()

		_, err = proxy.FetchDescription(ctx, "a", "one")
		require.NoError(t, err)
		_, err = proxy.FetchDescription(ctx, "a", "two")
		require.NoError(t, err)

		assert.Equal(t, 2, stub.calls, "different repos should each reach the subject")
	})

	t.Run("errors_are_not_cached", func(t *testing.T) {
		stub := &stubFetcher{err: errors.New("boom")}
		proxy, err := NewCachingFetcher(stub, 8)
		require.NoError(t, err)
		ctx := context.Background()

		_, err = proxy.FetchDescription(ctx, "a", "one")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetching a/one")

		stub.err = nil
		got, err := proxy.FetchDescription(ctx, "a", "one")
		require.NoError(t, err)
		assert.Equal(t, "description of a/one", got, "a failed fetch should be retried, not cached")
		assert.Equal(t, 2, stub.calls)
	})

	t.Run("nil_fetcher_rejected", func(t *testing.T) {
		_, err := NewCachingFetcher(nil, 8)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetcher is required")
	})

	t.Run("bad_cache_size_rejected", func(t *testing.T) {
		_, err := NewCachingFetcher(&stubFetcher{}, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "creating fetch cache")
	})
}
