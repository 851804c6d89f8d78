// Package proxy implements the proxy pattern: a caching, access-logging
// stand-in placed in front of a repository fetcher. Clients hold the Fetcher
// interface and cannot tell the proxy from the real subject.
package proxy

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Fetcher is the subject interface shared by the real fetcher and the proxy
type Fetcher interface {
	// FetchDescription returns the description of owner/repo.
	FetchDescription(ctx context.Context, owner, repo string) (string, error)
}

// 🛡️ CachingFetcher proxies a Fetcher, serving repeated requests from an LRU
// cache and logging every access
type CachingFetcher struct {
	next  Fetcher
	cache *lru.Cache[string, string]
}

// 🏭 NewCachingFetcher wraps next with a cache holding at most size entries
func NewCachingFetcher(next Fetcher, size int) (*CachingFetcher, error) {
	if next == nil {
		return nil, errors.Errorf("fetcher is required")
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, errors.Errorf("creating fetch cache: %w", err)
	}
	return &CachingFetcher{next: next, cache: cache}, nil
}

// 📝 FetchDescription implements Fetcher
func (f *CachingFetcher) FetchDescription(ctx context.Context, owner, repo string) (string, error) {
	logger := zerolog.Ctx(ctx)
	key := owner + "/" + repo

	if desc, ok := f.cache.Get(key); ok {
		logger.Debug().Str("repo", key).Msg("serving description from cache")
		return desc, nil
	}

	logger.Debug().Str("repo", key).Msg("forwarding request to real fetcher")
	desc, err := f.next.FetchDescription(ctx, owner, repo)
	if err != nil {
		return "", errors.Errorf("fetching %s: %w", key, err)
	}

	f.cache.Add(key, desc)
	return desc, nil
}
