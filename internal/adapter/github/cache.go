package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/ghcontributors/internal/app"
)

// CachedClient wraps github client with caching layer.
// Collaborator checks and issue searches are not cached.
type CachedClient struct {
	client            app.GithubClient
	repositoriesCache *lru.Cache
	contributorsCache *lru.Cache
	commitsCache      *lru.Cache
	commitStatsCache  *lru.Cache
	ttl               time.Duration
}

var _ app.GithubClient = &CachedClient{}

// NewCachedClient creates new CachedClient instance.
func NewCachedClient(client app.GithubClient, size int, ttl time.Duration) (*CachedClient, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}

	c := CachedClient{
		client: client,
		ttl:    ttl,
	}
	for name, cache := range map[string]**lru.Cache{
		"repositories": &c.repositoriesCache,
		"contributors": &c.contributorsCache,
		"commits":      &c.commitsCache,
		"commit stats": &c.commitStatsCache,
	} {
		lc, err := lru.New(size)
		if err != nil {
			return nil, fmt.Errorf("creating lru cache for %s: %w", name, err)
		}
		*cache = lc
	}

	return &c, nil
}

// Repository returns repository details.
func (c *CachedClient) Repository(ctx context.Context, owner string, name string) (app.Repository, error) {
	key := c.repoCacheKey(owner, name)
	if data, ok := c.get(c.repositoriesCache, key); ok {
		return data.(app.Repository), nil
	}

	repo, err := c.client.Repository(ctx, owner, name)
	if err != nil {
		return repo, err
	}
	c.add(c.repositoriesCache, key, repo)

	return repo, nil
}

// Contributors returns repository contributors.
func (c *CachedClient) Contributors(ctx context.Context, owner string, name string) ([]app.Contributor, error) {
	key := c.repoCacheKey(owner, name)
	if data, ok := c.get(c.contributorsCache, key); ok {
		return data.([]app.Contributor), nil
	}

	contributors, err := c.client.Contributors(ctx, owner, name)
	if err != nil {
		return contributors, err
	}
	c.add(c.contributorsCache, key, contributors)

	return contributors, nil
}

// CommitsByAuthor returns latest commits of given author.
//
// Cached entry is reused for any later since value, as long as it's within ttl.
// Commits older than requested since are filtered out of cached data.
func (c *CachedClient) CommitsByAuthor(ctx context.Context, owner string, name string, author string, since time.Time) ([]app.Commit, error) {
	key := c.repoCacheKey(owner, name) + "/" + strings.ToLower(author)
	if data, ok := c.get(c.commitsCache, key); ok {
		entry := data.(commitsCacheEntry)
		if !since.Before(entry.since) {
			return filterCommits(entry.commits, since), nil
		}
	}

	commits, err := c.client.CommitsByAuthor(ctx, owner, name, author, since)
	if err != nil {
		return commits, err
	}
	c.add(c.commitsCache, key, commitsCacheEntry{
		since:   since,
		commits: commits,
	})

	return commits, nil
}

// CommitStats returns commit line stats.
func (c *CachedClient) CommitStats(ctx context.Context, owner string, name string, sha string) (app.CommitStats, error) {
	key := c.repoCacheKey(owner, name) + "/" + sha
	if data, ok := c.get(c.commitStatsCache, key); ok {
		return data.(app.CommitStats), nil
	}

	stats, err := c.client.CommitStats(ctx, owner, name, sha)
	if err != nil {
		return stats, err
	}
	c.add(c.commitStatsCache, key, stats)

	return stats, nil
}

// IsCollaborator calls underlying client.
func (c *CachedClient) IsCollaborator(ctx context.Context, owner string, name string, login string) (bool, error) {
	return c.client.IsCollaborator(ctx, owner, name, login)
}

// IssuesCount calls underlying client.
func (c *CachedClient) IssuesCount(ctx context.Context, owner string, name string, author string) (int, error) {
	return c.client.IssuesCount(ctx, owner, name, author)
}

func (c *CachedClient) get(cache *lru.Cache, key string) (interface{}, bool) {
	val, ok := cache.Get(key)
	if !ok {
		return nil, false
	}
	entry := val.(cacheEntry)
	if entry.created.Add(c.ttl).Before(time.Now()) {
		cache.Remove(key)
		return nil, false
	}

	return entry.data, true
}

func (c *CachedClient) add(cache *lru.Cache, key string, data interface{}) {
	cache.Add(key, cacheEntry{
		created: time.Now(),
		data:    data,
	})
}

// repoCacheKey is case insensitive, same as github repository names.
func (c *CachedClient) repoCacheKey(owner string, name string) string {
	return strings.ToLower(owner + "/" + name)
}

func filterCommits(commits []app.Commit, since time.Time) []app.Commit {
	result := make([]app.Commit, 0, len(commits))
	for _, cm := range commits {
		if cm.Date.IsZero() || !cm.Date.Before(since) {
			result = append(result, cm)
		}
	}

	return result
}

type cacheEntry struct {
	created time.Time
	data    interface{}
}

type commitsCacheEntry struct {
	since   time.Time
	commits []app.Commit
}
