package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// GithubClient returns details about github repositories and their contributors.
//go:generate mockgen -destination mock/githubclient.go -package mock github.com/m-zajac/ghcontributors/internal/app GithubClient
type GithubClient interface {
	Repository(ctx context.Context, owner string, name string) (Repository, error)
	Contributors(ctx context.Context, owner string, name string) ([]Contributor, error)
	CommitsByAuthor(ctx context.Context, owner string, name string, author string, since time.Time) ([]Commit, error)
	CommitStats(ctx context.Context, owner string, name string, sha string) (CommitStats, error)
	IsCollaborator(ctx context.Context, owner string, name string, login string) (bool, error)
	IssuesCount(ctx context.Context, owner string, name string, author string) (int, error)
}

// ContributorsStore keeps the last fetched contributors list.
//go:generate mockgen -destination mock/store.go -package mock github.com/m-zajac/ghcontributors/internal/app ContributorsStore
type ContributorsStore interface {
	Write(contributors []Contributor) error
	Read() ([]Contributor, error)
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	githubClient GithubClient
	store        ContributorsStore
	timeout      time.Duration
	now          func() time.Time

	// storeMu serializes write-then-read cycles on the store.
	storeMu sync.Mutex
}

// NewService creates new Service instance
func NewService(githubClient GithubClient, store ContributorsStore, timeout time.Duration) *Service {
	return &Service{
		githubClient: githubClient,
		store:        store,
		timeout:      timeout,
		now:          time.Now,
	}
}

// FetchContributors retrieves contributors of given "owner/name" repository
// and overwrites the store with them.
func (s *Service) FetchContributors(ctx context.Context, repo string) (Repository, []Contributor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	return s.fetchAndStore(ctx, repo)
}

// Contributors fetches contributors of given repository, caches them in the store
// and returns the stored list narrowed by filter.
func (s *Service) Contributors(ctx context.Context, repo string, filter Filter) (Repository, []Contributor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.storeMu.Lock()
	defer s.storeMu.Unlock()

	r, _, err := s.fetchAndStore(ctx, repo)
	if err != nil {
		return Repository{}, nil, err
	}

	stored, err := s.store.Read()
	if err != nil {
		return Repository{}, nil, fmt.Errorf("reading stored contributors: %w", err)
	}

	return r, filter.Apply(stored), nil
}

// InfluenceScore computes influence score of contributor with given login.
//
// Collaborator check and issues search failures are not returned.
// Estimated values are used instead and marked in returned Score.
func (s *Service) InfluenceScore(ctx context.Context, repo string, login string) (Score, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return Score{}, InvalidRequestError("contributor login cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	r, err := s.repository(ctx, repo)
	if err != nil {
		return Score{}, err
	}

	contributors, err := s.githubClient.Contributors(ctx, r.Owner, r.Name)
	if err != nil {
		return Score{}, fmt.Errorf("retrieving contributors: %w", err)
	}
	contributor, ok := findContributor(contributors, login)
	if !ok {
		return Score{}, NotFoundError(fmt.Sprintf("%s is not a contributor of %s", login, r.FullName))
	}

	commits, err := s.githubClient.CommitsByAuthor(ctx, r.Owner, r.Name, contributor.Login, s.now().Add(-ScoreWindow))
	if err != nil {
		return Score{}, fmt.Errorf("retrieving recent commits: %w", err)
	}

	added, deleted, err := s.commitLines(ctx, r, commits)
	if err != nil {
		return Score{}, err
	}

	in := ScoreInputs{
		Contributions: contributor.Contributions,
		RecentCommits: len(commits),
		LinesAdded:    added,
		LinesDeleted:  deleted,
	}
	if isCollaborator, err := s.githubClient.IsCollaborator(ctx, r.Owner, r.Name, contributor.Login); err == nil {
		in.Collaborator = isCollaborator
		in.CollaboratorKnown = true
	}
	if issues, err := s.githubClient.IssuesCount(ctx, r.Owner, r.Name, contributor.Login); err == nil {
		in.IssuesAndPRs = issues
		in.IssuesKnown = true
	}

	score := ComputeScore(in)
	score.Login = contributor.Login

	return score, nil
}

func (s *Service) fetchAndStore(ctx context.Context, repo string) (Repository, []Contributor, error) {
	r, err := s.repository(ctx, repo)
	if err != nil {
		return Repository{}, nil, err
	}

	contributors, err := s.githubClient.Contributors(ctx, r.Owner, r.Name)
	if err != nil {
		return Repository{}, nil, fmt.Errorf("retrieving contributors of %s: %w", r.FullName, err)
	}

	if err := s.store.Write(contributors); err != nil {
		return Repository{}, nil, fmt.Errorf("storing contributors: %w", err)
	}

	return r, contributors, nil
}

func (s *Service) repository(ctx context.Context, repo string) (Repository, error) {
	owner, name, err := ParseRepository(repo)
	if err != nil {
		return Repository{}, err
	}

	r, err := s.githubClient.Repository(ctx, owner, name)
	if err != nil {
		return Repository{}, fmt.Errorf("retrieving repository %s/%s: %w", owner, name, err)
	}
	if r.Owner == "" || r.Name == "" {
		r.Owner, r.Name = owner, name
	}
	if r.FullName == "" {
		r.FullName = r.Owner + "/" + r.Name
	}

	return r, nil
}

// commitLines sums additions and deletions of at most MaxScoredCommits commits.
func (s *Service) commitLines(ctx context.Context, r Repository, commits []Commit) (int, int, error) {
	if len(commits) > MaxScoredCommits {
		commits = commits[:MaxScoredCommits]
	}

	type respWrapper struct {
		sha   string
		stats CommitStats
		err   error
	}
	responses := make(chan respWrapper, len(commits))
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	for _, c := range commits {
		c := c
		go func() {
			stats, err := s.githubClient.CommitStats(ctx, r.Owner, r.Name, c.SHA)
			responses <- respWrapper{
				sha:   c.SHA,
				stats: stats,
				err:   err,
			}
		}()
	}

	// All responses are collected, so no request outlives this call.
	var added, deleted int
	var firstErr error
	for i := 0; i < cap(responses); i++ {
		resp := <-responses
		if resp.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("retrieving commit %s stats: %w", resp.sha, resp.err)
				cancel()
			}
			continue
		}
		added += resp.stats.Additions
		deleted += resp.stats.Deletions
	}
	if firstErr != nil {
		return 0, 0, firstErr
	}

	return added, deleted, nil
}

func findContributor(contributors []Contributor, login string) (Contributor, bool) {
	for _, c := range contributors {
		if strings.EqualFold(c.Login, login) {
			return c, true
		}
	}

	return Contributor{}, false
}
