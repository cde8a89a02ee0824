package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghcontributors/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns details about github repositories and contributors.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string
	userAgent string

	responseMaxSize     int
	contributorsPerPage int
	contributorsMaxPage int
	commitsPerPage      int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional.
func NewClient(doer HTTPDoer, address string, authToken string) *Client {
	c := Client{
		doer:      doer,
		address:   address,
		authToken: authToken,
		userAgent: "ghcontributors",

		responseMaxSize:     1024 * 1024 * 10,
		contributorsPerPage: 100,
		contributorsMaxPage: 5,
		commitsPerPage:      100,
	}

	return &c
}

// Repository returns repository details. Github resolves renamed repositories,
// so returned owner and name may differ from requested ones.
func (c *Client) Repository(ctx context.Context, owner string, name string) (app.Repository, error) {
	if err := validateRepo(owner, name); err != nil {
		return app.Repository{}, err
	}

	var resp repositoryResponse
	if err := c.getJSON(ctx, c.repoPath(owner, name), nil, &resp); err != nil {
		return app.Repository{}, err
	}

	return resp.ToRepository(), nil
}

// Contributors returns repository contributors in api order (most contributions first).
func (c *Client) Contributors(ctx context.Context, owner string, name string) ([]app.Contributor, error) {
	if err := validateRepo(owner, name); err != nil {
		return nil, err
	}

	contributors := make([]app.Contributor, 0, c.contributorsPerPage)
	for page := 1; page <= c.contributorsMaxPage; page++ {
		v := make(url.Values)
		v.Set("per_page", strconv.Itoa(c.contributorsPerPage))
		v.Set("page", strconv.Itoa(page))

		var resp contributorsResponse
		if err := c.getJSON(ctx, c.repoPath(owner, name)+"/contributors", v, &resp); err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		contributors = append(contributors, resp.ToContributors()...)

		if len(resp) < c.contributorsPerPage {
			break
		}
	}

	return contributors, nil
}

// CommitsByAuthor returns up to 100 latest commits of given author created after since.
func (c *Client) CommitsByAuthor(ctx context.Context, owner string, name string, author string, since time.Time) ([]app.Commit, error) {
	if err := validateRepo(owner, name); err != nil {
		return nil, err
	}
	if author == "" {
		return nil, app.InvalidRequestError("author cannot be empty")
	}

	v := make(url.Values)
	v.Set("author", author)
	v.Set("since", since.UTC().Format(time.RFC3339))
	v.Set("per_page", strconv.Itoa(c.commitsPerPage))

	var resp commitsResponse
	if err := c.getJSON(ctx, c.repoPath(owner, name)+"/commits", v, &resp); err != nil {
		return nil, err
	}

	return resp.ToCommits(), nil
}

// CommitStats returns number of added and deleted lines in given commit.
func (c *Client) CommitStats(ctx context.Context, owner string, name string, sha string) (app.CommitStats, error) {
	if err := validateRepo(owner, name); err != nil {
		return app.CommitStats{}, err
	}
	if sha == "" {
		return app.CommitStats{}, app.InvalidRequestError("commit sha cannot be empty")
	}

	var resp commitResponse
	if err := c.getJSON(ctx, c.repoPath(owner, name)+"/commits/"+url.PathEscape(sha), nil, &resp); err != nil {
		return app.CommitStats{}, err
	}

	return resp.ToCommitStats(), nil
}

// IsCollaborator checks if user is a collaborator of the repository.
// Github requires push access for this check, so it fails for most tokens.
func (c *Client) IsCollaborator(ctx context.Context, owner string, name string, login string) (bool, error) {
	if err := validateRepo(owner, name); err != nil {
		return false, err
	}
	if login == "" {
		return false, app.InvalidRequestError("login cannot be empty")
	}

	req, err := c.newRequest(c.repoPath(owner, name)+"/collaborators/"+url.PathEscape(login), nil)
	if err != nil {
		return false, err
	}

	_, code, err := c.makeRequest(ctx, req, c.responseMaxSize)
	switch {
	case code == http.StatusNotFound:
		return false, nil
	case err != nil:
		return false, fmt.Errorf("making http request: %w", err)
	case code == http.StatusNoContent:
		return true, nil
	default:
		return false, fmt.Errorf("unexpected http status code: %d", code)
	}
}

// IssuesCount returns number of issues and pull requests opened by author in the repository.
func (c *Client) IssuesCount(ctx context.Context, owner string, name string, author string) (int, error) {
	if err := validateRepo(owner, name); err != nil {
		return 0, err
	}
	if author == "" {
		return 0, app.InvalidRequestError("author cannot be empty")
	}

	v := make(url.Values)
	v.Set("q", fmt.Sprintf("repo:%s/%s author:%s", owner, name, author))
	v.Set("per_page", "1")

	var resp searchIssuesResponse
	if err := c.getJSON(ctx, "/search/issues", v, &resp); err != nil {
		return 0, err
	}

	return resp.TotalCount, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target interface{}) error {
	req, err := c.newRequest(path, query)
	if err != nil {
		return err
	}

	body, _, err := c.makeRequest(ctx, req, c.responseMaxSize)
	if err != nil {
		return fmt.Errorf("making http request: %w", err)
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("unmarshalling response: %w", err)
	}

	return nil
}

func (c *Client) newRequest(path string, query url.Values) (*http.Request, error) {
	u, err := url.Parse(c.address + path)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	return httpReq, nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request, maxBytes int) ([]byte, int, error) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, 0, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.StatusCode, nil
	}
	if resp.StatusCode/100 > 3 {
		if c.checkRateLimitExceeded(&resp.Header) {
			return nil, resp.StatusCode, app.TooManyRequestsError("github api rate limit exceeded")
		}
		if resp.StatusCode == http.StatusNotFound {
			return nil, resp.StatusCode, app.NotFoundError(fmt.Sprintf("not found: %s", req.URL.Path))
		}
		return nil, resp.StatusCode, fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	// One byte over the limit tells truncated body apart from one of exactly maxBytes.
	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)+1))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading http response body: %w", err)
	}
	if len(b) > maxBytes {
		return nil, resp.StatusCode, errors.New("response body too large")
	}

	return b, resp.StatusCode, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}

func (c *Client) repoPath(owner string, name string) string {
	return fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))
}

func validateRepo(owner string, name string) error {
	if owner == "" {
		return app.InvalidRequestError("repository owner cannot be empty")
	}
	if name == "" {
		return app.InvalidRequestError("repository name cannot be empty")
	}
	return nil
}
