package github

import (
	"time"

	"github.com/m-zajac/ghcontributors/internal/app"
)

type repositoryResponse struct {
	ID       int                     `json:"id"`
	Name     string                  `json:"name"`
	FullName string                  `json:"full_name"`
	Owner    repositoryResponseOwner `json:"owner"`
}

type repositoryResponseOwner struct {
	Login string `json:"login"`
}

func (r repositoryResponse) ToRepository() app.Repository {
	return app.Repository{
		ID:       r.ID,
		Owner:    r.Owner.Login,
		Name:     r.Name,
		FullName: r.FullName,
	}
}

type contributorsResponse []struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
}

func (s contributorsResponse) ToContributors() []app.Contributor {
	cs := make([]app.Contributor, 0, len(s))
	for _, el := range s {
		cs = append(cs, app.Contributor{
			Login:         el.Login,
			Contributions: el.Contributions,
		})
	}

	return cs
}

type commitsResponse []struct {
	SHA    string               `json:"sha"`
	Commit commitsResponseInner `json:"commit"`
}

type commitsResponseInner struct {
	Author struct {
		Date time.Time `json:"date"`
	} `json:"author"`
}

func (s commitsResponse) ToCommits() []app.Commit {
	cs := make([]app.Commit, 0, len(s))
	for _, el := range s {
		cs = append(cs, app.Commit{
			SHA:  el.SHA,
			Date: el.Commit.Author.Date,
		})
	}

	return cs
}

type commitResponse struct {
	SHA   string `json:"sha"`
	Stats struct {
		Additions int `json:"additions"`
		Deletions int `json:"deletions"`
		Total     int `json:"total"`
	} `json:"stats"`
}

func (r commitResponse) ToCommitStats() app.CommitStats {
	return app.CommitStats{
		Additions: r.Stats.Additions,
		Deletions: r.Stats.Deletions,
	}
}

type searchIssuesResponse struct {
	TotalCount        int  `json:"total_count"`
	IncompleteResults bool `json:"incomplete_results"`
}
