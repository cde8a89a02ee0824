package github

import (
	"testing"
	"time"

	"github.com/m-zajac/ghcontributors/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_contributorsResponse_ToContributors(t *testing.T) {
	tests := []struct {
		name     string
		response contributorsResponse
		want     []app.Contributor
	}{
		{
			name:     "empty",
			response: contributorsResponse{},
			want:     []app.Contributor{},
		},
		{
			name: "2 items, order kept",
			response: contributorsResponse{
				{Login: "x", Contributions: 9},
				{Login: "y", Contributions: 11},
			},
			want: []app.Contributor{
				{Login: "x", Contributions: 9},
				{Login: "y", Contributions: 11},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.response.ToContributors()
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_commitsResponse_ToCommits(t *testing.T) {
	var resp commitsResponse
	err := json.Unmarshal([]byte(`[
		{
			"sha": "6dcb09b5b57875f334f61aebed695e2e4193db5e",
			"commit": {
				"author": {
					"name": "Monalisa Octocat",
					"date": "2011-04-14T16:00:49Z"
				},
				"message": "Fix all the bugs"
			}
		}
	]`), &resp)
	require.NoError(t, err)

	assert.Equal(t, []app.Commit{
		{
			SHA:  "6dcb09b5b57875f334f61aebed695e2e4193db5e",
			Date: time.Date(2011, 4, 14, 16, 0, 49, 0, time.UTC),
		},
	}, resp.ToCommits())
}

func Test_repositoryResponse_ToRepository(t *testing.T) {
	r := repositoryResponse{
		ID:       1296269,
		Name:     "Hello-World",
		FullName: "octocat/Hello-World",
		Owner:    repositoryResponseOwner{Login: "octocat"},
	}

	assert.Equal(t, app.Repository{
		ID:       1296269,
		Owner:    "octocat",
		Name:     "Hello-World",
		FullName: "octocat/Hello-World",
	}, r.ToRepository())
}
