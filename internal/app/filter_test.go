package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		min     string
		top     string
		want    Filter
		wantErr bool
	}{
		{
			name: "defaults",
			want: Filter{MinContributions: 100, Limit: 10},
		},
		{
			name: "values",
			min:  "1000",
			top:  "50",
			want: Filter{MinContributions: 1000, Limit: 50},
		},
		{
			name: "labels",
			min:  "> 10K",
			top:  "Top 100",
			want: Filter{MinContributions: 10000, Limit: 100},
		},
		{
			name:    "threshold outside enumeration",
			min:     "5",
			wantErr: true,
		},
		{
			name:    "limit outside enumeration",
			top:     "20",
			wantErr: true,
		},
		{
			name:    "garbage",
			min:     "lots",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilter(tt.min, tt.top)
			require.Equal(t, tt.wantErr, err != nil)
			if err != nil {
				assert.True(t, IsInvalidRequestError(err))
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterApply(t *testing.T) {
	t.Parallel()

	contributors := []Contributor{
		{Login: "a", Contributions: 500},
		{Login: "b", Contributions: 50},
		{Login: "c", Contributions: 300},
		{Login: "d", Contributions: 200},
	}

	tests := []struct {
		name   string
		filter Filter
		want   []Contributor
	}{
		{
			name:   "limit then threshold",
			filter: Filter{MinContributions: 100, Limit: 2},
			want:   []Contributor{{Login: "a", Contributions: 500}},
		},
		{
			name:   "limit larger than list",
			filter: Filter{MinContributions: 100, Limit: 10},
			want: []Contributor{
				{Login: "a", Contributions: 500},
				{Login: "c", Contributions: 300},
				{Login: "d", Contributions: 200},
			},
		},
		{
			name:   "threshold is inclusive",
			filter: Filter{MinContributions: 50, Limit: 2},
			want: []Contributor{
				{Login: "a", Contributions: 500},
				{Login: "b", Contributions: 50},
			},
		},
		{
			name:   "nothing passes",
			filter: Filter{MinContributions: 10000, Limit: 10},
			want:   []Contributor{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Apply(contributors))
		})
	}
}

func TestParseRepository(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        string
		wantOwner string
		wantName  string
		wantErr   bool
	}{
		{in: "apache/spark", wantOwner: "apache", wantName: "spark"},
		{in: "  apache/iceberg ", wantOwner: "apache", wantName: "iceberg"},
		{in: "https://github.com/golang/go", wantOwner: "golang", wantName: "go"},
		{in: "github.com/golang/go.git", wantOwner: "golang", wantName: "go"},
		{in: "golang/go/", wantOwner: "golang", wantName: "go"},
		{in: "", wantErr: true},
		{in: "spark", wantErr: true},
		{in: "/spark", wantErr: true},
		{in: "a/b/c", wantErr: true},
		{in: "a b/c", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			owner, name, err := ParseRepository(tt.in)
			require.Equal(t, tt.wantErr, err != nil, "err: %v", err)
			if err != nil {
				assert.True(t, IsInvalidRequestError(err))
				return
			}
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantName, name)
		})
	}
}
