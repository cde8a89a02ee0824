package app

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   ScoreInputs
		want Score
	}{
		{
			name: "zero inputs, secondary data known",
			in: ScoreInputs{
				CollaboratorKnown: true,
				IssuesKnown:       true,
			},
			want: Score{},
		},
		{
			name: "everything capped",
			in: ScoreInputs{
				Contributions:     5000,
				RecentCommits:     400,
				LinesAdded:        90000,
				LinesDeleted:      10000,
				Collaborator:      true,
				CollaboratorKnown: true,
				IssuesAndPRs:      300,
				IssuesKnown:       true,
			},
			want: Score{
				Base:           300,
				RecentActivity: 200,
				CodeImpact:     50,
				Collaborator:   100,
				Involvement:    100,
				Consistency:    4,
				Total:          754,
			},
		},
		{
			name: "regular contributor",
			in: ScoreInputs{
				Contributions:     120,
				RecentCommits:     30,
				LinesAdded:        1500,
				LinesDeleted:      500,
				CollaboratorKnown: true,
				IssuesAndPRs:      4,
				IssuesKnown:       true,
			},
			want: Score{
				Base:           36,
				RecentActivity: 60,
				CodeImpact:     20,
				Involvement:    20,
				Consistency:    12.5,
				Total:          148.5,
			},
		},
		{
			name: "fallbacks for failed secondary calls",
			in: ScoreInputs{
				Contributions: 80,
				RecentCommits: 0,
			},
			want: Score{
				Base:                  24,
				Collaborator:          50,
				Involvement:           40,
				Total:                 114,
				CollaboratorEstimated: true,
				InvolvementEstimated:  true,
			},
		},
		{
			name: "collaborator fallback below threshold",
			in: ScoreInputs{
				Contributions: 49,
				IssuesKnown:   true,
			},
			want: Score{
				Base:                  14.7,
				Total:                 14.7,
				CollaboratorEstimated: true,
			},
		},
		{
			name: "negative inputs treated as zero",
			in: ScoreInputs{
				Contributions:     -10,
				RecentCommits:     -1,
				LinesAdded:        -100,
				CollaboratorKnown: true,
				IssuesAndPRs:      -3,
				IssuesKnown:       true,
			},
			want: Score{},
		},
		{
			name: "total rounded to one decimal",
			in: ScoreInputs{
				Contributions:     3,
				RecentCommits:     1,
				LinesAdded:        7,
				CollaboratorKnown: true,
				IssuesKnown:       true,
			},
			want: Score{
				Base:           0.9,
				RecentActivity: 2,
				CodeImpact:     0.07,
				Consistency:    50.0 / 3,
				Total:          19.6,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeScore(tt.in)
			tt.want.Inputs = tt.in

			assert.InDelta(t, tt.want.Base, got.Base, 1e-9)
			assert.InDelta(t, tt.want.RecentActivity, got.RecentActivity, 1e-9)
			assert.InDelta(t, tt.want.CodeImpact, got.CodeImpact, 1e-9)
			assert.InDelta(t, tt.want.Collaborator, got.Collaborator, 1e-9)
			assert.InDelta(t, tt.want.Involvement, got.Involvement, 1e-9)
			assert.InDelta(t, tt.want.Consistency, got.Consistency, 1e-9)
			assert.Equal(t, tt.want.Total, got.Total)
			assert.Equal(t, tt.want.CollaboratorEstimated, got.CollaboratorEstimated)
			assert.Equal(t, tt.want.InvolvementEstimated, got.InvolvementEstimated)
			assert.Equal(t, tt.in, got.Inputs)
		})
	}
}

func TestComputeScoreBounds(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		in := ScoreInputs{
			Contributions:     r.Intn(40000) - 100,
			RecentCommits:     r.Intn(500) - 10,
			LinesAdded:        r.Intn(200000),
			LinesDeleted:      r.Intn(200000),
			Collaborator:      r.Intn(2) == 0,
			CollaboratorKnown: r.Intn(2) == 0,
			IssuesAndPRs:      r.Intn(1000),
			IssuesKnown:       r.Intn(2) == 0,
		}
		s := ComputeScore(in)

		assert.True(t, s.Base >= 0 && s.Base <= 300, "base %v for %+v", s.Base, in)
		assert.True(t, s.RecentActivity >= 0 && s.RecentActivity <= 200, "recent %v for %+v", s.RecentActivity, in)
		assert.True(t, s.CodeImpact >= 0 && s.CodeImpact <= 50, "code impact %v for %+v", s.CodeImpact, in)
		assert.Contains(t, []float64{0, 50, 100}, s.Collaborator, "collaborator for %+v", in)
		assert.True(t, s.Involvement >= 0 && s.Involvement <= 100, "involvement %v for %+v", s.Involvement, in)
		assert.True(t, s.Consistency >= 0 && s.Consistency <= 50, "consistency %v for %+v", s.Consistency, in)

		sum := s.Base + s.RecentActivity + s.CodeImpact + s.Collaborator + s.Involvement + s.Consistency
		assert.Equal(t, math.Round(sum*10)/10, s.Total)
	}
}

func TestScoreLevel(t *testing.T) {
	assert.Equal(t, ScoreLevelLow, Score{Total: 0}.Level())
	assert.Equal(t, ScoreLevelLow, Score{Total: 199.9}.Level())
	assert.Equal(t, ScoreLevelMedium, Score{Total: 200}.Level())
	assert.Equal(t, ScoreLevelMedium, Score{Total: 399.9}.Level())
	assert.Equal(t, ScoreLevelHigh, Score{Total: 400}.Level())
}
