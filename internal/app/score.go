package app

import (
	"math"
	"time"
)

const (
	// ScoreWindow is the trailing period counted as recent activity.
	ScoreWindow = 180 * 24 * time.Hour

	// MaxScoredCommits is the number of recent commits whose stats are fetched.
	MaxScoredCommits = 20
)

// Score component caps and weights.
const (
	baseContributionsCap = 1000
	baseWeight           = 0.3

	recentCommitsCap = 100
	recentWeight     = 2.0

	codeLinesPerPoint = 100.0
	codeImpactCap     = 50.0

	collaboratorBonus        = 100.0
	partialCollaboratorBonus = 50.0
	partialCollaboratorMin   = 50

	involvementWeight           = 5.0
	involvementCap              = 100.0
	estimatedIssuesContribRatio = 10

	consistencyWeight = 50.0
)

// ScoreLevel is display category of an influence score.
type ScoreLevel string

// Score levels.
const (
	ScoreLevelLow    ScoreLevel = "low"
	ScoreLevelMedium ScoreLevel = "medium"
	ScoreLevelHigh   ScoreLevel = "high"
)

// ScoreInputs are api derived counts the influence score is computed from.
type ScoreInputs struct {
	Contributions int
	RecentCommits int
	LinesAdded    int
	LinesDeleted  int

	// Collaborator is meaningful only if CollaboratorKnown is true.
	Collaborator      bool
	CollaboratorKnown bool

	// IssuesAndPRs is meaningful only if IssuesKnown is true.
	IssuesAndPRs int
	IssuesKnown  bool
}

// Score is influence score breakdown. It is never persisted.
type Score struct {
	Login  string
	Inputs ScoreInputs

	Base           float64
	RecentActivity float64
	CodeImpact     float64
	Collaborator   float64
	Involvement    float64
	Consistency    float64
	Total          float64

	CollaboratorEstimated bool
	InvolvementEstimated  bool
}

// ComputeScore combines inputs into weighted score.
func ComputeScore(in ScoreInputs) Score {
	contributions := nonNegative(in.Contributions)
	recent := nonNegative(in.RecentCommits)
	lines := nonNegative(in.LinesAdded) + nonNegative(in.LinesDeleted)

	s := Score{
		Inputs:         in,
		Base:           float64(minInt(contributions, baseContributionsCap)) * baseWeight,
		RecentActivity: float64(minInt(recent, recentCommitsCap)) * recentWeight,
		CodeImpact:     math.Min(float64(lines)/codeLinesPerPoint, codeImpactCap),
	}

	switch {
	case in.CollaboratorKnown && in.Collaborator:
		s.Collaborator = collaboratorBonus
	case !in.CollaboratorKnown:
		s.CollaboratorEstimated = true
		if contributions >= partialCollaboratorMin {
			s.Collaborator = partialCollaboratorBonus
		}
	}

	issues := nonNegative(in.IssuesAndPRs)
	if !in.IssuesKnown {
		s.InvolvementEstimated = true
		issues = contributions / estimatedIssuesContribRatio
	}
	s.Involvement = math.Min(float64(issues)*involvementWeight, involvementCap)

	if contributions > 0 {
		ratio := math.Min(float64(recent)/float64(contributions), 1)
		s.Consistency = ratio * consistencyWeight
	}

	sum := s.Base + s.RecentActivity + s.CodeImpact + s.Collaborator + s.Involvement + s.Consistency
	s.Total = math.Round(sum*10) / 10

	return s
}

// Level returns display category of the score.
func (s Score) Level() ScoreLevel {
	switch {
	case s.Total >= 400:
		return ScoreLevelHigh
	case s.Total >= 200:
		return ScoreLevelMedium
	default:
		return ScoreLevelLow
	}
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
