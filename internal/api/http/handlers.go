package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghcontributors/internal/app"
	"github.com/sirupsen/logrus"
)

// gridColumns is the number of contributor cards in a dashboard row.
const gridColumns = 5

//go:embed templates/*.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

type option struct {
	Label    string
	Value    int
	Selected bool
}

type card struct {
	Login         string
	Contributions int

	// ScoreQuery holds query params of "calculate influence" form, nil if scoring is disabled.
	ScoreQuery map[string]string
	Score      *app.Score
}

type dashboardPage struct {
	Repo       string
	Repository string
	Thresholds []option
	Limits     []option
	Rows       [][]card
	Error      string
	ScoreError string
}

func newOptions(options []app.Option, selected int) []option {
	result := make([]option, 0, len(options))
	for _, o := range options {
		result = append(result, option{
			Label:    o.Label,
			Value:    o.Value,
			Selected: o.Value == selected,
		})
	}

	return result
}

func newCardRows(
	repo string,
	filter app.Filter,
	contributors []app.Contributor,
	scoringEnabled bool,
	score *app.Score,
) [][]card {
	var rows [][]card
	for i, c := range contributors {
		if i%gridColumns == 0 {
			rows = append(rows, make([]card, 0, gridColumns))
		}

		cd := card{
			Login:         c.Login,
			Contributions: c.Contributions,
		}
		if scoringEnabled {
			cd.ScoreQuery = map[string]string{
				"repo":  repo,
				"min":   strconv.Itoa(filter.MinContributions),
				"top":   strconv.Itoa(filter.Limit),
				"score": c.Login,
			}
		}
		if score != nil && strings.EqualFold(score.Login, c.Login) {
			cd.Score = score
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], cd)
	}

	return rows
}

// NewDashboardHandler creates handlerfunc rendering contributors dashboard page.
//
// Query params: repo - "owner/name", min - contributions threshold, top - results count,
// score - login of contributor whose influence score is shown (only if scoring is enabled).
func NewDashboardHandler(
	service Service,
	scoringEnabled bool,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		q := r.URL.Query()
		page := dashboardPage{
			Repo: strings.TrimSpace(q.Get("repo")),
		}
		status := http.StatusOK

		filter, err := app.ParseFilter(q.Get("min"), q.Get("top"))
		if err != nil {
			filter = app.DefaultFilter()
			status, page.Error = errorResponse(err)
		}
		page.Thresholds = newOptions(app.ContributionThresholds, filter.MinContributions)
		page.Limits = newOptions(app.ResultLimits, filter.Limit)

		if page.Repo != "" && page.Error == "" {
			repo, contributors, err := service.Contributors(r.Context(), page.Repo, filter)
			if err != nil {
				status, page.Error = errorResponse(err)
				logFailure(l.WithField("repo", page.Repo), err, status, "retrieving contributors")
			} else {
				page.Repository = repo.FullName

				var score *app.Score
				if login := strings.TrimSpace(q.Get("score")); scoringEnabled && login != "" {
					s, err := service.InfluenceScore(r.Context(), page.Repo, login)
					if err != nil {
						scoreStatus, msg := errorResponse(err)
						page.ScoreError = "Couldn't calculate influence score of " + login + ": " + msg
						logFailure(
							l.WithFields(logrus.Fields{"repo": page.Repo, "login": login}),
							err,
							scoreStatus,
							"calculating influence score",
						)
					} else {
						score = &s
					}
				}

				page.Rows = newCardRows(page.Repo, filter, contributors, scoringEnabled, score)
			}
		}

		var buf bytes.Buffer
		if err := dashboardTemplate.Execute(&buf, page); err != nil {
			l.WithError(err).Error("rendering dashboard")
			http.Error(w, "", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write(buf.Bytes())
	}
}

type contributor struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
}

type contributorsResponse struct {
	Repository   string        `json:"repository"`
	Contributors []contributor `json:"contributors"`
}

func newContributorsResponse(repo app.Repository, contributors []app.Contributor) contributorsResponse {
	cs := make([]contributor, 0, len(contributors))
	for _, c := range contributors {
		cs = append(cs, contributor{
			Login:         c.Login,
			Contributions: c.Contributions,
		})
	}

	return contributorsResponse{
		Repository:   repo.FullName,
		Contributors: cs,
	}
}

// NewContributorsHandler creates handlerfunc returning contributors json response.
func NewContributorsHandler(
	getRepo func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo := getRepo(r)
		filter, err := app.ParseFilter(r.URL.Query().Get("min"), r.URL.Query().Get("top"))
		if err != nil {
			writeError(w, l, err)
			return
		}

		rp, contributors, err := service.Contributors(r.Context(), repo, filter)
		if err != nil {
			writeError(w, l.WithField("repo", repo), err)
			return
		}

		writeJSON(w, newContributorsResponse(rp, contributors))
	}
}

type scoreResponse struct {
	Login                 string  `json:"login"`
	Total                 float64 `json:"total"`
	Level                 string  `json:"level"`
	Base                  float64 `json:"base"`
	RecentActivity        float64 `json:"recentActivity"`
	CodeImpact            float64 `json:"codeImpact"`
	Collaborator          float64 `json:"collaborator"`
	Involvement           float64 `json:"involvement"`
	Consistency           float64 `json:"consistency"`
	CollaboratorEstimated bool    `json:"collaboratorEstimated"`
	InvolvementEstimated  bool    `json:"involvementEstimated"`
}

func newScoreResponse(s app.Score) scoreResponse {
	return scoreResponse{
		Login:                 s.Login,
		Total:                 s.Total,
		Level:                 string(s.Level()),
		Base:                  s.Base,
		RecentActivity:        s.RecentActivity,
		CodeImpact:            s.CodeImpact,
		Collaborator:          s.Collaborator,
		Involvement:           s.Involvement,
		Consistency:           s.Consistency,
		CollaboratorEstimated: s.CollaboratorEstimated,
		InvolvementEstimated:  s.InvolvementEstimated,
	}
}

// NewScoreHandler creates handlerfunc returning influence score json response.
func NewScoreHandler(
	getParams func(*http.Request) (repo string, login string),
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo, login := getParams(r)

		score, err := service.InfluenceScore(r.Context(), repo, login)
		if err != nil {
			writeError(w, l.WithFields(logrus.Fields{"repo": repo, "login": login}), err)
			return
		}

		writeJSON(w, newScoreResponse(score))
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, l logrus.FieldLogger, err error) {
	status, msg := errorResponse(err)
	logFailure(l, err, status, "handling request")
	http.Error(w, msg, status)
}

// errorResponse maps service error to http status and message safe to show to users.
func errorResponse(err error) (int, string) {
	switch {
	case app.IsInvalidRequestError(err):
		return http.StatusBadRequest, err.Error()
	case app.IsNotFoundError(err):
		return http.StatusNotFound, err.Error()
	case app.IsTooManyRequestsError(err):
		return http.StatusTooManyRequests, "GitHub API rate limit exceeded, try again later"
	default:
		return http.StatusInternalServerError, "Couldn't retrieve data from GitHub"
	}
}

// logFailure logs failed request. Client errors are logged on warning level.
func logFailure(l logrus.FieldLogger, err error, status int, msg string) {
	entry := l.WithError(err).WithField("status", status)
	if status < http.StatusInternalServerError {
		entry.Warn(msg)
		return
	}
	entry.Error(msg)
}
