package app

import (
	"fmt"
	"strconv"
	"strings"
)

// Option is a labeled value of an enumerated filter control.
type Option struct {
	Label string
	Value int
}

// ContributionThresholds lists allowed minimum contribution counts, in display order.
var ContributionThresholds = []Option{
	{Label: "> 1", Value: 1},
	{Label: "> 100", Value: 100},
	{Label: "> 1K", Value: 1000},
	{Label: "> 10K", Value: 10000},
}

// ResultLimits lists allowed result counts, in display order.
var ResultLimits = []Option{
	{Label: "Top 10", Value: 10},
	{Label: "Top 50", Value: 50},
	{Label: "Top 100", Value: 100},
}

const (
	// DefaultMinContributions is used when no threshold is requested.
	DefaultMinContributions = 100
	// DefaultLimit is used when no result count is requested.
	DefaultLimit = 10
)

// Filter narrows a contributors list for display.
type Filter struct {
	MinContributions int
	Limit            int
}

// DefaultFilter returns filter with default control values.
func DefaultFilter() Filter {
	return Filter{
		MinContributions: DefaultMinContributions,
		Limit:            DefaultLimit,
	}
}

// ParseFilter builds Filter from raw control values.
// Empty values fall back to defaults. Values outside of enumerations are rejected.
func ParseFilter(minContributions string, limit string) (Filter, error) {
	f := DefaultFilter()

	if minContributions != "" {
		v, err := parseOption(ContributionThresholds, minContributions)
		if err != nil {
			return Filter{}, InvalidRequestError(fmt.Sprintf("invalid contributions threshold: %v", err))
		}
		f.MinContributions = v
	}
	if limit != "" {
		v, err := parseOption(ResultLimits, limit)
		if err != nil {
			return Filter{}, InvalidRequestError(fmt.Sprintf("invalid results count: %v", err))
		}
		f.Limit = v
	}

	return f, nil
}

// Apply returns first Limit contributors that have at least MinContributions.
// Limit is applied before the threshold, so the result may be shorter than Limit.
func (f Filter) Apply(contributors []Contributor) []Contributor {
	if f.Limit > 0 && len(contributors) > f.Limit {
		contributors = contributors[:f.Limit]
	}

	result := make([]Contributor, 0, len(contributors))
	for _, c := range contributors {
		if c.Contributions < f.MinContributions {
			continue
		}
		result = append(result, c)
	}

	return result
}

// parseOption accepts either option value ("100") or its label ("> 100").
func parseOption(options []Option, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	v, convErr := strconv.Atoi(raw)
	for _, o := range options {
		if o.Label == raw || (convErr == nil && o.Value == v) {
			return o.Value, nil
		}
	}

	return 0, fmt.Errorf("%q is not one of allowed values", raw)
}

// ParseRepository splits "owner/name" repository identifier.
// Github url prefix and ".git" suffix are tolerated.
func ParseRepository(s string) (owner string, name string, err error) {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"https://github.com/", "http://github.com/", "github.com/"} {
		s = strings.TrimPrefix(s, prefix)
	}
	s = strings.TrimSuffix(strings.TrimSuffix(s, "/"), ".git")

	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", InvalidRequestError(fmt.Sprintf("repository must be in form owner/name, got %q", s))
	}
	for _, p := range parts {
		if strings.ContainsAny(p, " ?#%") {
			return "", "", InvalidRequestError(fmt.Sprintf("invalid repository name %q", s))
		}
	}

	return parts[0], parts[1], nil
}
