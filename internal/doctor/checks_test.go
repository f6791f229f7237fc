package doctor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubCheck struct {
	name     string
	category string
	result   CheckResult
}

func (c *stubCheck) Name() string     { return c.name }
func (c *stubCheck) Category() string { return c.category }
func (c *stubCheck) Run() CheckResult { return c.result }
func (c *stubCheck) Fix() error       { return nil }

func TestCheckStatusString(t *testing.T) {
	assert.Equal(t, "pass", StatusPass.String())
	assert.Equal(t, "warn", StatusWarn.String())
	assert.Equal(t, "fail", StatusFail.String())
	assert.Equal(t, "unknown", CheckStatus(99).String())
}

func TestRunAll(t *testing.T) {
	checks := []Check{
		&stubCheck{name: "a", result: CheckResult{Name: "a", Status: StatusPass}},
		&stubCheck{name: "b", result: CheckResult{Name: "b", Status: StatusFail}},
	}

	results := RunAll(checks)
	assert.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Name)
	assert.Equal(t, StatusFail, results[1].Status)
}

func TestGroupByCategory(t *testing.T) {
	checks := []Check{
		&stubCheck{name: "a", category: "SSH"},
		&stubCheck{name: "b", category: "GIT"},
		&stubCheck{name: "c", category: "SSH"},
	}

	grouped := GroupByCategory(checks)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["SSH"], 2)
	assert.Len(t, grouped["GIT"], 1)
}

func TestHasFailures(t *testing.T) {
	assert.False(t, HasFailures([]CheckResult{{Status: StatusPass}, {Status: StatusWarn}}))
	assert.True(t, HasFailures([]CheckResult{{Status: StatusPass}, {Status: StatusFail}}))
}

func TestFixableCount(t *testing.T) {
	results := []CheckResult{
		{Status: StatusPass, Fixable: true}, // passing results don't count
		{Status: StatusWarn, Fixable: true},
		{Status: StatusFail, Fixable: false},
		{Status: StatusFail, Fixable: true},
	}
	assert.Equal(t, 2, FixableCount(results))
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name    string
		results []CheckResult
		want    string
	}{
		{"all passing", []CheckResult{{Status: StatusPass}, {Status: StatusPass}}, "Everything looks good"},
		{"one issue", []CheckResult{{Status: StatusPass}, {Status: StatusWarn}}, "1 issue found"},
		{"mixed issues", []CheckResult{{Status: StatusWarn}, {Status: StatusFail}}, "2 issues found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(tt.results))
		})
	}
}

func TestNewAllChecks(t *testing.T) {
	checks := NewAllChecks(t.TempDir())
	assert.NotEmpty(t, checks)

	names := make(map[string]bool)
	for _, c := range checks {
		assert.False(t, names[c.Name()], "duplicate check name %q", c.Name())
		names[c.Name()] = true
	}
	assert.True(t, names["home_dir"])
	assert.True(t, names["ssh_agent"])
	assert.True(t, names["global_gitconfig"])
}
