package ui

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSymbols(t *testing.T) {
	symbols := []string{SymbolSuccess, SymbolFail, SymbolPending, SymbolComplete, SymbolSkipped}

	seen := make(map[string]bool)
	for _, s := range symbols {
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "symbol %q should be unique", s)
		seen[s] = true
	}
}

func TestGradientColors(t *testing.T) {
	assert.Len(t, GradientColors, 4)
}

func TestSpinner_Lifecycle(t *testing.T) {
	var mu sync.Mutex
	var out strings.Builder

	s := NewSpinner("Generating SSH key")
	s.SetOutput(func(str string) {
		mu.Lock()
		out.WriteString(str)
		mu.Unlock()
	})

	assert.Equal(t, SpinnerPending, s.State())

	s.Start()
	assert.Equal(t, SpinnerInProgress, s.State())
	time.Sleep(150 * time.Millisecond)
	s.Success()

	assert.Equal(t, SpinnerSuccess, s.State())

	mu.Lock()
	rendered := out.String()
	mu.Unlock()
	assert.Contains(t, rendered, "Generating SSH key")
	assert.Contains(t, rendered, SymbolComplete)
}

func TestSpinner_Fail(t *testing.T) {
	var out strings.Builder
	s := NewSpinner("Adding key to agent")
	s.SetOutput(func(str string) { out.WriteString(str) })

	s.Start()
	s.Fail()

	assert.Equal(t, SpinnerFailed, s.State())
	assert.Contains(t, out.String(), SymbolFail)
}

func TestSpinner_Skip(t *testing.T) {
	var out strings.Builder
	s := NewSpinner("Writing SSH config")
	s.SetOutput(func(str string) { out.WriteString(str) })

	s.Start()
	s.Skip()

	assert.Equal(t, SpinnerSkipped, s.State())
	assert.Contains(t, out.String(), SymbolSkipped)
}

func TestSpinner_DoubleStartIsNoop(t *testing.T) {
	s := NewSpinner("test")
	s.SetOutput(func(string) {})

	s.Start()
	s.Start() // Second start must not panic or double-animate
	s.Stop()
	s.Stop() // Second stop must not panic
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "sub-100ms uses two decimals", d: 50 * time.Millisecond, want: "0.05s"},
		{name: "above 100ms uses one decimal", d: 1200 * time.Millisecond, want: "1.2s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.d))
		})
	}
}

func TestRenderTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "ACCOUNT", Width: 10},
		{Title: "EMAIL", Width: 22},
	}
	rows := [][]string{
		{"work", "me@corp.example"},
		{"oss", "me@example.com"},
	}

	out := RenderTable(columns, rows)
	assert.Contains(t, out, "ACCOUNT")
	assert.Contains(t, out, "work")
	assert.Contains(t, out, "me@corp.example")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable([]TableColumn{{Title: "A", Width: 5}}, nil))
}
