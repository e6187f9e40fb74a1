package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcanalyzer/internal/domain"
)

type fakeService struct {
	calls   int
	passage string
	err     error
}

func (f *fakeService) Report(_ context.Context, passage string) (*domain.Report, error) {
	f.calls++
	f.passage = passage
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Report{Result: &domain.AnalysisResult{
		Metrics:     domain.Metrics{TotalWords: 6},
		CentralIdea: "The cat sat.",
	}}, nil
}

func sized(t *testing.T, svc ReportPort) Model {
	t.Helper()
	m, _ := New(svc, time.Second).Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return m.(Model)
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

func TestViewBeforeResize(t *testing.T) {
	assert.Equal(t, "Loading...", New(&fakeService{}, 0).View())
}

func TestAnalyzeEmptyShowsWarning(t *testing.T) {
	svc := &fakeService{}
	m := sized(t, svc)
	m.input.SetValue("   ")

	m, cmd := press(m, tea.KeyCtrlS)
	assert.Nil(t, cmd)
	assert.Equal(t, EmptyInputWarning, m.status)
	assert.Zero(t, svc.calls)
	assert.Contains(t, m.View(), EmptyInputWarning)
}

func TestAnalyzeRendersReport(t *testing.T) {
	svc := &fakeService{}
	m := sized(t, svc)
	m.input.SetValue("The cat sat. It was happy.")

	m, cmd := press(m, tea.KeyCtrlS)
	require.NotNil(t, cmd)
	assert.True(t, m.analyzing)

	again, second := press(m, tea.KeyCtrlS)
	assert.Nil(t, second)
	assert.True(t, again.analyzing)

	next, _ := m.Update(cmd())
	m = next.(Model)
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "The cat sat. It was happy.", svc.passage)
	assert.False(t, m.analyzing)
	assert.Equal(t, "Analyzed 6 words.", m.status)
	assert.Contains(t, m.View(), "The cat sat.")
}

func TestAnalyzeError(t *testing.T) {
	m := sized(t, &fakeService{err: errors.New("lexicon: resource unavailable")})
	m.input.SetValue("text")

	m, cmd := press(m, tea.KeyCtrlS)
	next, _ := m.Update(cmd())
	m = next.(Model)
	assert.Equal(t, "Error: lexicon: resource unavailable", m.status)
	assert.Nil(t, m.report)
}

func TestTabSwitchesFocus(t *testing.T) {
	m := sized(t, &fakeService{})
	assert.True(t, m.input.Focused())

	m, _ = press(m, tea.KeyTab)
	assert.Equal(t, focusReport, m.focus)
	assert.False(t, m.input.Focused())

	m, _ = press(m, tea.KeyTab)
	assert.Equal(t, focusInput, m.focus)
	assert.True(t, m.input.Focused())
}

func TestCtrlCQuits(t *testing.T) {
	_, cmd := press(sized(t, &fakeService{}), tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
