package delegate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcanalyzer/internal/domain"
)

type stubCompleter struct {
	prompt string
	reply  string
	err    error
}

func (s *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

func TestPrompt(t *testing.T) {
	p := Prompt("  The cat sat.  ")
	assert.True(t, strings.HasPrefix(p, "Analyze the following reading-comprehension passage"))
	assert.True(t, strings.HasSuffix(p, "Passage:\nThe cat sat."))
	for _, want := range []string{"Central idea", "Tone", "Structure", "5 difficult words", "3 comprehension questions with answers"} {
		assert.Contains(t, p, want)
	}
}

func TestAdapterPassesReplyThrough(t *testing.T) {
	stub := &stubCompleter{reply: "  **Central idea:** cats.\n"}
	got, err := NewAdapter(stub).Analyze(context.Background(), "The cat sat.")
	require.NoError(t, err)
	assert.Equal(t, "  **Central idea:** cats.\n", got)
	assert.Equal(t, Prompt("The cat sat."), stub.prompt)
}

func TestAdapterWrapsErrors(t *testing.T) {
	_, err := NewAdapter(&stubCompleter{err: errors.New("connection reset")}).Analyze(context.Background(), "x")
	var svcErr *domain.ExternalServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Contains(t, svcErr.Error(), "connection reset")

	orig := &domain.ExternalServiceError{Op: "chat completion", StatusCode: 503, Err: errors.New("busy")}
	_, err = NewAdapter(&stubCompleter{err: orig}).Analyze(context.Background(), "x")
	assert.Same(t, orig, err)

	_, err = NewAdapter(nil).Analyze(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrResourceUnavailable)
}
