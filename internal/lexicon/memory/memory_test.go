package memory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcanalyzer/internal/domain"
)

func TestSeed(t *testing.T) {
	lx := Seed()
	assert.Equal(t, 524, lx.Len())

	gloss, err := lx.Define(context.Background(), "ephemeral")
	require.NoError(t, err)
	assert.Equal(t, "lasting a very short time", gloss)

	gloss, err = lx.Define(context.Background(), "passage")
	require.NoError(t, err)
	assert.Equal(t, "a section of text; particularly a section of medium length", gloss)

	gloss, err = lx.Define(context.Background(), "Abstract")
	require.NoError(t, err)
	assert.Equal(t, "a concise summary of a longer text", gloss)

	_, err = lx.Define(context.Background(), "zzzzzzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLoad(t *testing.T) {
	lx, err := Load(strings.NewReader("Tenet\ta principle\ntenet\ta belief\n"))
	require.NoError(t, err)
	gloss, err := lx.Define(context.Background(), "tenet")
	require.NoError(t, err)
	assert.Equal(t, "a principle", gloss)

	_, err = Load(strings.NewReader("broken\n"))
	assert.Error(t, err)
}
