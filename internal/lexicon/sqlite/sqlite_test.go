package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rcanalyzer/internal/domain"
)

const glossary = "# test glossary\n" +
	"passage\ta section of text\n" +
	"passage\tthe act of passing\n" +
	"paradox\ta statement that contradicts itself\n"

func TestOpenMissing(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	assert.ErrorIs(t, err, domain.ErrResourceUnavailable)
}

func TestImportAndDefine(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "lexicon.db")

	st, err := Create(ctx, path)
	require.NoError(t, err)
	n, err := st.Import(ctx, strings.NewReader(glossary))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.NoError(t, st.Close())

	st, err = Open(ctx, path)
	require.NoError(t, err)
	defer st.Close()

	words, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, words)

	gloss, err := st.Define(ctx, "Passage")
	require.NoError(t, err)
	assert.Equal(t, "a section of text", gloss)

	_, err = st.Define(ctx, "unknownword")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestImportReplacesSenses(t *testing.T) {
	ctx := context.Background()
	st, err := Create(ctx, filepath.Join(t.TempDir(), "lexicon.db"))
	require.NoError(t, err)
	defer st.Close()

	_, err = st.Import(ctx, strings.NewReader(glossary))
	require.NoError(t, err)
	_, err = st.Import(ctx, strings.NewReader("passage\ta way through\n"))
	require.NoError(t, err)

	gloss, err := st.Define(ctx, "passage")
	require.NoError(t, err)
	assert.Equal(t, "a way through", gloss)

	gloss, err = st.Define(ctx, "paradox")
	require.NoError(t, err)
	assert.Equal(t, "a statement that contradicts itself", gloss)

	require.NoError(t, st.Clear(ctx))
	words, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, words)
}

func TestImportRejectsMalformed(t *testing.T) {
	ctx := context.Background()
	st, err := Create(ctx, filepath.Join(t.TempDir(), "lexicon.db"))
	require.NoError(t, err)
	defer st.Close()

	_, err = st.Import(ctx, strings.NewReader("no tab on this line\n"))
	assert.Error(t, err)
}
