package assets_test

import (
	"testing"

	"github.com/arthur-debert/glossary/pkg/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetRequireIsIdempotent(t *testing.T) {
	s := assets.NewSet()
	s.Require(assets.GlossaryCSS)
	s.Require(assets.GlossaryJS)
	s.Require(assets.GlossaryCSS)

	assert.Equal(t, []string{assets.GlossaryCSS, assets.GlossaryJS}, s.Names())
}

func TestListResolvesBundledAssets(t *testing.T) {
	s := assets.NewSet()
	s.Require(assets.GlossaryCSS)
	s.Require(assets.GlossaryJS)

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, assets.Stylesheet, list[0].Kind)
	assert.Contains(t, list[0].Content, "a.glossary")
	assert.Contains(t, list[0].Content, "table.glossary_table")

	assert.Equal(t, assets.Script, list[1].Kind)
	assert.Contains(t, list[1].Content, "data-bs-content")
}

func TestLookupUnknown(t *testing.T) {
	_, err := assets.Lookup("missing.css")
	assert.Error(t, err)
}

func TestEmptySet(t *testing.T) {
	list, err := assets.NewSet().List()
	require.NoError(t, err)
	assert.Empty(t, list)
}
