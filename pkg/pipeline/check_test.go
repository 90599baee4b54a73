package pipeline_test

import (
	"testing"

	"github.com/arthur-debert/glossary/pkg/errors"
	"github.com/arthur-debert/glossary/pkg/pipeline"
	"github.com/arthur-debert/glossary/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	s := newSession(t, render.BackendHTML)
	src := "---\ntitle: x\n---\n" +
		"Uses {{< glossary CLI >}}.\n" +
		"\n" +
		"And {{< glossary widget >}} and {{< glossary gadget def=\"A gadget.\" >}}.\n" +
		"{{< glossary table=true >}} {{{< glossary escaped >}}} {{< video x >}}\n"

	findings, err := s.Check("doc.md", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, []pipeline.Finding{
		{Document: "doc.md", Line: 4, Term: "cli", Defined: true},
		{Document: "doc.md", Line: 6, Term: "widget"},
		{Document: "doc.md", Line: 6, Term: "gadget", Defined: true, Explicit: true},
	}, findings)

	undefined := pipeline.Undefined(findings)
	require.Len(t, undefined, 1)
	assert.Equal(t, "widget", undefined[0].Term)
	assert.Equal(t, 0, s.Terms().Len(), "check does not record terms")
}

func TestCheckMissingDefinitionsFile(t *testing.T) {
	s := newSession(t, render.BackendHTML)
	_, err := s.Check("doc.md", []byte("{{< glossary cli path=nope.yml >}}\n"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestCheckNoShortcodes(t *testing.T) {
	s := newSession(t, render.BackendHTML)
	findings, err := s.Check("doc.md", []byte("Plain text.\n"))
	require.NoError(t, err)
	assert.Empty(t, findings)
}
