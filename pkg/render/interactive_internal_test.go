package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html/atom"
)

func TestFragmentHTML(t *testing.T) {
	assert.Equal(t, "<em>Command</em>-line interface.", fragmentHTML("*Command*-line interface.", true))
	assert.Equal(t, "<p>one</p>\n<p>two</p>", fragmentHTML("one\n\ntwo", true))
}

func TestRenderNode(t *testing.T) {
	a := element(atom.A, attr("class", ClassGlossary), attr("data-bs-content", `Say "hi"`))
	appendFragment(a, "<em>cli</em>")
	assert.Equal(t, `<a class="glossary" data-bs-content="Say &#34;hi&#34;"><em>cli</em></a>`, renderNode(a))
}
