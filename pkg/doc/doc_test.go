package doc_test

import (
	"testing"

	"github.com/arthur-debert/glossary/pkg/doc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	got := doc.Text("command  line\ninterface")
	want := doc.Inlines{
		doc.Str{Text: "command"}, doc.Space{},
		doc.Str{Text: "line"}, doc.SoftBreak{},
		doc.Str{Text: "interface"},
	}
	assert.Equal(t, want, got)
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name    string
		content interface{}
		want    string
	}{
		{
			name:    "plain words",
			content: doc.Text("Command-line interface."),
			want:    "Command-line interface.",
		},
		{
			name: "nested emphasis and link",
			content: doc.Inlines{
				doc.Emph{Content: doc.Text("very")}, doc.Space{},
				doc.Link{Content: doc.Text("useful tool"), URL: "https://example.org"},
			},
			want: "very useful tool",
		},
		{
			name: "notes and raw markup are dropped",
			content: doc.Inlines{
				doc.Str{Text: "api"},
				doc.Note{Content: doc.Blocks{doc.Para{Content: doc.Text("hidden")}}},
				doc.RawInline{Format: "html", Text: "<b>x</b>"},
			},
			want: "api",
		},
		{
			name: "blocks separated by blank line",
			content: doc.Blocks{
				doc.Para{Content: doc.Text("one")},
				doc.Para{Content: doc.Text("two")},
			},
			want: "one\n\ntwo",
		},
		{
			name:    "string passes through",
			content: "as is",
			want:    "as is",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, doc.Stringify(tt.content))
		})
	}
}

func TestInlinesCloneDoesNotShareBacking(t *testing.T) {
	original := make(doc.Inlines, 1, 4)
	original[0] = doc.Span{Content: doc.Text("cli")}

	copied := original.Clone()
	copied = append(copied, doc.Note{Content: doc.Blocks{doc.Para{Content: doc.Text("def")}}})

	extended := append(original, doc.Str{Text: "x"})
	require.Len(t, copied, 2)
	assert.IsType(t, doc.Note{}, copied[1], "append to the original must not overwrite the clone")
	assert.IsType(t, doc.Str{}, extended[1])

	span := copied[0].(doc.Span)
	span.Content[0] = doc.Str{Text: "changed"}
	assert.Equal(t, "cli", doc.Stringify(original))
}

func TestBlocksClone(t *testing.T) {
	list := doc.Blocks{doc.DefinitionList{Items: []doc.DefinitionItem{{
		Term:        doc.Text("api"),
		Definitions: []doc.Blocks{{doc.Para{Content: doc.Text("Application Programming Interface.")}}},
	}}}}

	copied := list.Clone()
	dl := copied[0].(doc.DefinitionList)
	dl.Items[0].Term[0] = doc.Str{Text: "API"}

	assert.Equal(t, "api: Application Programming Interface.", doc.Stringify(list))
}

func TestAttrHasClass(t *testing.T) {
	a := doc.Attr{Classes: []string{"glossary", "term"}}
	assert.True(t, a.HasClass("glossary"))
	assert.False(t, a.HasClass("note"))
}
