package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	t.Run("markdown converted to html", func(t *testing.T) {
		out, err := Normalize("# Title\n\nSome **bold** text", KindText)
		require.NoError(t, err)
		assert.Contains(t, out, "<h1")
	})

	t.Run("plain text wrapped in paragraph", func(t *testing.T) {
		out, err := Normalize("just plain text", KindText)
		require.NoError(t, err)
		assert.Equal(t, "<p>just plain text</p>", out)
	})

	t.Run("html passed through", func(t *testing.T) {
		out, err := Normalize("<div><span>hi</span></div>", KindText)
		require.NoError(t, err)
		assert.Equal(t, "<div><span>hi</span></div>", out)
	})
}

func TestNormalizeCodeAndMermaid(t *testing.T) {
	for _, kind := range []Kind{KindCode, KindMermaid} {
		out, err := Normalize("graph TD;\nA-->B;", kind)
		require.NoError(t, err)
		assert.Equal(t, "graph TD;\nA-->B;", out)

		_, err = Normalize("<div>not allowed</div>", kind)
		require.Error(t, err)
		var shapeErr *Error
		require.ErrorAs(t, err, &shapeErr)
		assert.Equal(t, kind, shapeErr.Kind)
	}
}

func TestNormalizeRenderAndWebView(t *testing.T) {
	for _, kind := range []Kind{KindRender, KindWebView} {
		out, err := Normalize("", kind)
		require.NoError(t, err)
		assert.Equal(t, "", out)

		out, err = Normalize("<p>ok</p>", kind)
		require.NoError(t, err)
		assert.Equal(t, "<p>ok</p>", out)

		_, err = Normalize("no html here", kind)
		require.Error(t, err)
	}
}

func TestNormalizeEmptyShapeKinds(t *testing.T) {
	for _, kind := range []Kind{KindBook, KindSearch, KindRelationMap, KindNoteMap} {
		out, err := Normalize("", kind)
		require.NoError(t, err)
		assert.Equal(t, "", out)

		out, err = Normalize("anything at all", kind)
		require.NoError(t, err)
		assert.Equal(t, "anything at all", out)
	}
}

func TestMarkdownHeuristics(t *testing.T) {
	markdownSamples := []string{
		"# Header",
		"```\ncode\n```",
		"some `inline code` here",
		"this is *emphasis* text",
		"this is _emphasis_ text",
		"[a link](http://example.com)",
		"- bullet one",
		"> a quote",
		"---",
	}
	for _, s := range markdownSamples {
		assert.True(t, looksLikeMarkdown(s), "expected markdown heuristic to match %q", s)
	}
}

func TestHTMLHeuristic(t *testing.T) {
	assert.True(t, hasHTML("<p>hello</p>"))
	assert.True(t, hasHTML("line<br/>break"))
	assert.True(t, hasHTML("a &amp; b"))
	assert.False(t, hasHTML("no markup here"))
}

func TestMarkdownToHTML(t *testing.T) {
	out, err := MarkdownToHTML("# Hi\n\nworld")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "<h1"))
}
