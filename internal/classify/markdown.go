package classify

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// md is a package-level goldmark instance; goldmark.Convert is safe for
// concurrent use once configured.
var md = goldmark.New()

// MarkdownToHTML is the pure Markdown→HTML conversion function spec.md
// §4.1 delegates to.
func MarkdownToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
