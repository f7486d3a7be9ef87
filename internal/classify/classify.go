// Package classify implements the Content Classifier (spec.md §4.1, C1):
// it decides whether a content blob is admissible for a note kind, and
// converts Markdown to HTML where the kind requires HTML.
package classify

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind enumerates the note kinds spec.md §3 defines.
type Kind string

const (
	KindText        Kind = "text"
	KindCode        Kind = "code"
	KindRender      Kind = "render"
	KindSearch      Kind = "search"
	KindRelationMap Kind = "relationMap"
	KindBook        Kind = "book"
	KindNoteMap     Kind = "noteMap"
	KindMermaid     Kind = "mermaid"
	KindWebView     Kind = "webView"
	KindFile        Kind = "file"
	KindImage       Kind = "image"
	KindCanvas      Kind = "canvas"
)

// CreatableKinds are the kinds create_note may target; file/image/canvas
// are returnable from search but not creatable (spec.md §3).
var CreatableKinds = map[Kind]bool{
	KindText:        true,
	KindCode:        true,
	KindRender:      true,
	KindSearch:      true,
	KindRelationMap: true,
	KindBook:        true,
	KindNoteMap:     true,
	KindMermaid:     true,
	KindWebView:     true,
}

// Error is a content-shape error: the input is inadmissible for the kind.
type Error struct {
	Kind     Kind
	Expected string
}

func (e *Error) Error() string {
	return fmt.Sprintf("content-shape: kind %q expects %s", e.Kind, e.Expected)
}

var (
	// htmlTagPattern matches a balanced opening/closing tag pair;
	// selfClosingTagPattern matches a self-closing tag. Approximate by
	// design (spec.md §4.1 heuristic).
	htmlTagPattern       = regexp.MustCompile(`(?is)<([a-z][a-z0-9]*)\b[^>]*>.*?</\s*\1\s*>`)
	selfClosingTagPattern = regexp.MustCompile(`(?i)<[a-z][a-z0-9]*\b[^>]*/>`)
	htmlEntityPattern     = regexp.MustCompile(`&(amp|lt|gt|quot|apos|nbsp|#[0-9]+|#x[0-9a-fA-F]+);`)

	atxHeaderPattern    = regexp.MustCompile(`(?m)^#{1,6}\s+\S`)
	fencedCodePattern   = regexp.MustCompile("(?m)^```")
	inlineCodePattern   = regexp.MustCompile("`[^`\n]+`")
	emphasisPattern     = regexp.MustCompile(`(\*\S.*?\S\*|\*\S\*|_\S.*?\S_|_\S_)`)
	bracketedLinkPattern = regexp.MustCompile(`\[[^\]]+\]\([^)]+\)`)
	listBulletPattern   = regexp.MustCompile(`(?m)^\s*[-*+]\s+\S`)
	blockquotePattern   = regexp.MustCompile(`(?m)^\s*>\s?\S`)
	horizontalRulePattern = regexp.MustCompile(`(?m)^\s*(-{3,}|\*{3,}|_{3,})\s*$`)
)

// hasHTML reports the HTML heuristic from spec.md §4.1.
func hasHTML(s string) bool {
	return htmlTagPattern.MatchString(s) || selfClosingTagPattern.MatchString(s) || htmlEntityPattern.MatchString(s)
}

// looksLikeMarkdown reports the Markdown heuristic from spec.md §4.1.
func looksLikeMarkdown(s string) bool {
	return atxHeaderPattern.MatchString(s) ||
		fencedCodePattern.MatchString(s) ||
		inlineCodePattern.MatchString(s) ||
		emphasisPattern.MatchString(s) ||
		bracketedLinkPattern.MatchString(s) ||
		listBulletPattern.MatchString(s) ||
		blockquotePattern.MatchString(s) ||
		horizontalRulePattern.MatchString(s)
}

// Normalize applies the per-kind rules of spec.md §4.1 and returns content
// ready for the upstream, or a content-shape *Error.
func Normalize(content string, kind Kind) (string, error) {
	switch kind {
	case KindText:
		return normalizeHTMLRequired(content, kind, true)
	case KindCode, KindMermaid:
		if hasHTML(content) {
			return "", &Error{Kind: kind, Expected: "plain text (no HTML tags)"}
		}
		return content, nil
	case KindRender, KindWebView:
		return normalizeHTMLRequired(content, kind, false)
	case KindBook, KindSearch, KindRelationMap, KindNoteMap:
		return content, nil
	default:
		return content, nil
	}
}

// normalizeHTMLRequired handles the "text" kind (always HTML, converting
// Markdown when detected) and the "render"/"webView" kinds (HTML only
// enforced when content is non-empty).
func normalizeHTMLRequired(content string, kind Kind, alwaysRequired bool) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		if alwaysRequired {
			return "", nil
		}
		return "", nil
	}

	if looksLikeMarkdown(content) {
		html, err := MarkdownToHTML(content)
		if err != nil {
			return wrapParagraph(trimmed), nil
		}
		return html, nil
	}

	if !hasHTML(content) {
		if alwaysRequired {
			return wrapParagraph(content), nil
		}
		return "", &Error{Kind: kind, Expected: "HTML content"}
	}

	return content, nil
}

func wrapParagraph(s string) string {
	return "<p>" + s + "</p>"
}
