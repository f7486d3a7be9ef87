package query

import "strings"

// propertyKind classifies a recognized note-system property for the
// purposes of value quoting (spec.md §4.2, "Value quoting").
type propertyKind int

const (
	kindString propertyKind = iota
	kindContent
	kindDate
	kindNumeric
	kindBool
)

// simpleNoteProperties are the flat (non-navigational) recognized roots
// from spec.md §4.2.
var simpleNoteProperties = map[string]propertyKind{
	"title":           kindString,
	"content":         kindContent,
	"type":            kindString,
	"mime":            kindString,
	"isArchived":      kindBool,
	"isProtected":     kindBool,
	"dateCreated":     kindDate,
	"dateModified":    kindDate,
	"labelCount":      kindNumeric,
	"ownedLabelCount": kindNumeric,
	"attributeCount":  kindNumeric,
	"relationCount":   kindNumeric,
	"parentCount":     kindNumeric,
	"childrenCount":   kindNumeric,
	"contentSize":     kindNumeric,
	"revisionCount":   kindNumeric,
}

var navigationRoots = map[string]bool{
	"parents":   true,
	"children":  true,
	"ancestors": true,
}

// classifyNoteProperty recognizes a note.<path> property and reports its
// value kind. Navigation roots accept sub-paths .title / .noteId, and the
// "parents" root additionally tolerates one further level of "parents."
// repetition (spec.md §4.2: "parents, children, ancestors with permitted
// sub-paths (.title, .noteId, and one further level of parents.
// repetition)").
func classifyNoteProperty(path string) (propertyKind, bool) {
	segments := strings.Split(path, ".")

	if len(segments) == 1 {
		kind, ok := simpleNoteProperties[segments[0]]
		return kind, ok
	}

	root := segments[0]
	if !navigationRoots[root] {
		return 0, false
	}

	rest := segments[1:]
	if root == "parents" && len(rest) > 0 && rest[0] == "parents" {
		rest = rest[1:]
	}

	if len(rest) != 1 {
		return 0, false
	}

	switch rest[0] {
	case "title", "noteId":
		return kindString, true
	default:
		return 0, false
	}
}
