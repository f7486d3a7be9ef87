// Package permission implements the Permission Gate (spec.md §4.4): a
// process-wide, immutable capability set that gates tool dispatch.
package permission

import "strings"

// Capability is a named permission a tool can require.
type Capability string

const (
	Read  Capability = "READ"
	Write Capability = "WRITE"
)

// Tool names, used as map keys by both this package and internal/dispatch.
const (
	ToolSearchNotes   = "search_notes"
	ToolResolveNoteID = "resolve_note_id"
	ToolGetNote       = "get_note"
	ToolCreateNote    = "create_note"
	ToolUpdateNote    = "update_note"
	ToolAppendNote    = "append_note"
	ToolDeleteNote    = "delete_note"
)

// required maps each tool to its required capability, per spec.md §4.4.
var required = map[string]Capability{
	ToolSearchNotes:   Read,
	ToolResolveNoteID: Read,
	ToolGetNote:       Read,
	ToolCreateNote:    Write,
	ToolUpdateNote:    Write,
	ToolAppendNote:    Write,
	ToolDeleteNote:    Write,
}

// Set is the active set of held capabilities, parsed once at startup and
// never mutated afterward.
type Set struct {
	held map[Capability]bool
}

// Parse turns a semicolon-separated capability list (e.g. "READ;WRITE")
// into a Set. Unknown tokens are ignored; an empty or blank input yields a
// Set holding nothing.
func Parse(spec string) Set {
	held := make(map[Capability]bool)
	for _, tok := range strings.Split(spec, ";") {
		tok = strings.ToUpper(strings.TrimSpace(tok))
		switch Capability(tok) {
		case Read:
			held[Read] = true
		case Write:
			held[Write] = true
		}
	}
	return Set{held: held}
}

// Has reports whether the set holds the given capability.
func (s Set) Has(c Capability) bool {
	return s.held[c]
}

// RequiredFor returns the capability a tool needs, and whether the tool is
// recognized at all.
func RequiredFor(tool string) (Capability, bool) {
	c, ok := required[tool]
	return c, ok
}

// Allows reports whether the set's held capabilities permit dispatching
// the named tool. An unrecognized tool is never allowed.
func (s Set) Allows(tool string) bool {
	c, ok := required[tool]
	if !ok {
		return false
	}
	return s.Has(c)
}

// KnownTools returns every tool name this gate recognizes, in the fixed
// order spec.md §6's tool catalog lists them.
func KnownTools() []string {
	return []string{
		ToolSearchNotes,
		ToolResolveNoteID,
		ToolGetNote,
		ToolCreateNote,
		ToolUpdateNote,
		ToolAppendNote,
		ToolDeleteNote,
	}
}
