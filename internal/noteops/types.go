// Package noteops implements the Note Operations (spec.md §4.6, C6):
// the six note-lifecycle procedures, each orchestrating the content
// classifier (C1), query compiler (C2), and upstream client (C5).
package noteops

import "github.com/datamaster/trilium-mcp/internal/upstream"

// DuplicateCandidate is one existing sibling surfaced when create_note
// finds a title collision (spec.md §4.6.1, §8 scenario 7).
type DuplicateCandidate struct {
	NoteID string `json:"noteId"`
	Title  string `json:"title"`
	Type   string `json:"type"`
}

// CreateResult is create_note's response shape.
type CreateResult struct {
	NoteID      string                `json:"noteId,omitempty"`
	Message     string                `json:"message,omitempty"`
	Duplicate   bool                  `json:"duplicate,omitempty"`
	Candidates  []DuplicateCandidate  `json:"candidates,omitempty"`
	NextSteps   string                `json:"nextSteps,omitempty"`
}

// GetResult is get_note's response shape.
type GetResult struct {
	Note        upstream.NoteMeta `json:"note"`
	Content     string            `json:"content,omitempty"`
	ContentHash string            `json:"contentHash,omitempty"`
}

// UpdateResult is update_note/append_note's response shape.
type UpdateResult struct {
	NoteID           string `json:"noteId"`
	NewHash          string `json:"newHash"`
	RevisionCreated  bool   `json:"revisionCreated,omitempty"`
}

// ResolveMatch is one ranked candidate from resolve_note_id.
type ResolveMatch struct {
	NoteID       string `json:"noteId"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	DateModified string `json:"dateModified"`
}

// ResolveResult is resolve_note_id's response shape (spec.md §6).
type ResolveResult struct {
	NoteID            string         `json:"noteId,omitempty"`
	Title             string         `json:"title,omitempty"`
	Found             bool           `json:"found"`
	Matches           int            `json:"matches"`
	TopMatches        []ResolveMatch `json:"topMatches,omitempty"`
	RequiresUserChoice bool          `json:"requiresUserChoice,omitempty"`
	Suggestion        string         `json:"suggestion,omitempty"`
}
