// Package validate implements the Parameter Validator (spec.md §4.3, C3):
// per-tool schema constraints (required fields, enums, numeric ranges,
// cross-field refinements) enforced before any handler runs.
package validate

// SearchCriterionInput is the wire shape of one SearchCriterion (spec.md §3).
type SearchCriterionInput struct {
	Property string `json:"property" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=label relation noteProperty fulltext"`
	Op       string `json:"op" validate:"required,oneof=exists not_exists = != >= <= > < contains starts_with ends_with regex"`
	Value    string `json:"value,omitempty"`
	Logic    string `json:"logic,omitempty" validate:"omitempty,oneof=AND OR"`
}

// AttributeInput is the wire shape of one Attribute bundled into
// create_note (spec.md §3, §4.6.1).
type AttributeInput struct {
	Type          string `json:"type" validate:"required,oneof=label relation"`
	Name          string `json:"name" validate:"required"`
	Value         string `json:"value,omitempty"`
	Position      int    `json:"position,omitempty" validate:"omitempty,min=0"`
	IsInheritable bool   `json:"isInheritable,omitempty"`
}

// SearchNotesInput is the search_notes tool's argument schema. Limit is
// a pointer so an explicit 0 can be told apart from an omitted field and
// rejected (spec.md §8: "limit = 0 is rejected at validation").
type SearchNotesInput struct {
	Text                 string                 `json:"text,omitempty"`
	SearchCriteria       []SearchCriterionInput `json:"searchCriteria,omitempty" validate:"omitempty,dive"`
	Limit                *int                   `json:"limit,omitempty"`
	IncludeArchivedNotes bool                   `json:"includeArchivedNotes,omitempty"`
}

// ResolveNoteIDInput is the resolve_note_id tool's argument schema.
// MaxResults has no range validate tag: out-of-range values are clamped
// to 1..10 in ResolveNoteID rather than rejected (spec.md §8).
type ResolveNoteIDInput struct {
	NoteName   string `json:"noteName" validate:"required"`
	ExactMatch bool   `json:"exactMatch,omitempty"`
	MaxResults int    `json:"maxResults,omitempty"`
	AutoSelect bool   `json:"autoSelect,omitempty"`
}

// GetNoteInput is the get_note tool's argument schema. IncludeContent
// defaults to true; a pointer distinguishes "omitted" from "false".
type GetNoteInput struct {
	NoteID         string `json:"noteId" validate:"required"`
	IncludeContent *bool  `json:"includeContent,omitempty"`
}

// CreateNoteInput is the create_note tool's argument schema.
type CreateNoteInput struct {
	ParentNoteID string           `json:"parentNoteId" validate:"required"`
	Title        string           `json:"title" validate:"required"`
	Type         string           `json:"type" validate:"required,oneof=text code render search relationMap book noteMap mermaid webView"`
	Content      string           `json:"content"`
	MimeType     string           `json:"mime,omitempty"`
	Attributes   []AttributeInput `json:"attributes,omitempty" validate:"omitempty,dive"`
	ForceCreate  bool             `json:"forceCreate,omitempty"`
}

// UpdateNoteInput is the update_note (overwrite) tool's argument schema.
// Revision defaults to true for overwrite (spec.md §4.6.3).
type UpdateNoteInput struct {
	NoteID       string `json:"noteId" validate:"required"`
	ExpectedHash string `json:"expectedHash" validate:"required"`
	Type         string `json:"type" validate:"required,oneof=text code render search relationMap book noteMap mermaid webView"`
	Title        string `json:"title,omitempty"`
	Content      string `json:"content,omitempty"`
	MimeType     string `json:"mime,omitempty"`
	Revision     *bool  `json:"revision,omitempty"`
}

// AppendNoteInput is the append_note tool's argument schema. Revision
// defaults to false for append (spec.md §4.6.4, "performance-oriented").
type AppendNoteInput struct {
	NoteID       string `json:"noteId" validate:"required"`
	ExpectedHash string `json:"expectedHash" validate:"required"`
	Type         string `json:"type" validate:"required,oneof=text code render search relationMap book noteMap mermaid webView"`
	Content      string `json:"content" validate:"required"`
	Revision     *bool  `json:"revision,omitempty"`
}

// DeleteNoteInput is the delete_note tool's argument schema.
type DeleteNoteInput struct {
	NoteID string `json:"noteId" validate:"required"`
}
