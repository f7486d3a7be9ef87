// Package upstream implements the Upstream Client (spec.md §4.5, C5): it
// wraps TriliumNext's ETAPI, attaching auth, surfacing typed errors, and
// exposing the blobId content-hash token used for optimistic concurrency.
package upstream

// NoteMeta is the note metadata view ETAPI returns (spec.md §3).
type NoteMeta struct {
	NoteID        string   `json:"noteId"`
	Title         string   `json:"title"`
	Type          string   `json:"type"`
	MimeType      string   `json:"mime,omitempty"`
	DateCreated   string   `json:"dateCreated"`
	DateModified  string   `json:"dateModified"`
	IsArchived    bool     `json:"isArchived"`
	IsProtected   bool     `json:"isProtected"`
	BlobID        string   `json:"blobId"`
	ParentNoteIDs []string `json:"parentNoteIds,omitempty"`
}

// Attribute is a label or relation attached to a note (spec.md §3).
type Attribute struct {
	AttributeID   string `json:"attributeId,omitempty"`
	NoteID        string `json:"noteId,omitempty"`
	Type          string `json:"type"` // "label" or "relation"
	Name          string `json:"name"`
	Value         string `json:"value,omitempty"`
	Position      int    `json:"position,omitempty"`
	IsInheritable bool   `json:"isInheritable,omitempty"`
}

// CreateNoteParams is the request body for POST /create-note.
type CreateNoteParams struct {
	ParentNoteID string `json:"parentNoteId"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Content      string `json:"content"`
	MimeType     string `json:"mime,omitempty"`
}

// createNoteResponse is ETAPI's POST /create-note response shape: the new
// note plus the branch that placed it under its parent.
type createNoteResponse struct {
	Note   NoteMeta `json:"note"`
	Branch struct {
		BranchID string `json:"branchId"`
		NoteID   string `json:"noteId"`
		ParentID string `json:"parentNoteId"`
	} `json:"branch"`
}
