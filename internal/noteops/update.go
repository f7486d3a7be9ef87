package noteops

import (
	"context"

	"github.com/datamaster/trilium-mcp/internal/classify"
)

// UpdateParams are the already-validated arguments shared by overwrite
// and append.
type UpdateParams struct {
	NoteID       string
	ExpectedHash string
	Type         classify.Kind
	Title        string
	Content      string
	MimeType     string
	Revision     bool
}

// UpdateNote implements spec.md §4.6.3's overwrite procedure and state
// machine: fetch, compare hash, classify, patch metadata, snapshot
// (optional), put, report. The snapshot and put run only when content is
// supplied; a title/mime-only update leaves the body and its hash as they
// are.
func (o *Ops) UpdateNote(ctx context.Context, p UpdateParams) (*UpdateResult, error) {
	current, err := o.client.GetFresh(ctx, p.NoteID)
	if err != nil {
		return nil, err
	}
	if current.BlobID != p.ExpectedHash {
		return nil, &ConflictError{NoteID: p.NoteID, ExpectedHash: p.ExpectedHash, ActualHash: current.BlobID}
	}

	normalized, err := classify.Normalize(p.Content, p.Type)
	if err != nil {
		return nil, err
	}

	if p.Title != "" || p.MimeType != "" {
		fields := map[string]any{}
		if p.Title != "" {
			fields["title"] = p.Title
		}
		if p.MimeType != "" {
			fields["mime"] = p.MimeType
		}
		if err := o.client.Patch(ctx, p.NoteID, fields); err != nil {
			return nil, err
		}
	}

	newHash := current.BlobID
	revisionCreated := false
	if p.Content != "" {
		if p.Revision {
			if err := o.client.Revision(ctx, p.NoteID); err != nil {
				return nil, err
			}
			revisionCreated = true
		}

		newHash, err = o.client.PutContent(ctx, p.NoteID, normalized)
		if err != nil {
			return nil, err
		}
	}

	return &UpdateResult{NoteID: p.NoteID, NewHash: newHash, RevisionCreated: revisionCreated}, nil
}
