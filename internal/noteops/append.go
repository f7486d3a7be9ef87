package noteops

import (
	"context"

	"github.com/datamaster/trilium-mcp/internal/classify"
)

// AppendNote implements spec.md §4.6.4: the overwrite hash check, but the
// submitted content is joined after the existing body rather than
// replacing it. Default revision flag is false (checked by the caller
// via UpdateParams.Revision).
func (o *Ops) AppendNote(ctx context.Context, p UpdateParams) (*UpdateResult, error) {
	current, err := o.client.GetFresh(ctx, p.NoteID)
	if err != nil {
		return nil, err
	}
	if current.BlobID != p.ExpectedHash {
		return nil, &ConflictError{NoteID: p.NoteID, ExpectedHash: p.ExpectedHash, ActualHash: current.BlobID}
	}

	existing, _, err := o.client.GetContent(ctx, p.NoteID)
	if err != nil {
		return nil, err
	}

	normalized, err := classify.Normalize(p.Content, p.Type)
	if err != nil {
		return nil, err
	}

	combined := joinContent(existing, normalized, p.Type)

	if p.Revision {
		if err := o.client.Revision(ctx, p.NoteID); err != nil {
			return nil, err
		}
	}

	newHash, err := o.client.PutContent(ctx, p.NoteID, combined)
	if err != nil {
		return nil, err
	}

	return &UpdateResult{NoteID: p.NoteID, NewHash: newHash, RevisionCreated: p.Revision}, nil
}

// joinContent normalizes the break between existing and appended bodies
// per kind: an HTML paragraph break for HTML-bearing kinds, a plain
// newline otherwise (spec.md §4.6.4, "normalized join").
func joinContent(existing, addition string, kind classify.Kind) string {
	if existing == "" {
		return addition
	}
	switch kind {
	case classify.KindText, classify.KindRender, classify.KindWebView:
		return existing + "<p></p>" + addition
	default:
		return existing + "\n" + addition
	}
}
