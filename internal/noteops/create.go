package noteops

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/datamaster/trilium-mcp/internal/classify"
	"github.com/datamaster/trilium-mcp/internal/query"
	"github.com/datamaster/trilium-mcp/internal/upstream"
)

// CreateParams are the already-validated arguments to CreateNote.
type CreateParams struct {
	ParentNoteID string
	Title        string
	Type         classify.Kind
	Content      string
	MimeType     string
	Attributes   []upstream.Attribute
	ForceCreate  bool
}

// Ops bundles the upstream client every note operation depends on.
// A single instance is constructed once at startup and shared across
// calls (spec.md §9, "treat the upstream client as a dependency
// injected once").
type Ops struct {
	client upstream.Client
	logger *zap.Logger
}

// New builds an Ops. A nil logger disables logging.
func New(client upstream.Client, logger *zap.Logger) *Ops {
	return &Ops{client: client, logger: logger}
}

// CreateNote implements spec.md §4.6.1's four-step procedure: duplicate
// probe, content classification, create, then attribute attachment.
func (o *Ops) CreateNote(ctx context.Context, p CreateParams) (*CreateResult, error) {
	dup, err := o.findDuplicate(ctx, p.ParentNoteID, p.Title)
	if err != nil {
		return nil, err
	}
	if dup != nil && !p.ForceCreate {
		return &CreateResult{
			Duplicate:  true,
			Candidates: []DuplicateCandidate{*dup},
			NextSteps:  "a note titled the same already exists under this parent; pass forceCreate=true to create anyway, or reuse the existing noteId",
		}, nil
	}

	normalized, err := classify.Normalize(p.Content, p.Type)
	if err != nil {
		return nil, err
	}

	meta, err := o.client.Create(ctx, upstream.CreateNoteParams{
		ParentNoteID: p.ParentNoteID,
		Title:        p.Title,
		Type:         string(p.Type),
		Content:      normalized,
		MimeType:     p.MimeType,
	})
	if err != nil {
		return nil, err
	}

	for _, attr := range p.Attributes {
		attr.NoteID = meta.NoteID
		if err := o.client.CreateAttribute(ctx, attr); err != nil {
			return nil, fmt.Errorf("note %s created but attribute %q failed: %w", meta.NoteID, attr.Name, err)
		}
	}

	return &CreateResult{NoteID: meta.NoteID, Message: "note created"}, nil
}

// findDuplicate compiles a sibling title search (spec.md §4.6.1 step 1).
func (o *Ops) findDuplicate(ctx context.Context, parentNoteID, title string) (*DuplicateCandidate, error) {
	dsl, _, err := query.Compile(query.Request{
		Criteria: []query.Criterion{
			{Property: "title", Type: query.TypeNoteProperty, Op: query.OpEq, Value: title, HasValue: true},
		},
	})
	if err != nil {
		return nil, err
	}

	results, err := o.client.Search(ctx, dsl, false, false)
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		for _, pid := range r.ParentNoteIDs {
			if pid == parentNoteID {
				return &DuplicateCandidate{NoteID: r.NoteID, Title: r.Title, Type: r.Type}, nil
			}
		}
	}
	return nil, nil
}
