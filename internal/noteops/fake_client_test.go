package noteops

import (
	"context"

	"github.com/datamaster/trilium-mcp/internal/upstream"
)

// fakeClient is an in-memory stand-in for upstream.Client, grounded on
// the teacher's pattern of hand-written fakes for its HTTPClient
// interface rather than an httptest server at this layer.
type fakeClient struct {
	notes       map[string]upstream.NoteMeta
	content     map[string]string
	attrs       []upstream.Attribute
	searchHits  []upstream.NoteMeta
	revisionLog []string
	createCalls []upstream.CreateNoteParams
	nextNoteID  string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		notes:      map[string]upstream.NoteMeta{},
		content:    map[string]string{},
		nextNoteID: "new1",
	}
}

func (f *fakeClient) Search(ctx context.Context, dsl string, fastSearch, includeArchivedNotes bool) ([]upstream.NoteMeta, error) {
	return f.searchHits, nil
}

func (f *fakeClient) Get(ctx context.Context, noteID string) (upstream.NoteMeta, error) {
	meta, ok := f.notes[noteID]
	if !ok {
		return upstream.NoteMeta{}, &upstream.NotFoundError{NoteID: noteID}
	}
	return meta, nil
}

// GetFresh has nothing to bypass here; this fake holds no cache.
func (f *fakeClient) GetFresh(ctx context.Context, noteID string) (upstream.NoteMeta, error) {
	return f.Get(ctx, noteID)
}

func (f *fakeClient) GetContent(ctx context.Context, noteID string) (string, string, error) {
	meta, ok := f.notes[noteID]
	if !ok {
		return "", "", &upstream.NotFoundError{NoteID: noteID}
	}
	return f.content[noteID], meta.BlobID, nil
}

func (f *fakeClient) Create(ctx context.Context, params upstream.CreateNoteParams) (upstream.NoteMeta, error) {
	f.createCalls = append(f.createCalls, params)
	meta := upstream.NoteMeta{NoteID: f.nextNoteID, Title: params.Title, Type: params.Type, BlobID: "b0"}
	f.notes[meta.NoteID] = meta
	f.content[meta.NoteID] = params.Content
	return meta, nil
}

func (f *fakeClient) CreateAttribute(ctx context.Context, attr upstream.Attribute) error {
	f.attrs = append(f.attrs, attr)
	return nil
}

func (f *fakeClient) PutContent(ctx context.Context, noteID, body string) (string, error) {
	f.content[noteID] = body
	meta := f.notes[noteID]
	meta.BlobID = meta.BlobID + "+"
	f.notes[noteID] = meta
	return meta.BlobID, nil
}

func (f *fakeClient) Patch(ctx context.Context, noteID string, fields map[string]any) error {
	meta := f.notes[noteID]
	if title, ok := fields["title"].(string); ok {
		meta.Title = title
	}
	if mime, ok := fields["mime"].(string); ok {
		meta.MimeType = mime
	}
	f.notes[noteID] = meta
	return nil
}

func (f *fakeClient) Delete(ctx context.Context, noteID string) error {
	delete(f.notes, noteID)
	delete(f.content, noteID)
	return nil
}

func (f *fakeClient) Revision(ctx context.Context, noteID string) error {
	f.revisionLog = append(f.revisionLog, noteID)
	return nil
}
