package noteops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datamaster/trilium-mcp/internal/classify"
	"github.com/datamaster/trilium-mcp/internal/upstream"
)

func TestCreateNoteHappyPath(t *testing.T) {
	fc := newFakeClient()
	ops := New(fc, nil)

	result, err := ops.CreateNote(context.Background(), CreateParams{
		ParentNoteID: "root",
		Title:        "My Note",
		Type:         classify.KindText,
		Content:      "hello",
	})
	require.NoError(t, err)
	assert.False(t, result.Duplicate)
	assert.Equal(t, "new1", result.NoteID)
}

func TestCreateNoteDetectsDuplicate(t *testing.T) {
	fc := newFakeClient()
	fc.searchHits = []upstream.NoteMeta{
		{NoteID: "existing1", Title: "My Note", Type: "text", ParentNoteIDs: []string{"root"}},
	}
	ops := New(fc, nil)

	result, err := ops.CreateNote(context.Background(), CreateParams{
		ParentNoteID: "root",
		Title:        "My Note",
		Type:         classify.KindText,
		Content:      "hello",
	})
	require.NoError(t, err)
	assert.True(t, result.Duplicate)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "existing1", result.Candidates[0].NoteID)
}

func TestCreateNoteForceCreateBypassesDuplicate(t *testing.T) {
	fc := newFakeClient()
	fc.searchHits = []upstream.NoteMeta{
		{NoteID: "existing1", Title: "My Note", Type: "text", ParentNoteIDs: []string{"root"}},
	}
	ops := New(fc, nil)

	result, err := ops.CreateNote(context.Background(), CreateParams{
		ParentNoteID: "root",
		Title:        "My Note",
		Type:         classify.KindText,
		Content:      "hello",
		ForceCreate:  true,
	})
	require.NoError(t, err)
	assert.False(t, result.Duplicate)
	assert.Equal(t, "new1", result.NoteID)
}

func TestCreateNoteAttachesAttributes(t *testing.T) {
	fc := newFakeClient()
	ops := New(fc, nil)

	_, err := ops.CreateNote(context.Background(), CreateParams{
		ParentNoteID: "root",
		Title:        "Tagged",
		Type:         classify.KindText,
		Content:      "hello",
		Attributes:   []upstream.Attribute{{Type: "label", Name: "book"}},
	})
	require.NoError(t, err)
	require.Len(t, fc.attrs, 1)
	assert.Equal(t, "new1", fc.attrs[0].NoteID)
}

func TestGetNoteWithContent(t *testing.T) {
	fc := newFakeClient()
	fc.notes["n1"] = upstream.NoteMeta{NoteID: "n1", Title: "Hi", BlobID: "b1"}
	fc.content["n1"] = "body"
	ops := New(fc, nil)

	result, err := ops.GetNote(context.Background(), "n1", true)
	require.NoError(t, err)
	assert.Equal(t, "body", result.Content)
	assert.Equal(t, "b1", result.ContentHash)
}

func TestGetNoteWithoutContent(t *testing.T) {
	fc := newFakeClient()
	fc.notes["n1"] = upstream.NoteMeta{NoteID: "n1", Title: "Hi", BlobID: "b1"}
	ops := New(fc, nil)

	result, err := ops.GetNote(context.Background(), "n1", false)
	require.NoError(t, err)
	assert.Empty(t, result.Content)
}

func TestUpdateNoteConflict(t *testing.T) {
	fc := newFakeClient()
	fc.notes["n1"] = upstream.NoteMeta{NoteID: "n1", BlobID: "H2"}
	ops := New(fc, nil)

	_, err := ops.UpdateNote(context.Background(), UpdateParams{
		NoteID:       "n1",
		ExpectedHash: "H1",
		Type:         classify.KindText,
		Content:      "new body",
	})
	require.Error(t, err)
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "H1", ce.ExpectedHash)
	assert.Equal(t, "H2", ce.ActualHash)
}

func TestUpdateNoteSuccessCreatesRevisionByDefault(t *testing.T) {
	fc := newFakeClient()
	fc.notes["n1"] = upstream.NoteMeta{NoteID: "n1", BlobID: "H1"}
	ops := New(fc, nil)

	result, err := ops.UpdateNote(context.Background(), UpdateParams{
		NoteID:       "n1",
		ExpectedHash: "H1",
		Type:         classify.KindText,
		Content:      "new body",
		Revision:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "H1+", result.NewHash)
	assert.Contains(t, fc.revisionLog, "n1")
}

func TestAppendNoteJoinsContent(t *testing.T) {
	fc := newFakeClient()
	fc.notes["n1"] = upstream.NoteMeta{NoteID: "n1", BlobID: "H1"}
	fc.content["n1"] = "<p>first</p>"
	ops := New(fc, nil)

	_, err := ops.AppendNote(context.Background(), UpdateParams{
		NoteID:       "n1",
		ExpectedHash: "H1",
		Type:         classify.KindText,
		Content:      "<p>second</p>",
	})
	require.NoError(t, err)
	assert.Contains(t, fc.content["n1"], "first")
	assert.Contains(t, fc.content["n1"], "second")
}

func TestAppendNoteDefaultNoRevision(t *testing.T) {
	fc := newFakeClient()
	fc.notes["n1"] = upstream.NoteMeta{NoteID: "n1", BlobID: "H1"}
	ops := New(fc, nil)

	_, err := ops.AppendNote(context.Background(), UpdateParams{
		NoteID:       "n1",
		ExpectedHash: "H1",
		Type:         classify.KindText,
		Content:      "more",
		Revision:     false,
	})
	require.NoError(t, err)
	assert.Empty(t, fc.revisionLog)
}

func TestDeleteNote(t *testing.T) {
	fc := newFakeClient()
	fc.notes["n1"] = upstream.NoteMeta{NoteID: "n1"}
	ops := New(fc, nil)

	require.NoError(t, ops.DeleteNote(context.Background(), "n1"))
	_, err := fc.Get(context.Background(), "n1")
	require.Error(t, err)
}

func TestResolveNoteIDRanksExactAndBookFirst(t *testing.T) {
	fc := newFakeClient()
	fc.searchHits = []upstream.NoteMeta{
		{NoteID: "A", Title: "Alpha", Type: "text", DateModified: "2024-01-01"},
		{NoteID: "B", Title: "Alpha", Type: "book", DateModified: "2024-01-02"},
		{NoteID: "C", Title: "Alphanumeric", Type: "text", DateModified: "2024-01-03"},
	}
	ops := New(fc, nil)

	result, err := ops.ResolveNoteID(context.Background(), ResolveParams{
		NoteName:   "Alpha",
		MaxResults: 3,
		AutoSelect: true,
	})
	require.NoError(t, err)
	require.Len(t, result.TopMatches, 3)
	assert.Equal(t, "B", result.TopMatches[0].NoteID)
	assert.Equal(t, "A", result.TopMatches[1].NoteID)
	assert.Equal(t, "C", result.TopMatches[2].NoteID)
}

func TestResolveNoteIDRequiresChoiceWithoutAutoSelect(t *testing.T) {
	fc := newFakeClient()
	fc.searchHits = []upstream.NoteMeta{
		{NoteID: "A", Title: "Alpha", Type: "text"},
		{NoteID: "B", Title: "Alpha", Type: "book"},
	}
	ops := New(fc, nil)

	result, err := ops.ResolveNoteID(context.Background(), ResolveParams{NoteName: "Alpha", MaxResults: 3})
	require.NoError(t, err)
	assert.True(t, result.RequiresUserChoice)
	assert.Empty(t, result.NoteID)
}

func TestResolveNoteIDSingleMatchAutoSelectsRegardless(t *testing.T) {
	fc := newFakeClient()
	fc.searchHits = []upstream.NoteMeta{{NoteID: "A", Title: "Alpha", Type: "text"}}
	ops := New(fc, nil)

	result, err := ops.ResolveNoteID(context.Background(), ResolveParams{NoteName: "Alpha", MaxResults: 3})
	require.NoError(t, err)
	assert.False(t, result.RequiresUserChoice)
	assert.Equal(t, "A", result.NoteID)
}

func TestResolveNoteIDNoMatches(t *testing.T) {
	fc := newFakeClient()
	ops := New(fc, nil)

	result, err := ops.ResolveNoteID(context.Background(), ResolveParams{NoteName: "Nothing", MaxResults: 3})
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.NotEmpty(t, result.Suggestion)
}
