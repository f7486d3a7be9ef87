package dispatch

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/datamaster/trilium-mcp/internal/classify"
	"github.com/datamaster/trilium-mcp/internal/noteops"
	"github.com/datamaster/trilium-mcp/internal/query"
	"github.com/datamaster/trilium-mcp/internal/upstream"
	"github.com/datamaster/trilium-mcp/internal/validate"
)

func (d *Dispatcher) handleSearchNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, err := validate.SearchNotes(req.GetArguments())
	if err != nil {
		d.logError("search_notes", err)
		return asMCPError(err)
	}

	criteria := make([]query.Criterion, len(in.SearchCriteria))
	for i, c := range in.SearchCriteria {
		criteria[i] = query.Criterion{
			Property: c.Property,
			Type:     query.CriterionType(c.Type),
			Op:       query.Op(c.Op),
			Value:    c.Value,
			HasValue: c.Value != "",
			Logic:    query.Logic(c.Logic),
		}
	}

	var limit int
	if in.Limit != nil {
		limit = *in.Limit
	}

	dsl, fastEligible, err := query.Compile(query.Request{Text: in.Text, Criteria: criteria, Limit: limit})
	if err != nil {
		d.logError("search_notes", err)
		return asMCPError(err)
	}

	results, err := d.ops.Search(ctx, dsl, fastEligible, in.IncludeArchivedNotes)
	if err != nil {
		d.logError("search_notes", err)
		return asMCPError(err)
	}
	return textResult(results)
}

func (d *Dispatcher) handleResolveNoteID(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, err := validate.ResolveNoteID(req.GetArguments())
	if err != nil {
		d.logError("resolve_note_id", err)
		return asMCPError(err)
	}

	result, err := d.ops.ResolveNoteID(ctx, noteops.ResolveParams{
		NoteName:   in.NoteName,
		ExactMatch: in.ExactMatch,
		MaxResults: in.MaxResults,
		AutoSelect: in.AutoSelect,
	})
	if err != nil {
		d.logError("resolve_note_id", err)
		return asMCPError(err)
	}
	return textResult(result)
}

func (d *Dispatcher) handleGetNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, err := validate.GetNote(req.GetArguments())
	if err != nil {
		d.logError("get_note", err)
		return asMCPError(err)
	}

	result, err := d.ops.GetNote(ctx, in.NoteID, *in.IncludeContent)
	if err != nil {
		d.logError("get_note", err)
		return asMCPError(err)
	}
	return textResult(result)
}

func (d *Dispatcher) handleCreateNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, err := validate.CreateNote(req.GetArguments())
	if err != nil {
		d.logError("create_note", err)
		return asMCPError(err)
	}

	attrs := make([]upstream.Attribute, len(in.Attributes))
	for i, a := range in.Attributes {
		attrs[i] = upstream.Attribute{
			Type:          a.Type,
			Name:          a.Name,
			Value:         a.Value,
			Position:      a.Position,
			IsInheritable: a.IsInheritable,
		}
	}

	result, err := d.ops.CreateNote(ctx, noteops.CreateParams{
		ParentNoteID: in.ParentNoteID,
		Title:        in.Title,
		Type:         classify.Kind(in.Type),
		Content:      in.Content,
		MimeType:     in.MimeType,
		Attributes:   attrs,
		ForceCreate:  in.ForceCreate,
	})
	if err != nil {
		d.logError("create_note", err)
		return asMCPError(err)
	}
	return textResult(result)
}

func (d *Dispatcher) handleUpdateNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, err := validate.UpdateNote(req.GetArguments())
	if err != nil {
		d.logError("update_note", err)
		return asMCPError(err)
	}

	result, err := d.ops.UpdateNote(ctx, noteops.UpdateParams{
		NoteID:       in.NoteID,
		ExpectedHash: in.ExpectedHash,
		Type:         classify.Kind(in.Type),
		Title:        in.Title,
		Content:      in.Content,
		MimeType:     in.MimeType,
		Revision:     *in.Revision,
	})
	if err != nil {
		d.logError("update_note", err)
		return asMCPError(err)
	}
	return textResult(result)
}

func (d *Dispatcher) handleAppendNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, err := validate.AppendNote(req.GetArguments())
	if err != nil {
		d.logError("append_note", err)
		return asMCPError(err)
	}

	result, err := d.ops.AppendNote(ctx, noteops.UpdateParams{
		NoteID:       in.NoteID,
		ExpectedHash: in.ExpectedHash,
		Type:         classify.Kind(in.Type),
		Content:      in.Content,
		Revision:     *in.Revision,
	})
	if err != nil {
		d.logError("append_note", err)
		return asMCPError(err)
	}
	return textResult(result)
}

func (d *Dispatcher) handleDeleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, err := validate.DeleteNote(req.GetArguments())
	if err != nil {
		d.logError("delete_note", err)
		return asMCPError(err)
	}

	if err := d.ops.DeleteNote(ctx, in.NoteID); err != nil {
		d.logError("delete_note", err)
		return asMCPError(err)
	}
	return statusResult("note " + in.NoteID + " deleted")
}
