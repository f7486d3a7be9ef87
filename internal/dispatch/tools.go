package dispatch

import "github.com/mark3labs/mcp-go/mcp"

func searchNotesTool() mcp.Tool {
	return mcp.NewTool("search_notes",
		mcp.WithDescription("Search notes by free text and/or structured label/relation/property criteria."),
		mcp.WithString("text", mcp.Description("Free-text search term")),
		mcp.WithArray("searchCriteria", mcp.Description("Structured search criteria (property, type, op, value, logic)")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results")),
		mcp.WithBoolean("includeArchivedNotes", mcp.Description("Include archived notes in results")),
	)
}

func resolveNoteIDTool() mcp.Tool {
	return mcp.NewTool("resolve_note_id",
		mcp.WithDescription("Resolve a human-readable note name to its note id, ranking candidates when ambiguous."),
		mcp.WithString("noteName", mcp.Required(), mcp.Description("Note title or fragment to resolve")),
		mcp.WithBoolean("exactMatch", mcp.Description("Require an exact title match instead of substring")),
		mcp.WithNumber("maxResults", mcp.Description("Maximum ranked candidates to return (1-10, default 3)")),
		mcp.WithBoolean("autoSelect", mcp.Description("Automatically pick the top-ranked candidate")),
	)
}

func getNoteTool() mcp.Tool {
	return mcp.NewTool("get_note",
		mcp.WithDescription("Fetch a note's metadata and, by default, its content and content hash."),
		mcp.WithString("noteId", mcp.Required(), mcp.Description("Note identifier")),
		mcp.WithBoolean("includeContent", mcp.Description("Include body and contentHash (default true)")),
	)
}

func createNoteTool() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription("Create a new note under a parent. Detects duplicate titles unless forceCreate is set."),
		mcp.WithString("parentNoteId", mcp.Required(), mcp.Description("Identifier of the parent note")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Title of the new note")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Note kind (text, code, render, search, relationMap, book, noteMap, mermaid, webView)")),
		mcp.WithString("content", mcp.Description("Initial content body")),
		mcp.WithString("mime", mcp.Description("MIME type, required when type is \"code\"")),
		mcp.WithArray("attributes", mcp.Description("Labels/relations to attach at creation time")),
		mcp.WithBoolean("forceCreate", mcp.Description("Create even if a same-titled sibling exists")),
	)
}

func updateNoteTool() mcp.Tool {
	return mcp.NewTool("update_note",
		mcp.WithDescription("Overwrite a note's content (and optionally title/mime), guarded by an expected content hash."),
		mcp.WithString("noteId", mcp.Required(), mcp.Description("Note identifier")),
		mcp.WithString("expectedHash", mcp.Required(), mcp.Description("blobId obtained from a prior get_note call")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Note kind, used to validate the new content")),
		mcp.WithString("title", mcp.Description("New title")),
		mcp.WithString("content", mcp.Description("New body, replacing the old one")),
		mcp.WithString("mime", mcp.Description("New MIME type")),
		mcp.WithBoolean("revision", mcp.Description("Snapshot the prior content before overwriting (default true)")),
	)
}

func appendNoteTool() mcp.Tool {
	return mcp.NewTool("append_note",
		mcp.WithDescription("Append content after a note's existing body, guarded by an expected content hash."),
		mcp.WithString("noteId", mcp.Required(), mcp.Description("Note identifier")),
		mcp.WithString("expectedHash", mcp.Required(), mcp.Description("blobId obtained from a prior get_note call")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Note kind, used to validate the appended content")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Content to append")),
		mcp.WithBoolean("revision", mcp.Description("Snapshot the prior content before appending (default false)")),
	)
}

func deleteNoteTool() mcp.Tool {
	return mcp.NewTool("delete_note",
		mcp.WithDescription("Permanently delete a note. Irreversible."),
		mcp.WithString("noteId", mcp.Required(), mcp.Description("Note identifier")),
	)
}
