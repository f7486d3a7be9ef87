// Package dispatch implements the Tool Dispatcher (spec.md §4.7, C7):
// it publishes the MCP tool catalog gated by the active permission set
// and routes each call through validation, permission checks, and the
// note operations layer.
package dispatch

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/datamaster/trilium-mcp/internal/classify"
	"github.com/datamaster/trilium-mcp/internal/noteops"
	"github.com/datamaster/trilium-mcp/internal/permission"
	"github.com/datamaster/trilium-mcp/internal/query"
	"github.com/datamaster/trilium-mcp/internal/upstream"
	"github.com/datamaster/trilium-mcp/internal/validate"
)

// Dispatcher wires the validated, permission-gated tool handlers onto an
// MCP server instance.
type Dispatcher struct {
	ops    *noteops.Ops
	perms  permission.Set
	logger *zap.Logger
}

// New builds a Dispatcher.
func New(ops *noteops.Ops, perms permission.Set, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{ops: ops, perms: perms, logger: logger}
}

// Register publishes every tool whose required capability is present in
// the active permission set (spec.md §4.7, "enumerate and publish").
func (d *Dispatcher) Register(s *server.MCPServer) {
	for _, name := range permission.KnownTools() {
		if !d.perms.Allows(name) {
			continue
		}
		tool, handler := d.build(name)
		s.AddTool(tool, handler)
	}
}

func (d *Dispatcher) build(name string) (mcp.Tool, server.ToolHandlerFunc) {
	switch name {
	case permission.ToolSearchNotes:
		return searchNotesTool(), d.handleSearchNotes
	case permission.ToolResolveNoteID:
		return resolveNoteIDTool(), d.handleResolveNoteID
	case permission.ToolGetNote:
		return getNoteTool(), d.handleGetNote
	case permission.ToolCreateNote:
		return createNoteTool(), d.handleCreateNote
	case permission.ToolUpdateNote:
		return updateNoteTool(), d.handleUpdateNote
	case permission.ToolAppendNote:
		return appendNoteTool(), d.handleAppendNote
	case permission.ToolDeleteNote:
		return deleteNoteTool(), d.handleDeleteNote
	default:
		panic("dispatch: unhandled tool " + name)
	}
}

func (d *Dispatcher) logError(tool string, err error) {
	if d.logger == nil {
		return
	}
	d.logger.Error("tool call failed", zap.String("tool", tool), zap.Error(err))
}

func textResult(payload any) (*mcp.CallToolResult, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError("failed to encode response: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(encoded)), nil
}

func statusResult(message string) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(message), nil
}

// asMCPError surfaces every error kind from spec.md §7 as an MCP error
// result carrying its original message; nothing is retried automatically.
func asMCPError(err error) (*mcp.CallToolResult, error) {
	switch err.(type) {
	case *validate.Error, *query.CompileError, *classify.Error:
		return mcp.NewToolResultError(err.Error()), nil
	case *noteops.ConflictError:
		return mcp.NewToolResultError(err.Error()), nil
	case *upstream.NotFoundError:
		return mcp.NewToolResultError(err.Error()), nil
	default:
		return mcp.NewToolResultError("internal error: " + err.Error()), nil
	}
}
