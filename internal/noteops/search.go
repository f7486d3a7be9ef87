package noteops

import (
	"context"

	"github.com/datamaster/trilium-mcp/internal/upstream"
)

// Search runs a compiled DSL query against the upstream and returns the
// matching note metadata (spec.md §4.7: search_notes returns a JSON
// array directly).
func (o *Ops) Search(ctx context.Context, dsl string, fastEligible, includeArchivedNotes bool) ([]upstream.NoteMeta, error) {
	return o.client.Search(ctx, dsl, fastEligible, includeArchivedNotes)
}
