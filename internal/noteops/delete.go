package noteops

import "context"

// DeleteNote implements spec.md §4.6.5: permission-gated straight-through
// to the upstream. Irreversible; no soft-delete.
func (o *Ops) DeleteNote(ctx context.Context, noteID string) error {
	return o.client.Delete(ctx, noteID)
}
