package noteops

import "context"

// GetNote implements spec.md §4.6.2: fetch metadata and, unless the
// caller opted out, the body and its blobId. The metadata fetch always
// bypasses the cache since the returned note embeds its own blobId,
// which must match whatever contentHash this call reports.
func (o *Ops) GetNote(ctx context.Context, noteID string, includeContent bool) (*GetResult, error) {
	meta, err := o.client.GetFresh(ctx, noteID)
	if err != nil {
		return nil, err
	}

	result := &GetResult{Note: meta}
	if !includeContent {
		return result, nil
	}

	content, blobID, err := o.client.GetContent(ctx, noteID)
	if err != nil {
		return nil, err
	}
	result.Content = content
	result.ContentHash = blobID
	return result, nil
}
