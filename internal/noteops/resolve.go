package noteops

import (
	"context"
	"sort"

	"github.com/datamaster/trilium-mcp/internal/query"
	"github.com/datamaster/trilium-mcp/internal/upstream"
)

// ResolveParams are the already-validated arguments to ResolveNoteID.
type ResolveParams struct {
	NoteName   string
	ExactMatch bool
	MaxResults int
	AutoSelect bool
}

// ResolveNoteID implements spec.md §4.6.6: compile a title search, rank
// the hits by exact-equality, then kind==book, then recency, and decide
// whether the caller must choose among candidates.
func (o *Ops) ResolveNoteID(ctx context.Context, p ResolveParams) (*ResolveResult, error) {
	op := query.OpContains
	if p.ExactMatch {
		op = query.OpEq
	}

	dsl, _, err := query.Compile(query.Request{
		Criteria: []query.Criterion{
			{Property: "title", Type: query.TypeNoteProperty, Op: op, Value: p.NoteName, HasValue: true},
		},
	})
	if err != nil {
		return nil, err
	}

	results, err := o.client.Search(ctx, dsl, false, false)
	if err != nil {
		return nil, err
	}

	if len(results) == 0 {
		return &ResolveResult{
			Found:      false,
			Matches:    0,
			Suggestion: "no note titled like " + p.NoteName + " was found; try the general search_notes tool with a broader query",
		}, nil
	}

	ranked := rankMatches(results, p.NoteName)
	if len(ranked) > p.MaxResults {
		ranked = ranked[:p.MaxResults]
	}

	top := make([]ResolveMatch, len(ranked))
	for i, r := range ranked {
		top[i] = ResolveMatch{NoteID: r.NoteID, Title: r.Title, Type: r.Type, DateModified: r.DateModified}
	}

	result := &ResolveResult{Found: true, Matches: len(ranked), TopMatches: top}

	if !p.AutoSelect && len(ranked) > 1 {
		result.RequiresUserChoice = true
		return result, nil
	}

	result.NoteID = ranked[0].NoteID
	result.Title = ranked[0].Title
	return result, nil
}

type noteResult struct {
	NoteID       string
	Title        string
	Type         string
	DateModified string
}

// rankMatches orders search results by exact title-equality, then
// kind == book (folder-like), then most recently modified. Go's
// sort.SliceStable preserves upstream order among otherwise-equal
// candidates, giving a deterministic tie-break (resolved Open Question,
// see SPEC_FULL.md §4).
func rankMatches(results []upstream.NoteMeta, name string) []noteResult {
	out := make([]noteResult, len(results))
	for i, r := range results {
		out[i] = noteResult{NoteID: r.NoteID, Title: r.Title, Type: r.Type, DateModified: r.DateModified}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ei, ej := out[i].Title == name, out[j].Title == name
		if ei != ej {
			return ei
		}
		bi, bj := out[i].Type == "book", out[j].Type == "book"
		if bi != bj {
			return bi
		}
		return out[i].DateModified > out[j].DateModified
	})
	return out
}
