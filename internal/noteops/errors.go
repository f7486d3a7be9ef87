package noteops

import "fmt"

// ConflictError reports an expectedHash mismatch on update/append
// (spec.md §4.6.3, §8 scenario 6).
type ConflictError struct {
	NoteID       string
	ExpectedHash string
	ActualHash   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on note %q: expected hash %q, upstream reports %q; re-fetch and retry",
		e.NoteID, e.ExpectedHash, e.ActualHash)
}
