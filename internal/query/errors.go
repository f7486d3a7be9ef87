package query

// CompileError is a synchronous validation error: the request is
// structurally invalid and compilation never reaches the upstream
// (spec.md §4.2, "Failure semantics").
type CompileError struct {
	Reason string
}

func (e *CompileError) Error() string {
	return "query compilation failed: " + e.Reason
}
