package query

import "regexp"

var (
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	isoDateTimePattern = regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`,
	)
	numericLiteralPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// isStrictISODate rejects anything that isn't plain YYYY-MM-DD or a full
// timestamp with timezone. Smart-date expressions like "TODAY-7" are
// deliberately not accepted (spec.md §4.2).
func isStrictISODate(s string) bool {
	return isoDatePattern.MatchString(s) || isoDateTimePattern.MatchString(s)
}

func isNumericLiteral(s string) bool {
	return numericLiteralPattern.MatchString(s)
}

// quoteLabelValue implements the Value quoting rule for label/relation
// criteria: per spec.md §3, a label's value is always string-typed, so it
// is always single-quoted, unescaped (the upstream DSL has no escaping).
func quoteLabelValue(v string) string {
	return "'" + v + "'"
}

// quoteNoteProperty implements the Value quoting rule for type=noteProperty
// criteria, dispatching on the property's recognized kind.
func quoteNoteProperty(kind propertyKind, v string) (string, error) {
	switch kind {
	case kindString, kindContent:
		return "'" + v + "'", nil
	case kindDate:
		if !isStrictISODate(v) {
			return "", &CompileError{Reason: "value \"" + v + "\" is not a strict ISO-8601 date"}
		}
		return "'" + v + "'", nil
	case kindNumeric:
		if !isNumericLiteral(v) {
			return "", &CompileError{Reason: "value \"" + v + "\" is not numeric"}
		}
		return v, nil
	case kindBool:
		if v != "true" && v != "false" {
			return "", &CompileError{Reason: "value \"" + v + "\" is not a boolean literal"}
		}
		return v, nil
	default:
		return "'" + v + "'", nil
	}
}
