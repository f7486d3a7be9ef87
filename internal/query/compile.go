package query

import (
	"strconv"
	"strings"
)

// opTokens maps comparison operators to their DSL token (spec.md §4.2,
// "Operator emission"). exists/not_exists are handled as prefixes, not
// listed here.
var opTokens = map[Op]string{
	OpEq:         "=",
	OpNeq:        "!=",
	OpGte:        ">=",
	OpLte:        "<=",
	OpGt:         ">",
	OpLt:         "<",
	OpContains:   "*=*",
	OpStartsWith: "=*",
	OpEndsWith:   "*=",
	OpRegex:      "%=",
}

// Compile translates a Request into the upstream DSL string, and reports
// whether the request is eligible for the fast indexed search path
// (spec.md §4.2).
func Compile(req Request) (string, bool, error) {
	if req.Text == "" && len(req.Criteria) == 0 {
		return "", false, &CompileError{Reason: "empty query"}
	}

	var criteriaExpr string
	if len(req.Criteria) > 0 {
		terms := make([]string, len(req.Criteria))
		logics := make([]Logic, len(req.Criteria))
		for i, c := range req.Criteria {
			term, err := buildTerm(c)
			if err != nil {
				return "", false, err
			}
			terms[i] = term
			logics[i] = c.effectiveLogic()
		}
		criteriaExpr = groupCriteria(terms, logics)
	}

	var parts []string
	if req.Text != "" {
		parts = append(parts, req.Text)
	}
	if criteriaExpr != "" {
		parts = append(parts, criteriaExpr)
	}

	dsl := strings.Join(parts, " ")

	// The upstream parser requires an expression-separator sign before a
	// leading parenthesis (spec.md §4.2, §9). Apply unconditionally.
	if strings.HasPrefix(dsl, "(") {
		dsl = "~" + dsl
	}

	if req.Limit > 0 {
		dsl = dsl + " limit " + strconv.Itoa(req.Limit)
	}

	fastEligible := req.Text != "" && len(req.Criteria) == 0 && req.Limit == 0

	return dsl, fastEligible, nil
}

// buildTerm emits the DSL fragment for a single criterion, independent of
// its position in any boolean grouping.
func buildTerm(c Criterion) (string, error) {
	switch c.Type {
	case TypeFulltext:
		return buildFulltextTerm(c)
	case TypeLabel:
		return buildLabelTerm(c)
	case TypeRelation:
		return buildRelationTerm(c)
	case TypeNoteProperty:
		return buildNotePropertyTerm(c)
	default:
		return "", &CompileError{Reason: "unrecognized criterion type \"" + string(c.Type) + "\""}
	}
}

func buildFulltextTerm(c Criterion) (string, error) {
	if !c.HasValue || c.Value == "" {
		return "", &CompileError{Reason: "fulltext criterion requires a value"}
	}
	return c.Value, nil
}

func buildLabelTerm(c Criterion) (string, error) {
	if c.Property == "" {
		return "", &CompileError{Reason: "label criterion requires a property name"}
	}
	switch c.Op {
	case OpExists:
		return "#" + c.Property, nil
	case OpNotExists:
		return "#!" + c.Property, nil
	default:
		if !c.HasValue {
			return "", &CompileError{Reason: "label criterion \"" + c.Property + "\" requires a value"}
		}
		token, ok := opTokens[c.Op]
		if !ok {
			return "", &CompileError{Reason: "unsupported operator \"" + string(c.Op) + "\" for label criterion"}
		}
		return "#" + c.Property + " " + token + " " + quoteLabelValue(c.Value), nil
	}
}

func buildRelationTerm(c Criterion) (string, error) {
	if c.Property == "" {
		return "", &CompileError{Reason: "relation criterion requires a property name"}
	}
	switch c.Op {
	case OpExists:
		return "~" + c.Property, nil
	case OpNotExists:
		return "~!" + c.Property, nil
	default:
		if !strings.Contains(c.Property, ".") {
			return "", &CompileError{Reason: "relation criterion \"" + c.Property + "\" must be compared via a property access path (e.g. " + c.Property + ".title)"}
		}
		if !c.HasValue {
			return "", &CompileError{Reason: "relation criterion \"" + c.Property + "\" requires a value"}
		}
		token, ok := opTokens[c.Op]
		if !ok {
			return "", &CompileError{Reason: "unsupported operator \"" + string(c.Op) + "\" for relation criterion"}
		}
		return "~" + c.Property + " " + token + " " + quoteLabelValue(c.Value), nil
	}
}

func buildNotePropertyTerm(c Criterion) (string, error) {
	if c.Op == OpExists || c.Op == OpNotExists {
		return "", &CompileError{Reason: "exists/not_exists is not applicable to noteProperty criteria"}
	}
	kind, ok := classifyNoteProperty(c.Property)
	if !ok {
		return "", &CompileError{Reason: "unrecognized note property \"" + c.Property + "\""}
	}
	if !c.HasValue {
		return "", &CompileError{Reason: "noteProperty criterion \"" + c.Property + "\" requires a value"}
	}
	token, ok := opTokens[c.Op]
	if !ok {
		return "", &CompileError{Reason: "unsupported operator \"" + string(c.Op) + "\" for noteProperty criterion"}
	}
	value, err := quoteNoteProperty(kind, c.Value)
	if err != nil {
		return "", err
	}
	return "note." + c.Property + " " + token + " " + value, nil
}

// groupCriteria implements spec.md §4.2's "Boolean composition" algorithm:
// it groups contiguous OR-joined runs into parenthesized subexpressions
// and joins groups by whitespace juxtaposition (AND).
func groupCriteria(terms []string, logics []Logic) string {
	groups := [][]string{{terms[0]}}
	for i := 0; i < len(terms)-1; i++ {
		if logics[i] == LogicOr {
			last := len(groups) - 1
			groups[last] = append(groups[last], terms[i+1])
		} else {
			groups = append(groups, []string{terms[i+1]})
		}
	}

	parts := make([]string, len(groups))
	for i, g := range groups {
		if len(g) > 1 {
			parts[i] = "(" + strings.Join(g, " OR ") + ")"
		} else {
			parts[i] = g[0]
		}
	}
	return strings.Join(parts, " ")
}
