package filter

import (
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/foodidx/bptree"
)

// Rule is a single "<attribute> <comparator> <value>" predicate.
type Rule struct {
	Attribute  string
	Comparator bptree.Comparator
	Value      float64
}

// Parse parses s into a Rule.
func Parse(s string) (Rule, error) {
	tokens := strings.Split(s, " ")
	if len(tokens) != 3 {
		return Rule{}, &ParseError{
			Rule:   s,
			Reason: "expected 3 space separated tokens, got " + strconv.Itoa(len(tokens)),
			cause:  ErrMalformedRule,
		}
	}

	attr := strings.ToLower(tokens[0])
	if attr == "" {
		return Rule{}, &ParseError{Rule: s, Reason: "empty attribute", cause: ErrMalformedRule}
	}

	op, ok := bptree.ParseComparator(tokens[1])
	if !ok {
		return Rule{}, &ParseError{Rule: s, Reason: "unknown comparator " + strconv.Quote(tokens[1]), cause: ErrInvalidComparator}
	}

	v, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return Rule{}, &ParseError{Rule: s, Reason: "value must be a non-negative number", cause: ErrInvalidValue}
	}

	return Rule{Attribute: attr, Comparator: op, Value: v}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// static rule tables.
func MustParse(s string) Rule {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String renders the rule in the form Parse accepts.
func (r Rule) String() string {
	return r.Attribute + " " + string(r.Comparator) + " " + strconv.FormatFloat(r.Value, 'g', -1, 64)
}
