package templates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// anPlusB matches css An+B microsyntax accepted by :nth-of-type().
var anPlusB = regexp.MustCompile(`(?i)^\s*(?:odd|even|[+-]?\d*n(?:\s*[+-]\s*\d+)?|[+-]?\d+)\s*$`)

// PlainIndex returns absolute position if index is a plain integer,
// surrounding whitespace is ignored. An+B patterns are not positions and
// report false.
func PlainIndex(index string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(index))
	if err != nil {
		return 0, false
	}
	return n, true
}

// CheckIndex verifies positional rule index: either positive integer or An+B.
func CheckIndex(index string) error {
	if n, ok := PlainIndex(index); ok {
		if n < 1 {
			return fmt.Errorf("index %d is not positive: %w", n, ErrMalformedRule)
		}
		return nil
	}
	if !anPlusB.MatchString(index) {
		return fmt.Errorf("index %q is neither position nor An+B expression: %w", index, ErrMalformedRule)
	}
	return nil
}

// FindPositional returns position in rules of the first rule addressing index
// from the requested end, -1 if there is none.
func FindPositional(rules []PositionalRule, index string, fromEnd bool) int {
	for i := range rules {
		if rules[i].FromEnd == fromEnd && rules[i].Index == index {
			return i
		}
	}
	return -1
}
