package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single "property: value" pair of a rule.
type Declaration struct {
	Property string // css property name (e.g. "background-color")
	Value    string // css value as provided by template
}

// Rule represents a single CSS rule (selector + declarations). Declarations
// are kept in emission order.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Stylesheet is an ordered list of rules. Order is significant: rules with
// equal specificity are resolved by the cascade in source order.
type Stylesheet struct {
	Rules []Rule
}

// Selectors returns selectors of all rules in source order.
func (s *Stylesheet) Selectors() []string {
	out := make([]string, 0, len(s.Rules))
	for _, r := range s.Rules {
		out = append(out, r.Selector)
	}
	return out
}

// RulesBySelector returns all rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, r := range s.Rules {
		if r.Selector == selector {
			matches = append(matches, r)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing
// io.WriterTo. Every rule is followed by an empty line.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := range s.Rules {
		n, err := writeRule(w, &s.Rules[i])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet with trailing whitespace
// removed.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return strings.TrimSpace(sb.String())
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "    %s: %s;\n", d.Property, d.Value)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n\n")
	total += n
	return total, err
}
