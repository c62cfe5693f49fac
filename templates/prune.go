package templates

import "strings"

// Prune removes empty children bottom-up, in place: blank declaration values
// first, then rules left without declarations, then empty rule sets and
// finally templates which carry nothing at all. Pruning is idempotent.
func (d Document) Prune() {
	for name, t := range d {
		t.Prune()
		if t.IsEmpty() {
			delete(d, name)
		}
	}
}

// Pruned returns pruned deep copy of the document.
func (d Document) Pruned() Document {
	clone := d.Clone()
	clone.Prune()
	return clone
}

// Prune removes empty children of the template in place.
func (t *Template) Prune() {
	if t == nil {
		return
	}
	if isBlank(t.Name) {
		t.Name = ""
	}
	t.Table.Prune()
	if len(t.Table) == 0 {
		t.Table = nil
	}
	t.Rows = prunePositional(t.Rows)
	t.Columns = prunePositional(t.Columns)
	t.Cells = pruneCells(t.Cells)
}

// Prune drops blank values.
func (d Declarations) Prune() {
	for k, v := range d {
		if isBlank(v) {
			delete(d, k)
		}
	}
}

func prunePositional(rules []PositionalRule) []PositionalRule {
	result := rules[:0]
	for _, r := range rules {
		r.Declarations.Prune()
		if len(r.Declarations) == 0 {
			continue
		}
		result = append(result, r)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func pruneCells(cells []CellRule) []CellRule {
	result := cells[:0]
	for _, c := range cells {
		c.Declarations.Prune()
		if len(c.Declarations) == 0 {
			continue
		}
		result = append(result, c)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
