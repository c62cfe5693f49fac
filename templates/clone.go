package templates

// Deep copy helpers. Store never hands out or keeps references to caller
// owned data, everything crossing its boundary goes through these.

// Clone creates a deep copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	clone := make(Document, len(d))
	for name, t := range d {
		clone[name] = t.Clone()
	}
	return clone
}

// Clone creates a deep copy of the template.
func (t *Template) Clone() *Template {
	if t == nil {
		return nil
	}
	return &Template{
		Name:    t.Name,
		Table:   t.Table.Clone(),
		Rows:    clonePositional(t.Rows),
		Columns: clonePositional(t.Columns),
		Cells:   cloneCells(t.Cells),
	}
}

// Clone creates a copy of declarations.
func (d Declarations) Clone() Declarations {
	if d == nil {
		return nil
	}
	clone := make(Declarations, len(d))
	for k, v := range d {
		clone[k] = v
	}
	return clone
}

func clonePositional(rules []PositionalRule) []PositionalRule {
	if rules == nil {
		return nil
	}
	result := make([]PositionalRule, len(rules))
	for i := range rules {
		result[i] = PositionalRule{
			Index:        rules[i].Index,
			FromEnd:      rules[i].FromEnd,
			Declarations: rules[i].Declarations.Clone(),
		}
	}
	return result
}

func cloneCells(cells []CellRule) []CellRule {
	if cells == nil {
		return nil
	}
	result := make([]CellRule, len(cells))
	for i := range cells {
		result[i] = CellRule{
			X:            cloneIntPtr(cells[i].X),
			Y:            cloneIntPtr(cells[i].Y),
			Declarations: cells[i].Declarations.Clone(),
		}
	}
	return result
}

func cloneIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
