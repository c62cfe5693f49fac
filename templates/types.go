// Package templates holds the table template document model, its validation,
// pruning and the store owning the canonical document of an editor session.
package templates

import (
	"tabletpl/common"
)

type (
	// Declarations is flat property -> css value payload of a rule. Keys are
	// kept as strings so unknown properties survive decoding and can be
	// reported.
	Declarations map[string]string

	// PositionalRule addresses rows or columns either by 1-based index or by
	// An+B expression.
	PositionalRule struct {
		Index        string       `json:"index" yaml:"index"`
		FromEnd      bool         `json:"fromEnd,omitempty" yaml:"fromEnd,omitempty"`
		Declarations Declarations `json:"declarations,omitempty" yaml:"declarations,omitempty"`
	}

	// CellRule addresses a single cell by 0-based coordinates. Absent
	// coordinate matches every column (x) or row (y).
	CellRule struct {
		X            *int         `json:"x,omitempty" yaml:"x,omitempty"`
		Y            *int         `json:"y,omitempty" yaml:"y,omitempty"`
		Declarations Declarations `json:"declarations,omitempty" yaml:"declarations,omitempty"`
	}

	// Template is a named set of styling rules. Its key in Document is used as
	// css class of the table, Name is a human readable label only.
	Template struct {
		Name    string           `json:"name,omitempty" yaml:"name,omitempty"`
		Table   Declarations     `json:"table,omitempty" yaml:"table,omitempty"`
		Rows    []PositionalRule `json:"rows,omitempty" yaml:"rows,omitempty"`
		Columns []PositionalRule `json:"cols,omitempty" yaml:"cols,omitempty"`
		Cells   []CellRule       `json:"cells,omitempty" yaml:"cells,omitempty"`
	}

	// Document maps template names to templates.
	Document map[string]*Template
)

// Positional returns rules of positional kind (rows or cols).
func (t *Template) Positional(kind common.RuleKind) []PositionalRule {
	switch kind {
	case common.RuleKindRows:
		return t.Rows
	case common.RuleKindCols:
		return t.Columns
	default:
		return nil
	}
}

// SetPositional replaces rules of positional kind.
func (t *Template) SetPositional(kind common.RuleKind, rules []PositionalRule) {
	switch kind {
	case common.RuleKindRows:
		t.Rows = rules
	case common.RuleKindCols:
		t.Columns = rules
	}
}

// IsEmpty reports whether template carries neither label nor rules.
func (t *Template) IsEmpty() bool {
	return t == nil || (t.Name == "" && len(t.Table) == 0 && len(t.Rows) == 0 && len(t.Columns) == 0 && len(t.Cells) == 0)
}

// Cell returns pointer to integer coordinate, convenience for literals.
func Cell(v int) *int {
	return &v
}
