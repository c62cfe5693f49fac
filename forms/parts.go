// Package forms implements template editing forms as transient views over a
// template snapshot: values are read from a snapshot, edited, and applied
// back to a candidate template on commit. Nothing here aliases store data.
package forms

import (
	"strconv"

	"tabletpl/common"
	"tabletpl/templates"
)

// Values of a form part keyed by property.
type Values map[common.Property]string

// Part is a group of fields editing declarations of a single rule.
type Part interface {
	ID() string
	Title() string
	Kind() common.RuleKind
	Properties() []common.Property
	// Read extracts current values of the part's rule from template.
	Read(t *templates.Template) Values
	// Apply writes values to the part's rule, creating it when necessary.
	// Blank values remove declarations.
	Apply(t *templates.Template, v Values)
}

type tablePart struct{}

func (tablePart) ID() string                    { return PartTable }
func (tablePart) Title() string                 { return "Table" }
func (tablePart) Kind() common.RuleKind         { return common.RuleKindTable }
func (tablePart) Properties() []common.Property { return common.PropertiesFor(common.RuleKindTable) }

func (p tablePart) Read(t *templates.Template) Values {
	if t == nil {
		return Values{}
	}
	return readDeclarations(t.Table, p.Properties())
}

func (p tablePart) Apply(t *templates.Template, v Values) {
	if t.Table == nil {
		t.Table = templates.Declarations{}
	}
	applyDeclarations(t.Table, p.Properties(), v)
}

// indexedPart edits positional rule addressed by index, which is either
// fixed (header, odd rows...) or follows the editing cursor.
type indexedPart struct {
	id      string
	title   string
	kind    common.RuleKind
	index   func() string
	fromEnd bool
}

func (p *indexedPart) ID() string                    { return p.id }
func (p *indexedPart) Title() string                 { return p.title }
func (p *indexedPart) Kind() common.RuleKind         { return p.kind }
func (p *indexedPart) Properties() []common.Property { return common.PropertiesFor(p.kind) }

func (p *indexedPart) Read(t *templates.Template) Values {
	if t == nil {
		return Values{}
	}
	rules := t.Positional(p.kind)
	i := templates.FindPositional(rules, p.index(), p.fromEnd)
	if i < 0 {
		return Values{}
	}
	return readDeclarations(rules[i].Declarations, p.Properties())
}

func (p *indexedPart) Apply(t *templates.Template, v Values) {
	rules := t.Positional(p.kind)
	i := templates.FindPositional(rules, p.index(), p.fromEnd)
	if i < 0 {
		if isEmpty(v) {
			return
		}
		rules = append(rules, templates.PositionalRule{
			Index:        p.index(),
			FromEnd:      p.fromEnd,
			Declarations: templates.Declarations{},
		})
		i = len(rules) - 1
	}
	if rules[i].Declarations == nil {
		rules[i].Declarations = templates.Declarations{}
	}
	applyDeclarations(rules[i].Declarations, p.Properties(), v)
	t.SetPositional(p.kind, rules)
}

func fixedRowPart(id, title, index string, fromEnd bool) *indexedPart {
	return &indexedPart{
		id:      id,
		title:   title,
		kind:    common.RuleKindRows,
		index:   func() string { return index },
		fromEnd: fromEnd,
	}
}

// cursorPart follows 0-based position of the editing cursor.
func cursorPart(id, title string, kind common.RuleKind, pos *int) *indexedPart {
	return &indexedPart{
		id:    id,
		title: title,
		kind:  kind,
		index: func() string { return strconv.Itoa(*pos + 1) },
	}
}

func readDeclarations(decls templates.Declarations, props []common.Property) Values {
	v := Values{}
	for _, p := range props {
		if s, ok := decls[p.String()]; ok {
			v[p] = s
		}
	}
	return v
}

func applyDeclarations(decls templates.Declarations, props []common.Property, v Values) {
	for _, p := range props {
		if s, ok := v[p]; ok && s != "" {
			decls[p.String()] = s
		} else {
			delete(decls, p.String())
		}
	}
}

func isEmpty(v Values) bool {
	for _, s := range v {
		if s != "" {
			return false
		}
	}
	return true
}
