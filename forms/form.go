package forms

import (
	"fmt"
	"strconv"
	"strings"

	"tabletpl/common"
	"tabletpl/templates"
)

// Part identifiers.
const (
	PartTable      = "table"
	PartCurrentRow = "current-row"
	PartCurrentCol = "current-col"
	PartHeader     = "header"
	PartFooter     = "footer"
	PartEvenRows   = "even-rows"
	PartOddRows    = "odd-rows"
)

// Form holds edited values for a single template. It is never bound to
// store data directly: Read takes a snapshot and Apply writes to a candidate.
type Form struct {
	parts []Part
	index map[string]Part

	template string
	values   map[string]Values
	dirty    map[string]bool

	row, col       int
	currentEnabled bool
}

// New creates form with all standard parts.
func New() *Form {
	f := &Form{
		index:          make(map[string]Part),
		values:         make(map[string]Values),
		dirty:          make(map[string]bool),
		currentEnabled: true,
	}
	f.parts = []Part{
		tablePart{},
		cursorPart(PartCurrentRow, "Current row", common.RuleKindRows, &f.row),
		cursorPart(PartCurrentCol, "Current column", common.RuleKindCols, &f.col),
		fixedRowPart(PartHeader, "Header", "1", false),
		fixedRowPart(PartFooter, "Footer", "1", true),
		fixedRowPart(PartEvenRows, "Even rows", "2n", false),
		fixedRowPart(PartOddRows, "Odd rows", "2n+1", false),
	}
	for _, p := range f.parts {
		f.index[p.ID()] = p
	}
	return f
}

// Parts returns form parts in display order.
func (f *Form) Parts() []Part {
	return f.parts
}

// Template returns name of the template form was last read from.
func (f *Form) Template() string {
	return f.template
}

// Read loads all parts from template snapshot, discarding unsaved edits.
func (f *Form) Read(name string, t *templates.Template) {
	f.template = name
	clear(f.dirty)
	for _, p := range f.parts {
		f.values[p.ID()] = p.Read(t)
	}
}

// SelectedRow returns 0-based row the current-row part follows.
func (f *Form) SelectedRow() int { return f.row }

// SelectedColumn returns 0-based column the current-col part follows.
func (f *Form) SelectedColumn() int { return f.col }

// SetSelectedRow moves row cursor and re-reads current-row part from t
// (when not nil) unless it has unsaved edits.
func (f *Form) SetSelectedRow(row int, t *templates.Template) error {
	if row < 0 {
		return fmt.Errorf("selected row %d: %w", row, templates.ErrInvalidArgument)
	}
	f.row = row
	f.reread(PartCurrentRow, t)
	return nil
}

// SetSelectedColumn moves column cursor and re-reads current-col part from
// t (when not nil) unless it has unsaved edits.
func (f *Form) SetSelectedColumn(col int, t *templates.Template) error {
	if col < 0 {
		return fmt.Errorf("selected column %d: %w", col, templates.ErrInvalidArgument)
	}
	f.col = col
	f.reread(PartCurrentCol, t)
	return nil
}

func (f *Form) reread(id string, t *templates.Template) {
	if t == nil || f.dirty[id] {
		return
	}
	f.values[id] = f.index[id].Read(t)
}

// SetCurrentPartsEnabled toggles editing of parts following the cursor.
// Host disables them when no table cell is selected.
func (f *Form) SetCurrentPartsEnabled(enabled bool) {
	f.currentEnabled = enabled
}

// CurrentPartsEnabled reports whether cursor parts could be edited.
func (f *Form) CurrentPartsEnabled() bool {
	return f.currentEnabled
}

// Value returns current value of part field.
func (f *Form) Value(part string, prop common.Property) string {
	return f.values[part][prop]
}

// Values returns copy of part values.
func (f *Form) Values(part string) Values {
	v := make(Values, len(f.values[part]))
	for k, s := range f.values[part] {
		v[k] = s
	}
	return v
}

// Set edits single field. Size properties accept a positive integer
// (stored in rem units) or a value already carrying rem suffix. Blank
// value clears the field.
func (f *Form) Set(part string, prop common.Property, value string) error {
	p, ok := f.index[part]
	if !ok {
		return fmt.Errorf("unknown form part %q: %w", part, templates.ErrInvalidArgument)
	}
	if !f.currentEnabled && (part == PartCurrentRow || part == PartCurrentCol) {
		return fmt.Errorf("form part %q is disabled: %w", part, templates.ErrInvalidArgument)
	}
	if !prop.AllowedFor(p.Kind()) {
		return fmt.Errorf("property %q in form part %q: %w", prop, part, templates.ErrInvalidPropertyForRuleKind)
	}

	value = strings.TrimSpace(value)
	if value != "" && prop.IsSize() {
		v, err := normalizeSize(value)
		if err != nil {
			return fmt.Errorf("property %q in form part %q: %w", prop, part, err)
		}
		value = v
	}

	if f.values[part] == nil {
		f.values[part] = Values{}
	}
	if f.values[part][prop] == value {
		return nil
	}
	if value == "" {
		delete(f.values[part], prop)
	} else {
		f.values[part][prop] = value
	}
	f.dirty[part] = true
	return nil
}

// Dirty reports whether form has unsaved edits.
func (f *Form) Dirty() bool {
	for _, d := range f.dirty {
		if d {
			return true
		}
	}
	return false
}

// Apply writes edited parts to t. Parts without edits are left alone so
// concurrent index maintenance is not overwritten by stale values.
func (f *Form) Apply(t *templates.Template) {
	for _, p := range f.parts {
		if f.dirty[p.ID()] {
			p.Apply(t, f.values[p.ID()])
		}
	}
}

func normalizeSize(value string) (string, error) {
	num := strings.TrimSpace(strings.TrimSuffix(value, "rem"))
	n, err := strconv.Atoi(num)
	if err != nil || n < 1 {
		return "", fmt.Errorf("size %q must be a positive number of rem: %w", value, templates.ErrInvalidArgument)
	}
	return strconv.Itoa(n) + "rem", nil
}

// Refresh re-reads parts without unsaved edits from t. It is used when the
// template changes underneath the form (index maintenance for example).
func (f *Form) Refresh(t *templates.Template) {
	for _, p := range f.parts {
		if !f.dirty[p.ID()] {
			f.values[p.ID()] = p.Read(t)
		}
	}
}
