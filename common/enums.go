// Enumerations shared by template model, compiler, forms and host session.
// Values are generated with go-enum, see Taskfile.yml.
package common

//go:generate go tool go-enum --names

// Kind of styling rule inside template.
// ENUM(table, rows, cols, cells)
type RuleKind string

// IsPositional reports whether rules of this kind are addressed by index.
func (k RuleKind) IsPositional() bool {
	return k == RuleKindRows || k == RuleKindCols
}

// Style key of the declaration vocabulary. Order of values is the order
// declarations are emitted in.
// ENUM(backgroundColor, color, width, minWidth, maxWidth, border)
type Property string

// Serialization format of template documents.
// ENUM(auto, json, yaml)
type DocumentFormat int

// Host side table operation.
// ENUM(append-row-above, append-row-below, remove-row, append-col-before, append-col-after, remove-col, merge-selection, split-cell, remove-table)
type TableAction string

var cssNames = map[Property]string{
	PropertyBackgroundColor: "background-color",
	PropertyColor:           "color",
	PropertyWidth:           "width",
	PropertyMinWidth:        "min-width",
	PropertyMaxWidth:        "max-width",
	PropertyBorder:          "border",
}

// CSS returns name of css property for vocabulary key.
func (p Property) CSS() string {
	return cssNames[p]
}

// IsSize reports whether property value is a length (edited as rem in forms).
func (p Property) IsSize() bool {
	return p == PropertyWidth || p == PropertyMinWidth || p == PropertyMaxWidth
}

// AllowedFor reports whether property may be used in rules of a given kind.
func (p Property) AllowedFor(kind RuleKind) bool {
	if !p.IsValid() {
		return false
	}
	switch kind {
	case RuleKindTable, RuleKindCols:
		return true
	case RuleKindRows, RuleKindCells:
		return !p.IsSize()
	default:
		return false
	}
}

// PropertiesFor returns vocabulary allowed for rule kind in emission order.
func PropertiesFor(kind RuleKind) []Property {
	var out []Property
	for _, name := range PropertyNames() {
		if p := Property(name); p.AllowedFor(kind) {
			out = append(out, p)
		}
	}
	return out
}
