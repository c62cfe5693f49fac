package templates

import (
	"fmt"

	"tabletpl/utils/debug"
)

// String returns a readable tree of the document.
// It exists solely for manual inspection during debugging.
func (d Document) String() string {
	if d == nil {
		return "<nil Document>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Templates: %d", len(d))
	for _, name := range d.Names() {
		t := d[name]
		if t == nil {
			tw.Line(1, "Template[%q] <nil>", name)
			continue
		}
		tw.Line(1, "Template[%q] label[%q]", name, t.Name)
		if len(t.Table) > 0 {
			tw.Line(2, "Table")
			tw.Pairs(3, t.Table)
		}
		for i, r := range t.Columns {
			tw.Line(2, "Column[%d] index[%q] fromEnd[%t]", i, r.Index, r.FromEnd)
			tw.Pairs(3, r.Declarations)
		}
		for i, r := range t.Rows {
			tw.Line(2, "Row[%d] index[%q] fromEnd[%t]", i, r.Index, r.FromEnd)
			tw.Pairs(3, r.Declarations)
		}
		for i, c := range t.Cells {
			tw.Line(2, "Cell[%d] x[%s] y[%s]", i, coord(c.X), coord(c.Y))
			tw.Pairs(3, c.Declarations)
		}
	}
	return tw.String()
}

func coord(v *int) string {
	if v == nil {
		return "*"
	}
	return fmt.Sprint(*v)
}
