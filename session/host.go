package session

import "tabletpl/common"

// Host is the editor surface session drives. Implementations are expected to
// be cheap and non-blocking, they are called synchronously from session
// methods.
type Host interface {
	// ApplyStylesheet pushes compiled css to the rendering surface.
	ApplyStylesheet(css string)
	// ApplyTemplateName assigns template to a table, empty name clears it.
	ApplyTemplateName(tableID, name string)
	// InsertTable inserts new table at the editing cursor.
	InsertTable(tableID string, rows, cols int)
	// ExecuteAction performs structural table operation at the cursor.
	ExecuteAction(action common.TableAction)
	// Notify shows user visible message.
	Notify(message string)
}

// TableSelected is sent by host when editing cursor enters or leaves a table.
type TableSelected struct {
	Selected bool
	TableID  string
	// CellSelection is set when a range of cells rather than the cursor is
	// selected.
	CellSelection bool
	// Template assigned to the table, empty when there is none.
	Template string
	// Row and Col of the cursor, nil when unknown.
	Row, Col *int
}

// CellChanged is sent by host when cursor moves inside a table.
type CellChanged struct {
	Row, Col       int
	OldRow, OldCol int
}
