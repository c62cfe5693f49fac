package forms

import (
	"errors"
	"reflect"
	"testing"

	"tabletpl/common"
	"tabletpl/templates"
)

func sampleTemplate() *templates.Template {
	return &templates.Template{
		Name:  "Striped",
		Table: templates.Declarations{"border": "1px solid black", "width": "20rem"},
		Rows: []templates.PositionalRule{
			{Index: "1", Declarations: templates.Declarations{"backgroundColor": "#333", "color": "white"}},
			{Index: "1", FromEnd: true, Declarations: templates.Declarations{"color": "gray"}},
			{Index: "2n+1", Declarations: templates.Declarations{"backgroundColor": "#eee"}},
			{Index: "3", Declarations: templates.Declarations{"border": "0"}},
		},
		Columns: []templates.PositionalRule{
			{Index: "2", Declarations: templates.Declarations{"width": "4rem"}},
		},
	}
}

func TestFormRead(t *testing.T) {
	f := New()
	if err := f.SetSelectedRow(2, nil); err != nil {
		t.Fatal(err)
	}
	if err := f.SetSelectedColumn(1, nil); err != nil {
		t.Fatal(err)
	}
	f.Read("t1", sampleTemplate())

	tests := []struct {
		part string
		want Values
	}{
		{PartTable, Values{common.PropertyBorder: "1px solid black", common.PropertyWidth: "20rem"}},
		{PartHeader, Values{common.PropertyBackgroundColor: "#333", common.PropertyColor: "white"}},
		{PartFooter, Values{common.PropertyColor: "gray"}},
		{PartOddRows, Values{common.PropertyBackgroundColor: "#eee"}},
		{PartEvenRows, Values{}},
		{PartCurrentRow, Values{common.PropertyBorder: "0"}},
		{PartCurrentCol, Values{common.PropertyWidth: "4rem"}},
	}
	for _, tt := range tests {
		if got := f.Values(tt.part); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Values(%s) = %v, want %v", tt.part, got, tt.want)
		}
	}
	if f.Template() != "t1" || f.Dirty() {
		t.Errorf("Template() = %q, Dirty() = %v", f.Template(), f.Dirty())
	}
}

func TestFormSelection(t *testing.T) {
	f := New()
	tpl := sampleTemplate()
	f.Read("t1", tpl)

	if err := f.SetSelectedRow(-1, tpl); !errors.Is(err, templates.ErrInvalidArgument) {
		t.Errorf("SetSelectedRow(-1) = %v", err)
	}
	if err := f.SetSelectedColumn(-3, tpl); !errors.Is(err, templates.ErrInvalidArgument) {
		t.Errorf("SetSelectedColumn(-3) = %v", err)
	}

	if err := f.SetSelectedRow(2, tpl); err != nil {
		t.Fatal(err)
	}
	if got := f.Value(PartCurrentRow, common.PropertyBorder); got != "0" {
		t.Errorf("current row border = %q", got)
	}

	// unsaved edits survive cursor movement
	if err := f.Set(PartCurrentRow, common.PropertyColor, "red"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetSelectedRow(0, tpl); err != nil {
		t.Fatal(err)
	}
	if got := f.Value(PartCurrentRow, common.PropertyColor); got != "red" {
		t.Errorf("edit lost after cursor movement, color = %q", got)
	}
}

func TestFormSet(t *testing.T) {
	f := New()
	f.Read("t1", nil)

	tests := []struct {
		name  string
		part  string
		prop  common.Property
		value string
		want  string
		err   error
	}{
		{"color", PartHeader, common.PropertyColor, "red", "red", nil},
		{"size number", PartTable, common.PropertyWidth, "12", "12rem", nil},
		{"size rem", PartCurrentCol, common.PropertyMinWidth, " 3rem ", "3rem", nil},
		{"size zero", PartTable, common.PropertyMaxWidth, "0", "", templates.ErrInvalidArgument},
		{"size garbage", PartTable, common.PropertyMaxWidth, "wide", "", templates.ErrInvalidArgument},
		{"size on row", PartOddRows, common.PropertyWidth, "3", "", templates.ErrInvalidPropertyForRuleKind},
		{"unknown part", "sidebar", common.PropertyColor, "red", "", templates.ErrInvalidArgument},
		{"unknown property", PartTable, common.Property("fontSize"), "1px", "", templates.ErrInvalidPropertyForRuleKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.Set(tt.part, tt.prop, tt.value)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Set() = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set() error: %v", err)
			}
			if got := f.Value(tt.part, tt.prop); got != tt.want {
				t.Errorf("Value() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormDisabledCurrentParts(t *testing.T) {
	f := New()
	f.Read("t1", nil)
	f.SetCurrentPartsEnabled(false)

	if err := f.Set(PartCurrentRow, common.PropertyColor, "red"); !errors.Is(err, templates.ErrInvalidArgument) {
		t.Errorf("Set() on disabled part = %v", err)
	}
	if err := f.Set(PartHeader, common.PropertyColor, "red"); err != nil {
		t.Errorf("Set() on header = %v", err)
	}
	f.SetCurrentPartsEnabled(true)
	if err := f.Set(PartCurrentRow, common.PropertyColor, "red"); err != nil {
		t.Errorf("Set() on enabled part = %v", err)
	}
}

func TestFormApply(t *testing.T) {
	f := New()
	tpl := sampleTemplate()
	if err := f.SetSelectedRow(4, tpl); err != nil {
		t.Fatal(err)
	}
	f.Read("t1", tpl)

	// nothing edited, nothing changes
	f.Apply(tpl)
	if !reflect.DeepEqual(tpl, sampleTemplate()) {
		t.Fatalf("Apply() without edits changed template: %+v", tpl)
	}

	edits := []struct {
		part  string
		prop  common.Property
		value string
	}{
		{PartTable, common.PropertyBorder, ""},
		{PartTable, common.PropertyBackgroundColor, "white"},
		{PartHeader, common.PropertyColor, "yellow"},
		{PartEvenRows, common.PropertyBackgroundColor, "#ddd"},
		{PartCurrentRow, common.PropertyColor, "blue"},
		{PartOddRows, common.PropertyBackgroundColor, ""},
	}
	for _, e := range edits {
		if err := f.Set(e.part, e.prop, e.value); err != nil {
			t.Fatalf("Set(%s, %s) error: %v", e.part, e.prop, err)
		}
	}
	if !f.Dirty() {
		t.Fatal("Dirty() = false after edits")
	}
	f.Apply(tpl)

	want := sampleTemplate()
	want.Table = templates.Declarations{"backgroundColor": "white", "width": "20rem"}
	want.Rows[0].Declarations["color"] = "yellow"
	want.Rows[2].Declarations = templates.Declarations{}
	want.Rows = append(want.Rows,
		templates.PositionalRule{Index: "5", Declarations: templates.Declarations{"color": "blue"}},
		templates.PositionalRule{Index: "2n", Declarations: templates.Declarations{"backgroundColor": "#ddd"}},
	)
	if !reflect.DeepEqual(tpl, want) {
		t.Errorf("Apply() =\n%+v\nwant\n%+v", tpl, want)
	}
}

func TestFormRefresh(t *testing.T) {
	f := New()
	tpl := sampleTemplate()
	f.Read("t1", tpl)
	if err := f.Set(PartTable, common.PropertyColor, "red"); err != nil {
		t.Fatal(err)
	}

	tpl.Rows[0].Declarations["color"] = "pink"
	tpl.Table["color"] = "green"
	f.Refresh(tpl)

	if got := f.Value(PartHeader, common.PropertyColor); got != "pink" {
		t.Errorf("header color = %q, want refreshed value", got)
	}
	if got := f.Value(PartTable, common.PropertyColor); got != "red" {
		t.Errorf("table color = %q, unsaved edit lost", got)
	}
}
