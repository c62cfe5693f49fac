package css_test

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"tabletpl/css"
	"tabletpl/templates"
)

func compile(t *testing.T, doc templates.Document) (string, error) {
	t.Helper()
	return css.NewCompiler(zaptest.NewLogger(t)).Compile(doc)
}

func TestCompileTable(t *testing.T) {
	got, err := compile(t, templates.Document{
		"t1": {Table: templates.Declarations{"border": "1px solid black"}},
	})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	want := "table.t1 {\n    border: 1px solid black;\n}"
	if got != want {
		t.Errorf("Compile() =\n%q\nwant\n%q", got, want)
	}
}

func TestCompileSelectors(t *testing.T) {
	tests := []struct {
		name string
		tpl  *templates.Template
		want string
	}{
		{
			name: "row",
			tpl:  &templates.Template{Rows: []templates.PositionalRule{{Index: "1", Declarations: templates.Declarations{"backgroundColor": "red"}}}},
			want: "table.t1 > tr:nth-of-type(1) > td {\n    background-color: red;\n}",
		},
		{
			name: "row from end",
			tpl:  &templates.Template{Rows: []templates.PositionalRule{{Index: "1", FromEnd: true, Declarations: templates.Declarations{"color": "gray"}}}},
			want: "table.t1 > tr:nth-last-of-type(1) > td {\n    color: gray;\n}",
		},
		{
			name: "column pattern",
			tpl:  &templates.Template{Columns: []templates.PositionalRule{{Index: "2n+1", Declarations: templates.Declarations{"width": "3rem"}}}},
			want: "table.t1 > tr > td:nth-of-type(2n+1) {\n    width: 3rem;\n}",
		},
		{
			name: "cell",
			tpl:  &templates.Template{Cells: []templates.CellRule{{X: templates.Cell(2), Y: templates.Cell(1), Declarations: templates.Declarations{"color": "blue"}}}},
			want: "table.t1 > tr:nth-of-type(2) > td:nth-of-type(3) {\n    color: blue;\n}",
		},
		{
			name: "whole row of cells",
			tpl:  &templates.Template{Cells: []templates.CellRule{{Y: templates.Cell(0), Declarations: templates.Declarations{"color": "blue"}}}},
			want: "table.t1 > tr:nth-of-type(1) > td {\n    color: blue;\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compile(t, templates.Document{"t1": tt.tpl})
			if err != nil {
				t.Fatalf("Compile() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Compile() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestCompileOrder(t *testing.T) {
	doc := templates.Document{
		"t10": {Table: templates.Declarations{"color": "black"}},
		"t2": {
			Cells:   []templates.CellRule{{X: templates.Cell(0), Declarations: templates.Declarations{"color": "blue"}}},
			Rows:    []templates.PositionalRule{{Index: "1", Declarations: templates.Declarations{"color": "red"}}},
			Columns: []templates.PositionalRule{{Index: "1", Declarations: templates.Declarations{"color": "green"}}},
			Table: templates.Declarations{
				"border":          "none",
				"maxWidth":        "10rem",
				"backgroundColor": "white",
			},
		},
	}

	sheet, err := css.NewCompiler(zaptest.NewLogger(t)).Stylesheet(doc)
	if err != nil {
		t.Fatalf("Stylesheet() error: %v", err)
	}
	want := []string{
		"table.t2",
		"table.t2 > tr > td:nth-of-type(1)",
		"table.t2 > tr:nth-of-type(1) > td",
		"table.t2 > tr > td:nth-of-type(1)",
		"table.t10",
	}
	got := sheet.Selectors()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Selectors() =\n%v\nwant\n%v", got, want)
	}

	table := sheet.RulesBySelector("table.t2")[0].Declarations
	var props []string
	for _, d := range table {
		props = append(props, d.Property)
	}
	if strings.Join(props, ",") != "background-color,max-width,border" {
		t.Errorf("declarations out of order: %v", props)
	}
}

func TestCompileDeterministic(t *testing.T) {
	doc := templates.Document{
		"b": {Table: templates.Declarations{"color": "red", "border": "1px solid"}},
		"a": {Rows: []templates.PositionalRule{{Index: "even", Declarations: templates.Declarations{"color": "red"}}}},
		"c": {Cells: []templates.CellRule{{X: templates.Cell(0), Y: templates.Cell(0), Declarations: templates.Declarations{"border": "0"}}}},
	}
	first, err := compile(t, doc)
	if err != nil {
		t.Fatal(err)
	}
	for range 20 {
		if got, _ := compile(t, doc); got != first {
			t.Fatalf("output differs between runs:\n%s\n---\n%s", first, got)
		}
	}
}

func TestCompileBlockSeparation(t *testing.T) {
	got, err := compile(t, templates.Document{
		"t1": {
			Table: templates.Declarations{"color": "black"},
			Rows:  []templates.PositionalRule{{Index: "1", Declarations: templates.Declarations{"color": "red"}}},
		},
	})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	want := "table.t1 {\n    color: black;\n}\n\ntable.t1 > tr:nth-of-type(1) > td {\n    color: red;\n}"
	if got != want {
		t.Errorf("Compile() =\n%q\nwant\n%q", got, want)
	}
}

func TestCompileEmpty(t *testing.T) {
	for _, doc := range []templates.Document{nil, {}, {"t1": {}}, {"t1": nil}, {"t1": {Table: templates.Declarations{}}}} {
		got, err := compile(t, doc)
		if err != nil {
			t.Fatalf("Compile(%v) error: %v", doc, err)
		}
		if got != "" {
			t.Errorf("Compile(%v) = %q, want empty", doc, got)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	decl := templates.Declarations{"color": "red"}
	tests := []struct {
		name string
		doc  templates.Document
		want error
	}{
		{"bad name", templates.Document{"t-1": {Table: decl}}, templates.ErrInvalidTemplateName},
		{"digit first", templates.Document{"1t": {}}, templates.ErrInvalidTemplateName},
		{"unknown cell property", templates.Document{"t1": {Cells: []templates.CellRule{{X: templates.Cell(0), Declarations: templates.Declarations{"fontSize": "12px"}}}}}, templates.ErrInvalidPropertyForRuleKind},
		{"size on row", templates.Document{"t1": {Rows: []templates.PositionalRule{{Index: "1", Declarations: templates.Declarations{"width": "2rem"}}}}}, templates.ErrInvalidPropertyForRuleKind},
		{"css name as key", templates.Document{"t1": {Table: templates.Declarations{"background-color": "red"}}}, templates.ErrInvalidPropertyForRuleKind},
		{"missing declarations", templates.Document{"t1": {Rows: []templates.PositionalRule{{Index: "1"}}}}, templates.ErrMalformedRule},
		{"missing cell declarations", templates.Document{"t1": {Cells: []templates.CellRule{{X: templates.Cell(1)}}}}, templates.ErrMalformedRule},
		{"bad index", templates.Document{"t1": {Columns: []templates.PositionalRule{{Index: "first", Declarations: decl}}}}, templates.ErrMalformedRule},
		{"zero index", templates.Document{"t1": {Columns: []templates.PositionalRule{{Index: "0", Declarations: decl}}}}, templates.ErrMalformedRule},
		{"negative cell", templates.Document{"t1": {Cells: []templates.CellRule{{X: templates.Cell(-1), Declarations: decl}}}}, templates.ErrMalformedRule},
		{"value injection", templates.Document{"t1": {Table: templates.Declarations{"color": "red; } body { display: none"}}}, templates.ErrMalformedRule},
		{"blank value", templates.Document{"t1": {Table: templates.Declarations{"color": " "}}}, templates.ErrMalformedRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compile(t, tt.doc)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Compile() error = %v, want %v", err, tt.want)
			}
			if got != "" {
				t.Errorf("Compile() produced output on failure: %q", got)
			}
		})
	}
}

func TestCompileValidNames(t *testing.T) {
	for _, name := range []string{"a", "Z", "t1", "table2Zebra", "ABCdef123"} {
		if _, err := compile(t, templates.Document{name: {Table: templates.Declarations{"color": "red"}}}); err != nil {
			t.Errorf("Compile(%q) error: %v", name, err)
		}
	}
}

func TestValidateAggregates(t *testing.T) {
	doc := templates.Document{
		"bad name": {},
		"t1": {
			Table: templates.Declarations{"fontSize": "1px"},
			Rows:  []templates.PositionalRule{{Index: "x", Declarations: templates.Declarations{"color": "red"}}},
		},
		"t2": {Table: templates.Declarations{"color": "red"}},
	}
	err := css.Validate(doc)
	for _, want := range []error{templates.ErrInvalidTemplateName, templates.ErrInvalidPropertyForRuleKind, templates.ErrMalformedRule} {
		if !errors.Is(err, want) {
			t.Errorf("Validate() = %v, missing %v", err, want)
		}
	}
	if err := css.Validate(templates.Document{"t2": doc["t2"]}); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}
