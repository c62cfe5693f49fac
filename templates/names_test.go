package templates

import (
	"errors"
	"testing"
)

func TestCheckName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"t1", true},
		{"striped", true},
		{"Zebra2Rows", true},
		{"", false},
		{"1t", false},
		{"bad name", false},
		{"bad-name", false},
		{"bad.name", false},
		{"über", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckName(tt.name)
			if tt.valid && err != nil {
				t.Errorf("CheckName(%q) unexpected error: %v", tt.name, err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidTemplateName) {
				t.Errorf("CheckName(%q) = %v, want ErrInvalidTemplateName", tt.name, err)
			}
		})
	}
}

func TestDocumentNames(t *testing.T) {
	doc := Document{"t10": {}, "t2": {}, "a": {}, "t1": {}}
	got := doc.Names()
	want := []string{"a", "t1", "t2", "t10"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestKeyFromLabel(t *testing.T) {
	taken := map[string]bool{"template1": true, "striped": true, "striped2": true}
	isTaken := func(s string) bool { return taken[s] }

	tests := []struct {
		label string
		want  string
	}{
		{"", "template2"},
		{"   ", "template2"},
		{"Striped rows", "stripedRows"},
		{"striped", "striped3"},
		{"2 columns", "columns"},
		{"!!!", "template2"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := KeyFromLabel(tt.label, isTaken)
			if got != tt.want {
				t.Errorf("KeyFromLabel(%q) = %q, want %q", tt.label, got, tt.want)
			}
			if !IsValidName(got) {
				t.Errorf("KeyFromLabel(%q) = %q is not a legal name", tt.label, got)
			}
		})
	}
}

func TestCopyLabel(t *testing.T) {
	taken := map[string]bool{
		"Plain - Copy":     true,
		"Busy - Copy":      true,
		"Busy - Copy (1)":  true,
		"Other - Copy (3)": true,
	}
	isTaken := func(s string) bool { return taken[s] }

	tests := []struct {
		label string
		want  string
	}{
		{"Fresh", "Fresh - Copy"},
		{"Plain", "Plain - Copy (1)"},
		{"Busy", "Busy - Copy (2)"},
		{"Busy - Copy", "Busy - Copy (2)"},
		{"Other - Copy (3)", "Other - Copy (4)"},
		{"Odd - Copy (x)", "Odd - Copy (1)"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := CopyLabel(tt.label, isTaken); got != tt.want {
				t.Errorf("CopyLabel(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestCheckIndex(t *testing.T) {
	good := []string{"1", "12", "2n", "2n+1", "-n+3", "n", "odd", "EVEN", " 3n - 2 "}
	for _, idx := range good {
		if err := CheckIndex(idx); err != nil {
			t.Errorf("CheckIndex(%q) unexpected error: %v", idx, err)
		}
	}
	bad := []string{"", "0", "-1", "abc", "2n+", "1;", "n)"}
	for _, idx := range bad {
		if err := CheckIndex(idx); !errors.Is(err, ErrMalformedRule) {
			t.Errorf("CheckIndex(%q) = %v, want ErrMalformedRule", idx, err)
		}
	}
}

func TestFindPositional(t *testing.T) {
	rules := []PositionalRule{
		{Index: "1"},
		{Index: "1", FromEnd: true},
		{Index: "2n"},
		{Index: "1"},
	}
	if got := FindPositional(rules, "1", false); got != 0 {
		t.Errorf("FindPositional(1) = %d, want 0", got)
	}
	if got := FindPositional(rules, "1", true); got != 1 {
		t.Errorf("FindPositional(1, fromEnd) = %d, want 1", got)
	}
	if got := FindPositional(rules, "2n+1", false); got != -1 {
		t.Errorf("FindPositional(2n+1) = %d, want -1", got)
	}
}

func TestPlainIndex(t *testing.T) {
	tests := []struct {
		index string
		want  int
		ok    bool
	}{
		{"3", 3, true},
		{" 3", 3, true},
		{"3\t", 3, true},
		{"2n+1", 0, false},
		{"odd", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		n, ok := PlainIndex(tt.index)
		if n != tt.want || ok != tt.ok {
			t.Errorf("PlainIndex(%q) = %d, %t, want %d, %t", tt.index, n, ok, tt.want, tt.ok)
		}
	}
	if err := CheckIndex(" 0 "); !errors.Is(err, ErrMalformedRule) {
		t.Errorf("CheckIndex(\" 0 \") = %v, want malformed rule", err)
	}
}
