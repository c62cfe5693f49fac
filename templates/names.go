package templates

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
)

// NamePattern is what every template name (document key) must match. Name
// ends up as css class of the table, so it is kept very conservative.
var NamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

const (
	defaultKeyPrefix = "template"
	copySuffix       = " - Copy"
)

// IsValidName reports whether name may be used as a template key.
func IsValidName(name string) bool {
	return NamePattern.MatchString(name)
}

// CheckName returns wrapped ErrInvalidTemplateName for an illegal name.
func CheckName(name string) error {
	if !IsValidName(name) {
		return fmt.Errorf("%q is not a legal template name, it must match %s: %w", name, NamePattern.String(), ErrInvalidTemplateName)
	}
	return nil
}

// Names returns template names of the document in natural order, which is
// the order templates are compiled and listed in.
func (d Document) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// CheckNames verifies all document keys, reporting the first illegal one.
func (d Document) CheckNames() error {
	for _, name := range d.Names() {
		if err := CheckName(name); err != nil {
			return err
		}
	}
	return nil
}

// KeyFromLabel derives legal template key from human readable label. Label is
// transliterated and camel cased ("Striped rows" -> "stripedRows"), when
// nothing usable is left "template1", "template2", ... are produced. taken
// reports keys already in use.
func KeyFromLabel(label string, taken func(string) bool) string {
	base := camelCase(slug.Make(label))
	if base == "" {
		return numberedName(defaultKeyPrefix, "", 1, taken)
	}
	if !taken(base) {
		return base
	}
	return numberedName(base, "", 2, taken)
}

// CopyLabel produces label for a copy of the template labeled with label:
// "Name" -> "Name - Copy" -> "Name - Copy (1)" -> "Name - Copy (2)" and so on,
// skipping labels already in use.
func CopyLabel(label string, taken func(string) bool) string {
	idx := strings.Index(label, strings.TrimSpace(copySuffix))
	if idx < 0 {
		candidate := label + copySuffix
		if !taken(candidate) {
			return candidate
		}
		return numberedName(candidate+" (", ")", 1, taken)
	}

	start := 1
	prefix := label + " "
	if open := strings.Index(label[idx:], "("); open >= 0 {
		open += idx
		prefix = label[:open]
		if end := strings.Index(label[open:], ")"); end > 0 {
			// unparsable counter is ignored, counting restarts
			if n, err := strconv.Atoi(strings.TrimSpace(label[open+1 : open+end])); err == nil && n > 0 {
				start = n
			}
		}
	}
	return numberedName(prefix+"(", ")", start, taken)
}

func numberedName(prefix, suffix string, start int, taken func(string) bool) string {
	for i := start; ; i++ {
		if name := prefix + strconv.Itoa(i) + suffix; !taken(name) {
			return name
		}
	}
}

// camelCase turns slug ("striped-rows-2") into legal name ("stripedRows2").
func camelCase(s string) string {
	var (
		b     strings.Builder
		upper bool
	)
	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
			continue
		case unicode.IsLetter(r):
			if upper && b.Len() > 0 {
				r = unicode.ToUpper(r)
			}
			b.WriteRune(r)
			upper = false
		case unicode.IsDigit(r):
			if b.Len() > 0 {
				b.WriteRune(r)
			}
			upper = true
		default:
			upper = true
		}
	}
	return b.String()
}
