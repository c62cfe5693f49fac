package css

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"tabletpl/common"
	"tabletpl/templates"
)

// Compiler renders template documents to stylesheets. It keeps no state
// between calls and may be used concurrently.
type Compiler struct {
	log *zap.Logger
}

// NewCompiler creates a new template compiler.
func NewCompiler(log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{log: log.Named("css-compiler")}
}

// Compile renders document to css text, rule blocks are separated by an
// empty line and trailing whitespace is trimmed. Any problem in the document
// is fatal, first one found is returned and no css is produced.
func (c *Compiler) Compile(doc templates.Document) (string, error) {
	sheet, err := c.Stylesheet(doc)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if _, err := sheet.WriteTo(&sb); err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}

// Stylesheet renders document to stylesheet model.
func (c *Compiler) Stylesheet(doc templates.Document) (*Stylesheet, error) {
	sheet, err := build(doc, true)
	if err != nil {
		c.log.Debug("Unable to compile templates", zap.Error(err))
		return nil, err
	}
	c.log.Debug("Templates compiled", zap.Int("templates", len(doc)), zap.Int("rules", len(sheet.Rules)))
	return sheet, nil
}

// Validate checks the whole document and reports every problem found.
func Validate(doc templates.Document) error {
	_, err := build(doc, false)
	return err
}

// build walks templates in natural name order. For every template rules are
// emitted in fixed order: table, columns, rows, cells. Columns go before rows
// so row styles win when they overlap (same specificity, later in source),
// cells come last overriding both.
func build(doc templates.Document, failFast bool) (*Stylesheet, error) {
	var (
		sheet = &Stylesheet{}
		errs  error
	)
	// fail records problem and reports whether processing has to stop
	fail := func(err error) bool {
		errs = multierr.Append(errs, err)
		return failFast
	}

	for _, name := range doc.Names() {
		if err := templates.CheckName(name); err != nil {
			if fail(err) {
				return nil, errs
			}
			continue
		}
		t := doc[name]
		if t == nil {
			continue
		}
		table := "table." + name

		if len(t.Table) > 0 {
			decls, err := declarations(common.RuleKindTable, t.Table)
			if err != nil {
				if fail(fmt.Errorf("template %q table: %w", name, err)) {
					return nil, errs
				}
			} else {
				sheet.Rules = append(sheet.Rules, Rule{Selector: table, Declarations: decls})
			}
		}

		for i, r := range t.Columns {
			decls, err := positional(common.RuleKindCols, r)
			if err != nil {
				if fail(fmt.Errorf("template %q cols[%d]: %w", name, i, err)) {
					return nil, errs
				}
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{
				Selector:     table + " > tr > td" + nth(r.Index, r.FromEnd),
				Declarations: decls,
			})
		}

		for i, r := range t.Rows {
			decls, err := positional(common.RuleKindRows, r)
			if err != nil {
				if fail(fmt.Errorf("template %q rows[%d]: %w", name, i, err)) {
					return nil, errs
				}
				continue
			}
			// trailing td without position is what lets rows override columns
			sheet.Rules = append(sheet.Rules, Rule{
				Selector:     table + " > tr" + nth(r.Index, r.FromEnd) + " > td",
				Declarations: decls,
			})
		}

		for i, cell := range t.Cells {
			selector, decls, err := cellRule(table, cell)
			if err != nil {
				if fail(fmt.Errorf("template %q cells[%d]: %w", name, i, err)) {
					return nil, errs
				}
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: selector, Declarations: decls})
		}
	}

	if errs != nil {
		return nil, errs
	}
	return sheet, nil
}

func positional(kind common.RuleKind, r templates.PositionalRule) ([]Declaration, error) {
	if err := templates.CheckIndex(r.Index); err != nil {
		return nil, err
	}
	if r.Declarations == nil {
		return nil, fmt.Errorf("no declarations: %w", templates.ErrMalformedRule)
	}
	return declarations(kind, r.Declarations)
}

func cellRule(table string, cell templates.CellRule) (string, []Declaration, error) {
	if cell.Declarations == nil {
		return "", nil, fmt.Errorf("no declarations: %w", templates.ErrMalformedRule)
	}
	if (cell.X != nil && *cell.X < 0) || (cell.Y != nil && *cell.Y < 0) {
		return "", nil, fmt.Errorf("negative cell coordinates: %w", templates.ErrMalformedRule)
	}
	decls, err := declarations(common.RuleKindCells, cell.Declarations)
	if err != nil {
		return "", nil, err
	}

	// model coordinates are 0-based, nth-of-type counts from 1
	selector := table + " > tr"
	if cell.Y != nil {
		selector += nth(strconv.Itoa(*cell.Y+1), false)
	}
	selector += " > td"
	if cell.X != nil {
		selector += nth(strconv.Itoa(*cell.X+1), false)
	}
	return selector, decls, nil
}

// nth produces positional pseudo-class. Index is used as is, it could be an
// An+B expression.
func nth(index string, fromEnd bool) string {
	if fromEnd {
		return ":nth-last-of-type(" + index + ")"
	}
	return ":nth-of-type(" + index + ")"
}

// declarations validates and maps template declarations to css ones in
// vocabulary order.
func declarations(kind common.RuleKind, decls templates.Declarations) ([]Declaration, error) {
	keys := make([]string, 0, len(decls))
	for k := range decls {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		p, err := common.ParseProperty(k)
		if err != nil || !p.AllowedFor(kind) {
			return nil, fmt.Errorf("unsupported property %q for %s: %w", k, kind, templates.ErrInvalidPropertyForRuleKind)
		}
		if err := CheckValue(decls[k]); err != nil {
			return nil, fmt.Errorf("property %q: %w", k, err)
		}
	}

	out := make([]Declaration, 0, len(decls))
	for _, p := range common.PropertiesFor(kind) {
		if v, ok := decls[p.String()]; ok {
			out = append(out, Declaration{Property: p.CSS(), Value: v})
		}
	}
	return out, nil
}
