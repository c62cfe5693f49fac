// Package session ties template store, compiler and editing form to a host
// editor surface. Session is driven by host events and is not safe for
// concurrent use: host is expected to serialize calls the same way it
// serializes its own UI events.
package session

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tabletpl/common"
	"tabletpl/css"
	"tabletpl/forms"
	"tabletpl/templates"
)

// hostTemplateName is what host may report as table template, actual
// existence is checked against the store.
var hostTemplateName = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// Session is a single editor instance.
type Session struct {
	log      *zap.Logger
	host     Host
	store    *templates.Store
	compiler *css.Compiler
	form     *forms.Form

	tableID  string
	selected bool

	selectedListeners map[int]func(string)
	nextListener      int
}

// New creates session driving host.
func New(host Host, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		log:               log.Named("session"),
		host:              host,
		store:             templates.NewStore(log),
		compiler:          css.NewCompiler(log),
		form:              forms.New(),
		selectedListeners: make(map[int]func(string)),
	}
	s.form.SetCurrentPartsEnabled(false)
	s.store.Subscribe(s.templatesChanged)
	return s
}

// SetTemplates replaces template document. Document is compiled before it
// is accepted, on any error session keeps previous templates.
func (s *Session) SetTemplates(doc templates.Document) error {
	if err := doc.CheckNames(); err != nil {
		return err
	}
	out, err := s.compiler.Compile(doc.Pruned())
	if err != nil {
		return err
	}
	if err := s.store.SetTemplates(doc); err != nil {
		return err
	}
	s.host.ApplyStylesheet(out)
	s.reloadForm()
	return nil
}

// Templates returns pruned copy of current document.
func (s *Session) Templates() templates.Document {
	return s.store.Templates()
}

// Store gives access to template management (create, copy, rename...).
// Changes made through it are propagated to host.
func (s *Session) Store() *templates.Store {
	return s.store
}

// Stylesheet compiles current document.
func (s *Session) Stylesheet() (string, error) {
	return s.compiler.Compile(s.store.Templates())
}

// Form returns editing form of the active template.
func (s *Session) Form() *forms.Form {
	return s.form
}

// ActiveTemplate returns name of the template assigned to selected table.
func (s *Session) ActiveTemplate() (string, bool) {
	return s.store.Active()
}

// InsertTable asks host to insert new table and returns its id.
func (s *Session) InsertTable(rows, cols int) (string, error) {
	if rows <= 0 || cols <= 0 {
		return "", fmt.Errorf("table of %dx%d: %w", rows, cols, templates.ErrInvalidArgument)
	}
	id := uuid.NewString()
	s.log.Debug("Inserting table", zap.String("id", id), zap.Int("rows", rows), zap.Int("cols", cols))
	s.host.InsertTable(id, rows, cols)
	return id, nil
}

// SetTemplateForCurrentTable assigns template to selected table, empty name
// removes assignment.
func (s *Session) SetTemplateForCurrentTable(name string) error {
	if !s.selected {
		return fmt.Errorf("no table selected: %w", templates.ErrInvalidArgument)
	}
	if name != "" {
		if _, ok := s.store.Template(name); !ok {
			return fmt.Errorf("template %q: %w", name, templates.ErrUnknownTemplate)
		}
	}
	s.store.Select(name)
	s.host.ApplyTemplateName(s.tableID, name)
	s.reloadForm()
	s.templateSelected(name)
	return nil
}

// HandleTableSelected processes host selection change.
func (s *Session) HandleTableSelected(ev TableSelected) error {
	if ev.Template != "" && !hostTemplateName.MatchString(ev.Template) {
		return fmt.Errorf("template %q reported by host: %w", ev.Template, templates.ErrInvalidTemplateName)
	}
	if (ev.Row != nil && *ev.Row < 0) || (ev.Col != nil && *ev.Col < 0) {
		return fmt.Errorf("negative cursor position: %w", templates.ErrInvalidArgument)
	}

	if !ev.Selected {
		s.selected, s.tableID = false, ""
		s.store.Select("")
		s.form.SetCurrentPartsEnabled(false)
		s.reloadForm()
		s.templateSelected("")
		return nil
	}

	s.selected, s.tableID = true, ev.TableID
	var name string
	if s.store.Select(ev.Template) {
		name = ev.Template
	} else if ev.Template != "" {
		s.log.Debug("Table refers to unknown template", zap.String("table", ev.TableID), zap.String("template", ev.Template))
	}
	if ev.Row != nil {
		// already validated
		_ = s.form.SetSelectedRow(*ev.Row, nil)
	}
	if ev.Col != nil {
		_ = s.form.SetSelectedColumn(*ev.Col, nil)
	}
	s.form.SetCurrentPartsEnabled(!ev.CellSelection)
	s.reloadForm()
	s.templateSelected(name)
	return nil
}

// HandleCellChanged follows editing cursor.
func (s *Session) HandleCellChanged(ev CellChanged) error {
	if ev.Row < 0 || ev.Col < 0 {
		return fmt.Errorf("cursor at %d:%d: %w", ev.Row, ev.Col, templates.ErrInvalidArgument)
	}
	t := s.activeTemplate()
	if err := s.form.SetSelectedRow(ev.Row, t); err != nil {
		return err
	}
	return s.form.SetSelectedColumn(ev.Col, t)
}

// InsertRowAbove inserts row before the cursor.
func (s *Session) InsertRowAbove() error {
	return s.structural(common.RuleKindRows, s.form.SelectedRow(), true, common.TableActionAppendRowAbove)
}

// InsertRowBelow inserts row after the cursor.
func (s *Session) InsertRowBelow() error {
	return s.structural(common.RuleKindRows, s.form.SelectedRow(), false, common.TableActionAppendRowBelow)
}

// InsertColumnBefore inserts column before the cursor.
func (s *Session) InsertColumnBefore() error {
	return s.structural(common.RuleKindCols, s.form.SelectedColumn(), true, common.TableActionAppendColBefore)
}

// InsertColumnAfter inserts column after the cursor.
func (s *Session) InsertColumnAfter() error {
	return s.structural(common.RuleKindCols, s.form.SelectedColumn(), false, common.TableActionAppendColAfter)
}

// RemoveRow removes row under the cursor.
func (s *Session) RemoveRow() error {
	if err := s.store.RemoveIndex(common.RuleKindRows, s.form.SelectedRow()); err != nil {
		return err
	}
	s.host.ExecuteAction(common.TableActionRemoveRow)
	return nil
}

// RemoveColumn removes column under the cursor.
func (s *Session) RemoveColumn() error {
	if err := s.store.RemoveIndex(common.RuleKindCols, s.form.SelectedColumn()); err != nil {
		return err
	}
	s.host.ExecuteAction(common.TableActionRemoveCol)
	return nil
}

// MergeCells merges selected cells.
func (s *Session) MergeCells() {
	s.host.ExecuteAction(common.TableActionMergeSelection)
}

// SplitCell splits merged cell under the cursor.
func (s *Session) SplitCell() {
	s.host.ExecuteAction(common.TableActionSplitCell)
}

// RemoveTable removes selected table.
func (s *Session) RemoveTable() {
	s.host.ExecuteAction(common.TableActionRemoveTable)
}

func (s *Session) structural(kind common.RuleKind, at int, before bool, action common.TableAction) error {
	if err := s.store.InsertIndex(kind, at, before); err != nil {
		return err
	}
	s.host.ExecuteAction(action)
	return nil
}

// CommitForm applies form edits to the active template. This is where edits
// made by user meet the compiler: failure is reported to host, logged, and
// the store keeps its previous document. Returned error is informational.
func (s *Session) CommitForm() error {
	name, ok := s.store.Active()
	if !ok {
		return fmt.Errorf("no active template: %w", templates.ErrInvalidArgument)
	}

	err := s.store.Mutate(func(doc templates.Document) error {
		t := doc[name]
		if t == nil {
			t = &templates.Template{}
			doc[name] = t
		}
		s.form.Apply(t)
		_, err := s.compiler.Compile(doc.Pruned())
		return err
	})
	if err != nil {
		s.log.Warn("Unable to apply template changes", zap.String("template", name), zap.Error(err))
		s.host.Notify(notice(err))
		return err
	}
	s.reloadForm()
	return nil
}

// AddTemplatesChangedListener registers fn to receive document after every
// change, result removes the listener.
func (s *Session) AddTemplatesChangedListener(fn func(templates.Document)) func() {
	return s.store.Subscribe(fn)
}

// AddTemplateSelectedListener registers fn to receive name of the template
// assigned to the selected table (empty when none), result removes the
// listener.
func (s *Session) AddTemplateSelectedListener(fn func(name string)) func() {
	id := s.nextListener
	s.nextListener++
	s.selectedListeners[id] = fn
	return func() { delete(s.selectedListeners, id) }
}

func (s *Session) templateSelected(name string) {
	for id := 0; id < s.nextListener; id++ {
		if fn, ok := s.selectedListeners[id]; ok {
			fn(name)
		}
	}
}

// templatesChanged keeps host stylesheet and form in sync with the store.
func (s *Session) templatesChanged(doc templates.Document) {
	out, err := s.compiler.Compile(doc)
	if err != nil {
		s.log.Warn("Unable to compile templates", zap.Error(err))
		s.host.Notify(notice(err))
		return
	}
	s.host.ApplyStylesheet(out)
	if name, ok := s.store.Active(); ok && name == s.form.Template() {
		s.form.Refresh(doc[name])
	}
}

func (s *Session) activeTemplate() *templates.Template {
	name, ok := s.store.Active()
	if !ok {
		return nil
	}
	t, _ := s.store.Template(name)
	return t
}

func (s *Session) reloadForm() {
	name, _ := s.store.Active()
	s.form.Read(name, s.activeTemplate())
}

func notice(err error) string {
	switch {
	case errors.Is(err, templates.ErrInvalidTemplateName):
		return "Invalid template name: " + err.Error()
	case errors.Is(err, templates.ErrInvalidPropertyForRuleKind):
		return "Unsupported style property: " + err.Error()
	case errors.Is(err, templates.ErrMalformedRule):
		return "Invalid style value: " + err.Error()
	default:
		return "Unable to apply template: " + err.Error()
	}
}
