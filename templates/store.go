package templates

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ChangeFunc receives pruned snapshot of the document after every mutation
// done through the store.
type ChangeFunc func(Document)

// Store owns canonical template document of a single editor session. All
// data crossing its boundary is deep copied, so callers can never change
// what the compiler sees without going through validated entry points.
type Store struct {
	log *zap.Logger

	mu        sync.Mutex
	doc       Document
	active    string
	listeners map[int]ChangeFunc
	nextID    int
}

// NewStore creates empty store.
func NewStore(log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		log:       log.Named("template-store"),
		doc:       Document{},
		listeners: make(map[int]ChangeFunc),
	}
}

// SetTemplates replaces the whole document. Nothing is changed when any of
// the names is illegal. Subscribers are not notified - caller is the one who
// knows about the change.
func (s *Store) SetTemplates(doc Document) error {
	if err := doc.CheckNames(); err != nil {
		return err
	}
	clone := doc.Clone()
	if clone == nil {
		clone = Document{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = clone
	if _, ok := s.doc[s.active]; !ok {
		s.active = ""
	}
	s.log.Debug("Templates replaced", zap.Int("count", len(clone)), zap.String("active", s.active))
	return nil
}

// Templates returns pruned deep copy of the document.
func (s *Store) Templates() Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doc.Pruned()
}

// Template returns pruned copy of a single template.
func (s *Store) Template(name string) (*Template, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.doc[name]
	if !ok {
		return nil, false
	}
	clone := t.Clone()
	if clone == nil {
		clone = &Template{}
	}
	clone.Prune()
	return clone, true
}

// Keys returns all template names in natural order, including templates
// which are still empty.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.doc.Names()
}

// Label returns display label of the template, falling back to its name.
func (s *Store) Label(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t := s.doc[name]; t != nil && !isBlank(t.Name) {
		return t.Name
	}
	return name
}

// Select marks template as active. Unknown (or empty) name clears selection,
// result tells whether template was found.
func (s *Store) Select(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doc[name]; !ok {
		s.active = ""
		return false
	}
	s.active = name
	return true
}

// Active returns name of the active template.
func (s *Store) Active() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active, s.active != ""
}

// Create adds new empty template labeled with label and returns its name.
func (s *Store) Create(label string) (string, error) {
	label = strings.TrimSpace(label)

	s.mu.Lock()
	if label != "" && s.labelTakenLocked(label, "") {
		s.mu.Unlock()
		return "", fmt.Errorf("label %q is already used: %w", label, ErrInvalidArgument)
	}
	name := KeyFromLabel(label, s.nameTakenLocked)
	if label == "" {
		label = name
	}
	s.doc[name] = &Template{Name: label}
	s.log.Debug("Template created", zap.String("name", name), zap.String("label", label))
	snapshot, listeners := s.changedLocked()
	s.mu.Unlock()

	notify(snapshot, listeners)
	return name, nil
}

// Copy duplicates template under a new name and returns it.
func (s *Store) Copy(name string) (string, error) {
	s.mu.Lock()
	src, ok := s.doc[name]
	if !ok {
		s.mu.Unlock()
		return "", fmt.Errorf("template %q: %w", name, ErrUnknownTemplate)
	}
	label := name
	if src != nil && !isBlank(src.Name) {
		label = src.Name
	}
	clone := src.Clone()
	if clone == nil {
		clone = &Template{}
	}
	clone.Name = CopyLabel(label, func(l string) bool { return s.labelTakenLocked(l, "") })
	key := KeyFromLabel("", s.nameTakenLocked)
	s.doc[key] = clone
	s.log.Debug("Template copied", zap.String("from", name), zap.String("name", key), zap.String("label", clone.Name))
	snapshot, listeners := s.changedLocked()
	s.mu.Unlock()

	notify(snapshot, listeners)
	return key, nil
}

// Delete removes template, clearing selection if it was active.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	if _, ok := s.doc[name]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("template %q: %w", name, ErrUnknownTemplate)
	}
	delete(s.doc, name)
	if s.active == name {
		s.active = ""
	}
	s.log.Debug("Template deleted", zap.String("name", name))
	snapshot, listeners := s.changedLocked()
	s.mu.Unlock()

	notify(snapshot, listeners)
	return nil
}

// Rename changes display label of the template. Labels must be unique and
// not blank.
func (s *Store) Rename(name, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("empty label for template %q: %w", name, ErrInvalidArgument)
	}

	s.mu.Lock()
	t, ok := s.doc[name]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("template %q: %w", name, ErrUnknownTemplate)
	}
	if s.labelTakenLocked(label, name) {
		s.mu.Unlock()
		return fmt.Errorf("label %q is already used: %w", label, ErrInvalidArgument)
	}
	if t == nil {
		t = &Template{}
		s.doc[name] = t
	}
	t.Name = label
	snapshot, listeners := s.changedLocked()
	s.mu.Unlock()

	notify(snapshot, listeners)
	return nil
}

// Mutate applies fn to a deep copy of the document. When fn fails or leaves
// illegal names behind the candidate is discarded and the store keeps its
// previous state, otherwise candidate replaces the document and subscribers
// are notified.
func (s *Store) Mutate(fn func(Document) error) error {
	s.mu.Lock()
	candidate := s.doc.Clone()
	if err := fn(candidate); err != nil {
		s.mu.Unlock()
		s.log.Debug("Template changes discarded", zap.Error(err))
		return err
	}
	if err := candidate.CheckNames(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.doc = candidate
	if _, ok := s.doc[s.active]; !ok {
		s.active = ""
	}
	snapshot, listeners := s.changedLocked()
	s.mu.Unlock()

	notify(snapshot, listeners)
	return nil
}

// Subscribe registers change listener, returned function removes it.
func (s *Store) Subscribe(fn ChangeFunc) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// changedLocked prepares notification, listeners are called after the lock
// is released so they are free to use the store.
func (s *Store) changedLocked() (Document, []ChangeFunc) {
	if len(s.listeners) == 0 {
		return nil, nil
	}
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	// registration order
	slices.Sort(ids)
	listeners := make([]ChangeFunc, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	return s.doc.Pruned(), listeners
}

func (s *Store) nameTakenLocked(name string) bool {
	_, ok := s.doc[name]
	return ok
}

func (s *Store) labelTakenLocked(label, except string) bool {
	for name, t := range s.doc {
		if name == except {
			continue
		}
		existing := name
		if t != nil && !isBlank(t.Name) {
			existing = t.Name
		}
		if existing == label {
			return true
		}
	}
	return false
}

func notify(doc Document, listeners []ChangeFunc) {
	for _, fn := range listeners {
		// every listener gets its own copy
		fn(doc.Clone())
	}
}
