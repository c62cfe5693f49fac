// Package storage keeps named template documents in a sqlite database so
// template sets could be reused between runs.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/maruel/natural"
	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"tabletpl/common"
	"tabletpl/templates"
)

// ErrNotFound is returned when requested document is not stored.
var ErrNotFound = errors.New("document not found")

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	name    TEXT PRIMARY KEY NOT NULL,
	payload TEXT NOT NULL,
	updated INTEGER NOT NULL
);
`

// Entry describes stored document.
type Entry struct {
	Name      string
	Templates int
	Updated   time.Time
}

// Repository is a sqlite backed document storage. Single connection is
// shared and guarded, repository is safe for concurrent use.
type Repository struct {
	log *zap.Logger

	mu   sync.Mutex
	conn *sqlite.Conn
}

// Open opens (creating when necessary) database at path. Use ":memory:" for
// transient storage.
func Open(ctx context.Context, path string, log *zap.Logger) (*Repository, error) {
	if log == nil {
		log = zap.NewNop()
	}

	flags := []sqlite.OpenFlags{sqlite.OpenReadWrite, sqlite.OpenCreate}
	if path == ":memory:" {
		flags = append(flags, sqlite.OpenMemory)
	} else {
		flags = append(flags, sqlite.OpenWAL)
	}
	conn, err := sqlite.OpenConn(path, flags...)
	if err != nil {
		return nil, fmt.Errorf("unable to open storage %q: %w", path, err)
	}
	conn.SetInterrupt(ctx.Done())
	defer conn.SetInterrupt(nil)

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("unable to initialize storage %q: %w", path, err)
	}

	r := &Repository{log: log.Named("storage"), conn: conn}
	r.log.Debug("Storage opened", zap.String("path", path))
	return r, nil
}

// Close releases database.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conn == nil {
		return nil
	}
	err := r.conn.Close()
	r.conn = nil
	return err
}

// Save stores pruned document under name replacing previous version.
func (r *Repository) Save(ctx context.Context, name string, doc templates.Document) (err error) {
	if err := templates.CheckName(name); err != nil {
		return fmt.Errorf("document name: %w", err)
	}
	if err := doc.CheckNames(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := templates.Encode(&buf, doc.Pruned(), common.DocumentFormatJson); err != nil {
		return err
	}

	conn, release, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn,
		`INSERT INTO documents (name, payload, updated) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated = excluded.updated`,
		&sqlitex.ExecOptions{Args: []any{name, buf.String(), time.Now().Unix()}})
	if err != nil {
		return fmt.Errorf("unable to save document %q: %w", name, err)
	}
	r.log.Debug("Document saved", zap.String("name", name), zap.Int("templates", len(doc)))
	return nil
}

// Load returns stored document.
func (r *Repository) Load(ctx context.Context, name string) (templates.Document, error) {
	conn, release, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	var (
		payload string
		found   bool
	)
	err = sqlitex.Execute(conn, `SELECT payload FROM documents WHERE name = ?`,
		&sqlitex.ExecOptions{
			Args: []any{name},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				payload, found = stmt.ColumnText(0), true
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("unable to load document %q: %w", name, err)
	}
	if !found {
		return nil, fmt.Errorf("document %q: %w", name, ErrNotFound)
	}

	doc, err := templates.Parse([]byte(payload), common.DocumentFormatJson)
	if err != nil {
		return nil, fmt.Errorf("stored document %q is corrupted: %w", name, err)
	}
	return doc, nil
}

// List returns stored documents in natural name order.
func (r *Repository) List(ctx context.Context) ([]Entry, error) {
	conn, release, err := r.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	byName := make(map[string]Entry)
	err = sqlitex.Execute(conn, `SELECT name, payload, updated FROM documents`,
		&sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				e := Entry{
					Name:    stmt.ColumnText(0),
					Updated: time.Unix(stmt.ColumnInt64(2), 0),
				}
				if doc, err := templates.Parse([]byte(stmt.ColumnText(1)), common.DocumentFormatJson); err == nil {
					e.Templates = len(doc)
				} else {
					r.log.Warn("Stored document is corrupted", zap.String("name", e.Name), zap.Error(err))
				}
				byName[e.Name] = e
				return nil
			},
		})
	if err != nil {
		return nil, fmt.Errorf("unable to list documents: %w", err)
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, byName[name])
	}
	return entries, nil
}

// Delete removes stored document.
func (r *Repository) Delete(ctx context.Context, name string) error {
	conn, release, err := r.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	if err := sqlitex.Execute(conn, `DELETE FROM documents WHERE name = ?`, &sqlitex.ExecOptions{Args: []any{name}}); err != nil {
		return fmt.Errorf("unable to delete document %q: %w", name, err)
	}
	if conn.Changes() == 0 {
		return fmt.Errorf("document %q: %w", name, ErrNotFound)
	}
	r.log.Debug("Document deleted", zap.String("name", name))
	return nil
}

// acquire locks connection and arranges for ctx cancellation to interrupt
// running statements.
func (r *Repository) acquire(ctx context.Context) (*sqlite.Conn, func(), error) {
	r.mu.Lock()
	if r.conn == nil {
		r.mu.Unlock()
		return nil, nil, errors.New("storage is closed")
	}
	if err := ctx.Err(); err != nil {
		r.mu.Unlock()
		return nil, nil, err
	}
	r.conn.SetInterrupt(ctx.Done())
	return r.conn, func() {
		r.conn.SetInterrupt(nil)
		r.mu.Unlock()
	}, nil
}
