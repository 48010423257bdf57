// Package itemdb provides a SQLite-backed item store for collections too
// large to filter in memory. It implements store.Store over items.Record;
// record fields round-trip through a YAML column so expression filters
// keep working on database-loaded items.
package itemdb

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"

	"github.com/oakwood-commons/combox/internal/items"
	"github.com/oakwood-commons/combox/pkg/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS items (
	position INTEGER PRIMARY KEY AUTOINCREMENT,
	id       TEXT NOT NULL UNIQUE,
	display  TEXT NOT NULL,
	fields   TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_items_display ON items(display);
`

// DB is a SQLite-backed item store. All queries preserve insertion order
// via the position column, mirroring the slice order an in-memory store
// would keep.
type DB struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath and ensures the schema.
// Pass ":memory:" for an ephemeral store.
func Open(ctx context.Context, dbPath string) (*DB, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is required")
	}
	dsn, err := sqliteDSN(dbPath)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{db: db}, nil
}

func sqliteDSN(dbPath string) (string, error) {
	if dbPath == ":memory:" {
		return "file::memory:?cache=shared", nil
	}
	u := url.URL{Scheme: "file", Path: dbPath}
	return u.String(), nil
}

// Close releases the underlying connection.
func (d *DB) Close() error { return d.db.Close() }

// Load bulk-inserts records, replacing rows that share an id.
func (d *DB) Load(ctx context.Context, records []items.Record) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO items (id, display, fields) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET display = excluded.display, fields = excluded.fields`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		fields := ""
		if len(rec.Fields) > 0 {
			raw, err := yaml.Marshal(rec.Fields)
			if err != nil {
				return fmt.Errorf("encode fields for %q: %w", rec.ID, err)
			}
			fields = string(raw)
		}
		if _, err := stmt.ExecContext(ctx, rec.ID, rec.Display, fields); err != nil {
			return fmt.Errorf("insert %q: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

// GetByID returns the record with the given id, if present.
func (d *DB) GetByID(ctx context.Context, id string) (items.Record, bool, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT id, display, fields FROM items WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return items.Record{}, false, nil
	}
	if err != nil {
		return items.Record{}, false, fmt.Errorf("get %q: %w", id, err)
	}
	return rec, true, nil
}

// GetIndex returns the record's position in insertion order, if present.
func (d *DB) GetIndex(ctx context.Context, id string) (int, bool, error) {
	// Existence and rank come from one statement so a concurrent Load
	// cannot slip in between and skew the answer.
	row := d.db.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM items a WHERE a.position < b.position)
		 FROM items b WHERE b.id = ?`, id)
	var idx int
	err := row.Scan(&idx)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("index of %q: %w", id, err)
	}
	return idx, true, nil
}

// Search returns the page of records whose display contains query,
// case-sensitively, in insertion order.
func (d *DB) Search(ctx context.Context, query string, page store.Page) (store.SearchResult[items.Record], error) {
	if page.Size <= 0 {
		page.Size = store.DefaultPageSize
	}
	if page.Number < 0 {
		page.Number = 0
	}

	// instr is byte-wise and therefore case-sensitive, matching the
	// engine's default substring filter; LIKE would case-fold ASCII.
	where := ""
	args := []any{}
	if query != "" {
		where = `WHERE instr(display, ?) > 0`
		args = append(args, query)
	}

	var total int
	if err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items `+where, args...).Scan(&total); err != nil {
		return store.SearchResult[items.Record]{}, fmt.Errorf("count search: %w", err)
	}

	args = append(args, page.Size, page.Number*page.Size)
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, display, fields FROM items `+where+` ORDER BY position LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return store.SearchResult[items.Record]{}, fmt.Errorf("search: %w", err)
	}
	defer rows.Close()

	var matched []items.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return store.SearchResult[items.Record]{}, fmt.Errorf("scan search row: %w", err)
		}
		matched = append(matched, rec)
	}
	if err := rows.Err(); err != nil {
		return store.SearchResult[items.Record]{}, fmt.Errorf("search rows: %w", err)
	}

	return store.SearchResult[items.Record]{
		Items:   matched,
		Total:   total,
		Page:    page,
		HasMore: (page.Number+1)*page.Size < total,
	}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (items.Record, error) {
	var rec items.Record
	var fields string
	if err := row.Scan(&rec.ID, &rec.Display, &fields); err != nil {
		return items.Record{}, err
	}
	if fields != "" {
		if err := yaml.Unmarshal([]byte(fields), &rec.Fields); err != nil {
			return items.Record{}, fmt.Errorf("decode fields for %q: %w", rec.ID, err)
		}
	}
	return rec, nil
}
