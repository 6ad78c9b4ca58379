package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/amishk599/bankradar/internal/classify"
	"github.com/amishk599/bankradar/internal/contract"
	"github.com/amishk599/bankradar/internal/model"
)

// timeLayout keeps every stored timestamp in one lexically sortable UTC form so
// that eviction can compare strings.
const timeLayout = "2006-01-02T15:04:05Z"

const createPostings = `CREATE TABLE IF NOT EXISTS postings (
	id            TEXT PRIMARY KEY,
	title         TEXT NOT NULL,
	company       TEXT,
	location      TEXT,
	link          TEXT NOT NULL UNIQUE,
	posted        TEXT NOT NULL,
	source        TEXT NOT NULL,
	keyword       TEXT,
	category      TEXT NOT NULL,
	contract_type TEXT NOT NULL,
	country_code  TEXT,
	country_name  TEXT
)`

// addedColumns lists columns that older databases may lack, with the type used
// to add them.
var addedColumns = []struct{ name, decl string }{
	{"keyword", "TEXT"},
	{"category", "TEXT NOT NULL DEFAULT 'Other'"},
	{"contract_type", "TEXT NOT NULL DEFAULT 'unspecified'"},
	{"country_code", "TEXT"},
	{"country_name", "TEXT"},
}

// SQLiteStore persists enriched postings in a SQLite database. The id and link
// columns are both unique, which backs the dual existence check.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath, creates the
// postings table and adds any column an older schema is missing.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	// One writer, used sequentially.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	s := &SQLiteStore{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	if _, err := s.db.Exec(createPostings); err != nil {
		return fmt.Errorf("creating postings table: %w", err)
	}

	existing, err := s.columns()
	if err != nil {
		return err
	}
	for _, c := range addedColumns {
		if existing[c.name] {
			continue
		}
		if _, err := s.db.Exec(fmt.Sprintf("ALTER TABLE postings ADD COLUMN %s %s", c.name, c.decl)); err != nil {
			return fmt.Errorf("adding column %s: %w", c.name, err)
		}
	}

	if _, err := s.db.Exec("CREATE INDEX IF NOT EXISTS idx_postings_posted ON postings(posted)"); err != nil {
		return fmt.Errorf("creating posted index: %w", err)
	}
	return nil
}

func (s *SQLiteStore) columns() (map[string]bool, error) {
	rows, err := s.db.Query("PRAGMA table_info(postings)")
	if err != nil {
		return nil, fmt.Errorf("reading postings schema: %w", err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name, typ string
			notNull   int
			dflt      sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scanning postings schema: %w", err)
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

// IsNew returns true if no stored posting has the given ID.
func (s *SQLiteStore) IsNew(ctx context.Context, id string) (bool, error) {
	return s.absent(ctx, "SELECT 1 FROM postings WHERE id = ?", id)
}

// IsNewByLink returns true if no stored posting has the given link.
func (s *SQLiteStore) IsNewByLink(ctx context.Context, link string) (bool, error) {
	return s.absent(ctx, "SELECT 1 FROM postings WHERE link = ?", link)
}

func (s *SQLiteStore) absent(ctx context.Context, query, arg string) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking existence of %s: %w", arg, err)
	}
	return false, nil
}

// Save inserts p. A posting whose ID or link is already stored is not written
// and model.ErrDuplicate is returned. A missing or zero posted time is stored as now;
// an empty category or unknown contract type is stored as the default.
func (s *SQLiteStore) Save(ctx context.Context, p model.EnrichedPosting) error {
	posted := s.now()
	if p.Posted != nil && !p.Posted.IsZero() {
		posted = *p.Posted
	}
	if p.Category == "" {
		p.Category = classify.Other
	}
	if !contract.Type(p.ContractType).Valid() {
		p.ContractType = string(contract.Unspecified)
	}

	res, err := s.db.ExecContext(ctx, `INSERT INTO postings
		(id, title, company, location, link, posted, source, keyword,
		 category, contract_type, country_code, country_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING`,
		p.ID, p.Title, p.Company, p.Location, p.Link, posted.UTC().Format(timeLayout),
		p.Source, p.Keyword, p.Category, p.ContractType,
		nullable(p.CountryCode), nullable(p.CountryName),
	)
	if err != nil {
		return fmt.Errorf("saving posting %s: %w", p.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("saving posting %s: %w", p.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("saving posting %s: %w", p.ID, model.ErrDuplicate)
	}
	return nil
}

// EvictOlderThan deletes postings whose posted time is older than window and
// returns how many rows were removed.
func (s *SQLiteStore) EvictOlderThan(ctx context.Context, window time.Duration) (int64, error) {
	cutoff := s.now().Add(-window).UTC().Format(timeLayout)
	res, err := s.db.ExecContext(ctx, "DELETE FROM postings WHERE posted < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("evicting postings older than %v: %w", window, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("evicting postings older than %v: %w", window, err)
	}
	return n, nil
}

// Recent returns up to limit postings, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]model.EnrichedPosting, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, company, location, link, posted,
		source, keyword, category, contract_type, country_code, country_name
		FROM postings ORDER BY posted DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent postings: %w", err)
	}
	defer rows.Close()

	var out []model.EnrichedPosting
	for rows.Next() {
		var (
			p                          model.EnrichedPosting
			posted                     string
			company, location, keyword sql.NullString
			countryCode, countryName   sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &company, &location, &p.Link, &posted,
			&p.Source, &keyword, &p.Category, &p.ContractType, &countryCode, &countryName); err != nil {
			return nil, fmt.Errorf("scanning posting: %w", err)
		}
		t, err := time.Parse(timeLayout, posted)
		if err != nil {
			return nil, fmt.Errorf("parsing posted time of %s: %w", p.ID, err)
		}
		p.Posted = &t
		p.Company, p.Location, p.Keyword = company.String, location.String, keyword.String
		p.CountryCode, p.CountryName = countryCode.String, countryName.String
		out = append(out, p)
	}
	return out, rows.Err()
}

// Count returns the number of stored postings.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM postings").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting postings: %w", err)
	}
	return n, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
