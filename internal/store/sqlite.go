package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"

	"github.com/Sanchess0-o/bot/internal/domain"
)

// SQLiteRepo implements Repo using an embedded SQLite database.
type SQLiteRepo struct{ db *sql.DB }

// OpenSQLite opens (or creates) the SQLite database at the given path,
// applies recommended PRAGMAs, runs SQL migrations, and returns a repository.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Reasonable pooling for SQLite; it's a single-writer engine.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

// applyPragmas configures the SQLite connection for durability and concurrency.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database resources.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// Put validates and upserts a preference. The row is replaced whole; a
// rejected preference leaves the previous row untouched.
func (r *SQLiteRepo) Put(ctx context.Context, p *domain.Preference) error {
	if p == nil {
		return errors.New("nil preference")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	created := p.CreatedAt.UTC().Unix()
	if p.CreatedAt.IsZero() {
		created = time.Now().UTC().Unix()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (user_id, hour, minute, timezone, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			hour     = excluded.hour,
			minute   = excluded.minute,
			timezone = excluded.timezone`,
		p.UserID, p.Hour, p.Minute, p.Timezone, created,
	)
	return err
}

// Get returns the stored preference for userID.
func (r *SQLiteRepo) Get(ctx context.Context, userID int64) (*domain.Preference, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT user_id, hour, minute, timezone, created_at
		FROM reminders
		WHERE user_id = ?`,
		userID,
	)
	p, err := scanPreference(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrPreferenceNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Remove deletes the user's row; absent rows are a no-op.
func (r *SQLiteRepo) Remove(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE user_id = ?`, userID)
	return err
}

// ListAll enumerates every stored preference.
func (r *SQLiteRepo) ListAll(ctx context.Context) ([]domain.Preference, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, hour, minute, timezone, created_at
		FROM reminders`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Preference
	for rows.Next() {
		p, err := scanPreference(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func scanPreference(scan func(dest ...any) error) (*domain.Preference, error) {
	var (
		userID    int64
		hour      int
		minute    int
		tz        string
		createdAt int64
	)
	if err := scan(&userID, &hour, &minute, &tz, &createdAt); err != nil {
		return nil, err
	}
	return &domain.Preference{
		UserID:    userID,
		Hour:      hour,
		Minute:    minute,
		Timezone:  tz,
		CreatedAt: time.Unix(createdAt, 0).UTC(),
	}, nil
}
