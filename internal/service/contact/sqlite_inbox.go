package contact

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/zhouzirui/folio/backend/internal/model/contact"
)

const inboxSchema = `
CREATE TABLE IF NOT EXISTS contact_submissions (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    subject TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);`

type sqliteInbox struct {
	db *sql.DB
}

// NewSQLiteInbox opens (or creates) a SQLite-backed inbox at path.
func NewSQLiteInbox(path string) (Inbox, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite inbox: %w", err)
	}

	if _, err := db.Exec(inboxSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create inbox schema: %w", err)
	}

	return &sqliteInbox{db: db}, nil
}

func (s *sqliteInbox) Save(ctx context.Context, submission contact.Submission) error {
	query := `
        INSERT INTO contact_submissions (id, name, email, subject, message, created_at)
        VALUES (?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		submission.ID,
		submission.Name,
		submission.Email,
		submission.Subject,
		submission.Message,
		submission.CreatedAt,
	)
	return err
}

func (s *sqliteInbox) List(ctx context.Context, limit int) ([]contact.Submission, error) {
	query := `
        SELECT id, name, email, subject, message, created_at
        FROM contact_submissions
        ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []contact.Submission
	for rows.Next() {
		var sub contact.Submission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Subject, &sub.Message, &sub.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (s *sqliteInbox) Close() error {
	return s.db.Close()
}
