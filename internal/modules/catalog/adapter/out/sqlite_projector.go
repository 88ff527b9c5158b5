package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mpt/internal/modules/catalog/domain"
	catalogout "mpt/internal/modules/catalog/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteCatalogProjector struct {
	db *sql.DB
}

func NewSQLiteCatalogProjector(dbPath string) (catalogout.CatalogIndexProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteCatalogProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteCatalogProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sections (
  ordinal INTEGER PRIMARY KEY,
  date TEXT NOT NULL,
  title TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS exercises (
  section_ordinal INTEGER NOT NULL,
  ordinal INTEGER NOT NULL,
  title TEXT NOT NULL,
  file TEXT NOT NULL,
  assets TEXT,
  PRIMARY KEY (section_ordinal, ordinal)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create catalog tables: %w", err)
	}
	return nil
}

func (s *SQLiteCatalogProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM exercises`); err != nil {
		return fmt.Errorf("reset exercises: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sections`); err != nil {
		return fmt.Errorf("reset sections: %w", err)
	}
	return nil
}

func (s *SQLiteCatalogProjector) UpsertSection(ctx context.Context, ordinal int, section domain.Section) error {
	const sectionStmt = `
INSERT INTO sections (ordinal, date, title) VALUES (?, ?, ?)
ON CONFLICT(ordinal) DO UPDATE SET date=excluded.date, title=excluded.title;
`
	if _, err := s.db.ExecContext(ctx, sectionStmt, ordinal, section.Date, section.Title); err != nil {
		return fmt.Errorf("upsert section: %w", err)
	}

	const exerciseStmt = `
INSERT INTO exercises (section_ordinal, ordinal, title, file, assets) VALUES (?, ?, ?, ?, ?)
ON CONFLICT(section_ordinal, ordinal) DO UPDATE SET
  title=excluded.title,
  file=excluded.file,
  assets=excluded.assets;
`
	for i, exercise := range section.Exercises {
		assets := strings.Join(exercise.Assets, "\n")
		if _, err := s.db.ExecContext(ctx, exerciseStmt, ordinal, i+1, exercise.Title, exercise.File, assets); err != nil {
			return fmt.Errorf("upsert exercise: %w", err)
		}
	}
	return nil
}
