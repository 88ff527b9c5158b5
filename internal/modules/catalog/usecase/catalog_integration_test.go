package usecase_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	catalogout "mpt/internal/modules/catalog/adapter/out"
	"mpt/internal/modules/catalog/service"
	"mpt/internal/modules/catalog/usecase"
	apperrors "mpt/internal/platform/errors"

	_ "modernc.org/sqlite"
)

const sampleCatalog = `[URL:https://csse1001.example.edu/tutorials]

[17/03/17 Introduction]
Introduction:intro.tut

[24/03/17 GUI Basics]
GUI Layout Example I:gui1.tut : layout1.gif
Event Handling:events.tut
`

func TestShowListGetFindAndReindex(t *testing.T) {
	t.Parallel()
	course := t.TempDir()
	catalogPath := filepath.Join(course, "tutorials.txt")
	dbPath := filepath.Join(course, ".mpt", "mpt.db")
	if err := os.WriteFile(catalogPath, []byte(sampleCatalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	store := catalogout.NewFileCatalogStore(catalogPath)
	projector, err := catalogout.NewSQLiteCatalogProjector(dbPath)
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	uc := usecase.NewInteractor(service.NewCatalogService(store, projector))

	show, err := uc.Show(context.Background())
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if show.SourceURL != "https://csse1001.example.edu/tutorials" {
		t.Fatalf("unexpected source url: %s", show.SourceURL)
	}
	if len(show.Sections) != 2 || show.Sections[1].ExerciseCount != 2 {
		t.Fatalf("unexpected sections: %+v", show.Sections)
	}

	detail, err := uc.GetSection(context.Background(), 2)
	if err != nil {
		t.Fatalf("get section: %v", err)
	}
	if detail.Title != "GUI Basics" || len(detail.Exercises) != 2 {
		t.Fatalf("unexpected section detail: %+v", detail)
	}
	if _, err := uc.GetSection(context.Background(), 9); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	found, err := uc.FindExercise(context.Background(), "gui1.tut")
	if err != nil {
		t.Fatalf("find exercise: %v", err)
	}
	if found.SectionTitle != "GUI Basics" || len(found.Assets) != 1 || found.Assets[0] != "layout1.gif" {
		t.Fatalf("unexpected exercise detail: %+v", found)
	}

	if err := uc.Reindex(context.Background()); err != nil {
		t.Fatalf("reindex: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var sections, exercises int
	if err := db.QueryRow(`SELECT COUNT(*) FROM sections`).Scan(&sections); err != nil {
		t.Fatalf("count sections: %v", err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM exercises`).Scan(&exercises); err != nil {
		t.Fatalf("count exercises: %v", err)
	}
	if sections != 2 || exercises != 3 {
		t.Fatalf("expected 2 sections and 3 exercises projected, got %d/%d", sections, exercises)
	}

	var assets string
	if err := db.QueryRow(`SELECT assets FROM exercises WHERE file = 'gui1.tut'`).Scan(&assets); err != nil {
		t.Fatalf("select assets: %v", err)
	}
	if assets != "layout1.gif" {
		t.Fatalf("unexpected projected assets: %q", assets)
	}
}

func TestLoadSurfacesFormatErrorWithPath(t *testing.T) {
	t.Parallel()
	course := t.TempDir()
	catalogPath := filepath.Join(course, "tutorials.txt")
	if err := os.WriteFile(catalogPath, []byte("orphan line\n"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	store := catalogout.NewFileCatalogStore(catalogPath)
	projector, err := catalogout.NewSQLiteCatalogProjector(filepath.Join(course, ".mpt", "mpt.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	uc := usecase.NewInteractor(service.NewCatalogService(store, projector))

	_, err = uc.ListSections(context.Background())
	if err == nil {
		t.Fatal("expected parse error")
	}
}
