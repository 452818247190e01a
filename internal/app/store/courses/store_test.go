package courses_test

import (
	"testing"

	"github.com/jutionck/enigma-upskilling-platform/internal/app/store/courses"
	"github.com/jutionck/enigma-upskilling-platform/internal/domain/models"
	"github.com/jutionck/enigma-upskilling-platform/internal/testutil"
)

func TestSeedDefault_PopulatesEmptyCatalog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := courses.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.SeedDefault(ctx); err != nil {
		t.Fatalf("SeedDefault failed: %v", err)
	}

	sections, err := store.ListSections(ctx)
	if err != nil {
		t.Fatalf("ListSections failed: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("expected 1 seeded section, got %d", len(sections))
	}
	if sections[0].Title != "Intro to Cybersecurity" {
		t.Errorf("unexpected section title %q", sections[0].Title)
	}
	if len(sections[0].Videos) != 1 || sections[0].Videos[0].VideoID != "1" {
		t.Errorf("unexpected seeded videos: %+v", sections[0].Videos)
	}

	// Seeding again must not duplicate the catalog.
	if err := store.SeedDefault(ctx); err != nil {
		t.Fatalf("second SeedDefault failed: %v", err)
	}
	sections, err = store.ListSections(ctx)
	if err != nil {
		t.Fatalf("ListSections failed: %v", err)
	}
	if len(sections) != 1 {
		t.Errorf("expected seed to be idempotent, got %d sections", len(sections))
	}
}

func TestListSections_OrderedByPosition(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	store := courses.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateCourseSection(ctx, "Second", 2, models.Video{VideoID: "b", Title: "B", URL: "https://example.com/b"})
	fx.CreateCourseSection(ctx, "First", 1, models.Video{VideoID: "a", Title: "A", URL: "https://example.com/a"})

	sections, err := store.ListSections(ctx)
	if err != nil {
		t.Fatalf("ListSections failed: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "First" || sections[1].Title != "Second" {
		t.Errorf("sections out of order: %q, %q", sections[0].Title, sections[1].Title)
	}
}

func TestFindVideo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	store := courses.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateCourseSection(ctx, "Intro", 1,
		models.Video{VideoID: "1", Title: "One", URL: "https://example.com/1"},
		models.Video{VideoID: "2", Title: "Two", URL: "https://example.com/2"},
	)

	v, ok, err := store.FindVideo(ctx, "2")
	if err != nil {
		t.Fatalf("FindVideo failed: %v", err)
	}
	if !ok {
		t.Fatal("expected video 2 to be found")
	}
	if v.Title != "Two" {
		t.Errorf("unexpected video %+v", v)
	}

	_, ok, err = store.FindVideo(ctx, "missing")
	if err != nil {
		t.Fatalf("FindVideo failed: %v", err)
	}
	if ok {
		t.Error("expected missing video to report ok=false")
	}
}

func TestFirstVideo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	store := courses.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, ok, err := store.FirstVideo(ctx)
	if err != nil {
		t.Fatalf("FirstVideo failed: %v", err)
	}
	if ok {
		t.Error("expected ok=false for empty catalog")
	}

	fx.CreateCourseSection(ctx, "Later", 5, models.Video{VideoID: "z", Title: "Z", URL: "https://example.com/z"})
	fx.CreateCourseSection(ctx, "Earlier", 1, models.Video{VideoID: "a", Title: "A", URL: "https://example.com/a"})

	v, ok, err := store.FirstVideo(ctx)
	if err != nil {
		t.Fatalf("FirstVideo failed: %v", err)
	}
	if !ok || v.VideoID != "a" {
		t.Errorf("expected first video of first section, got %+v ok=%v", v, ok)
	}
}
