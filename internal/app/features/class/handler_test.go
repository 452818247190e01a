package class_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jutionck/enigma-upskilling-platform/internal/app/features/class"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/store/courses"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/store/summaries"
	"github.com/jutionck/enigma-upskilling-platform/internal/domain/models"
	"github.com/jutionck/enigma-upskilling-platform/internal/testutil"
	"go.uber.org/zap"
)

type testEnv struct {
	handler   *class.Handler
	fixtures  *testutil.Fixtures
	summaries *summaries.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return &testEnv{
		handler:   class.NewHandler(courses.New(db), summaries.New(db), zap.NewNop()),
		fixtures:  testutil.NewFixtures(t, db),
		summaries: summaries.New(db),
	}
}

func submitForm(videoID, text string) *http.Request {
	form := url.Values{}
	form.Set("video", videoID)
	form.Set("text", text)
	req := httptest.NewRequest("POST", "/class/summaries", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestServeClass_EmptyCatalog_RedirectsToDashboard(t *testing.T) {
	env := newTestEnv(t)

	req := testutil.NewAuthenticatedRequest("GET", "/class", testutil.MemberUser())
	rec := httptest.NewRecorder()

	env.handler.ServeClass(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
	}
}

func TestServeClass_UnknownVideo_RedirectsToDashboard(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	env.fixtures.CreateCourseSection(ctx, "Intro", 1,
		models.Video{VideoID: "1", Title: "One", URL: "https://example.com/1"})

	req := testutil.NewAuthenticatedRequest("GET", "/class?video=missing", testutil.MemberUser())
	rec := httptest.NewRecorder()

	env.handler.ServeClass(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
}

func TestServeSubmitSummary_EmptyText_WritesNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	env.fixtures.CreateCourseSection(ctx, "Intro", 1,
		models.Video{VideoID: "1", Title: "One", URL: "https://example.com/1"})

	for _, body := range []string{"", "   ", "\n\t"} {
		req := testutil.WithUser(submitForm("1", body), testutil.MemberUser())
		rec := httptest.NewRecorder()

		env.handler.ServeSubmitSummary(rec, req)

		if rec.Code != http.StatusSeeOther {
			t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
		}
		if loc := rec.Header().Get("Location"); !strings.Contains(loc, "empty_summary") {
			t.Errorf("Location = %q, want to contain 'empty_summary'", loc)
		}
	}

	n, err := env.summaries.CountByVideo(ctx, "1")
	if err != nil {
		t.Fatalf("CountByVideo failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no records after rejected submissions, got %d", n)
	}
}

func TestServeSubmitSummary_AppendsRecord(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	env.fixtures.CreateCourseSection(ctx, "Intro", 1,
		models.Video{VideoID: "1", Title: "One", URL: "https://example.com/1"},
		models.Video{VideoID: "2", Title: "Two", URL: "https://example.com/2"})

	member := testutil.MemberUser()
	req := testutil.WithUser(submitForm("2", "Great overview of the topic."), member)
	rec := httptest.NewRecorder()

	env.handler.ServeSubmitSummary(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.Contains(loc, "submitted=1") {
		t.Errorf("Location = %q, want to contain 'submitted=1'", loc)
	}

	got, err := env.summaries.ListByVideo(ctx, "2")
	if err != nil {
		t.Fatalf("ListByVideo failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(got))
	}
	if got[0].VideoID != "2" {
		t.Errorf("record video_id = %q, want 2", got[0].VideoID)
	}
	if got[0].AuthorEmail != member.Email {
		t.Errorf("record author = %q, want %q", got[0].AuthorEmail, member.Email)
	}
	if got[0].VideoTitle != "Two" {
		t.Errorf("record video title = %q, want Two", got[0].VideoTitle)
	}
}

func TestServeSubmitSummary_StripsMarkup(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	env.fixtures.CreateCourseSection(ctx, "Intro", 1,
		models.Video{VideoID: "1", Title: "One", URL: "https://example.com/1"})

	req := testutil.WithUser(submitForm("1", `<script>alert(1)</script>useful notes`), testutil.MemberUser())
	rec := httptest.NewRecorder()

	env.handler.ServeSubmitSummary(rec, req)

	got, err := env.summaries.ListByVideo(ctx, "1")
	if err != nil {
		t.Fatalf("ListByVideo failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if strings.Contains(got[0].Text, "<script>") {
		t.Errorf("stored text contains markup: %q", got[0].Text)
	}
	if !strings.Contains(got[0].Text, "useful notes") {
		t.Errorf("stored text lost content: %q", got[0].Text)
	}
}

func TestServeSubmitSummary_UnknownVideo_RedirectsToDashboard(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	req := testutil.WithUser(submitForm("ghost", "text about nothing"), testutil.MemberUser())
	rec := httptest.NewRecorder()

	env.handler.ServeSubmitSummary(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
	}

	n, err := env.summaries.CountByVideo(ctx, "ghost")
	if err != nil {
		t.Fatalf("CountByVideo failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no records for unknown video, got %d", n)
	}
}
