package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/jutionck/enigma-upskilling-platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test directory record with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		FullName:  fullName,
		Email:     email,
		EmailCI:   text.Fold(email),
		Role:      role,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateAdmin creates a test admin user.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, models.RoleAdmin)
}

// CreateDisabledUser creates a test user with disabled status.
func (f *Fixtures) CreateDisabledUser(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		FullName:  fullName,
		Email:     email,
		EmailCI:   text.Fold(email),
		Role:      models.RoleUser,
		Status:    "disabled",
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateSummary creates a summary record for the given author and video.
func (f *Fixtures) CreateSummary(ctx context.Context, author models.User, videoID, videoTitle, body string) models.Summary {
	f.t.Helper()

	sum := models.Summary{
		ID:          primitive.NewObjectID(),
		AuthorID:    author.ID,
		AuthorName:  author.FullName,
		AuthorEmail: author.Email,
		VideoID:     videoID,
		VideoTitle:  videoTitle,
		Text:        body,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := f.db.Collection("video_summaries").InsertOne(ctx, sum)
	if err != nil {
		f.t.Fatalf("failed to create test summary: %v", err)
	}

	return sum
}

// CreateCourseSection creates a course section with a single video.
func (f *Fixtures) CreateCourseSection(ctx context.Context, title string, position int, videos ...models.Video) models.CourseSection {
	f.t.Helper()

	now := time.Now().UTC()
	section := models.CourseSection{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		Position:  position,
		Videos:    videos,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("course_sections").InsertOne(ctx, section)
	if err != nil {
		f.t.Fatalf("failed to create test course section: %v", err)
	}

	return section
}
