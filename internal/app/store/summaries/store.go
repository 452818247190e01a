// internal/app/store/summaries/store.go
package summaries

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jutionck/enigma-upskilling-platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages the "video_summaries" collection. Records are append-only:
// viewers submit them, admins read them, nothing edits or deletes them.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("video_summaries")}
}

var (
	errEmptyText   = errors.New("summary text is empty")
	errMissingMeta = errors.New("summary is missing author or video fields")
)

// EnsureIndexes creates the video_id index backing the admin review list.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "video_id", Value: 1}},
		Options: options.Index().SetName("idx_summaries_video_id"),
	})
	return err
}

// Create appends a summary. Text must be non-empty after trimming and the
// author/video fields must be populated; submissions are not deduplicated,
// so resubmitting creates a second record.
func (s *Store) Create(ctx context.Context, sum models.Summary) (models.Summary, error) {
	sum.Text = strings.TrimSpace(sum.Text)
	if sum.Text == "" {
		return models.Summary{}, errEmptyText
	}
	if sum.AuthorID.IsZero() || sum.VideoID == "" {
		return models.Summary{}, errMissingMeta
	}

	sum.ID = primitive.NewObjectID()
	sum.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, sum); err != nil {
		return models.Summary{}, err
	}
	return sum, nil
}

// ListByVideo returns all summaries whose video_id matches, in the store's
// natural return order. No pagination: a video's review list is read whole.
func (s *Store) ListByVideo(ctx context.Context, videoID string) ([]models.Summary, error) {
	cur, err := s.c.Find(ctx, bson.M{"video_id": videoID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Summary
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByVideo reports how many summaries exist for a video.
func (s *Store) CountByVideo(ctx context.Context, videoID string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"video_id": videoID})
}
