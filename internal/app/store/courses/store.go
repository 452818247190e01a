// internal/app/store/courses/store.go
package courses

import (
	"context"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/jutionck/enigma-upskilling-platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store manages the "course_sections" collection: the catalog of video
// sections shown on the class page.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("course_sections")}
}

// ListSections returns all sections ordered by position.
func (s *Store) ListSections(ctx context.Context) ([]models.CourseSection, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var sections []models.CourseSection
	if err := cur.All(ctx, &sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// FindVideo locates a video by id across all sections. The second return is
// false when no section carries the video.
func (s *Store) FindVideo(ctx context.Context, videoID string) (models.Video, bool, error) {
	var section models.CourseSection
	err := s.c.FindOne(ctx, bson.M{"videos.video_id": videoID}).Decode(&section)
	if err == mongo.ErrNoDocuments {
		return models.Video{}, false, nil
	}
	if err != nil {
		return models.Video{}, false, err
	}
	for _, v := range section.Videos {
		if v.VideoID == videoID {
			return v, true, nil
		}
	}
	return models.Video{}, false, nil
}

// FirstVideo returns the first video of the first section, used as the class
// page default selection. ok=false when the catalog is empty.
func (s *Store) FirstVideo(ctx context.Context) (models.Video, bool, error) {
	sections, err := s.ListSections(ctx)
	if err != nil {
		return models.Video{}, false, err
	}
	for _, sec := range sections {
		if len(sec.Videos) > 0 {
			return sec.Videos[0], true, nil
		}
	}
	return models.Video{}, false, nil
}

// SeedDefault inserts the default catalog if the collection is empty, so a
// fresh deployment has the intro course available immediately.
func (s *Store) SeedDefault(ctx context.Context) error {
	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	now := time.Now().UTC()
	title := "Intro to Cybersecurity"
	section := models.CourseSection{
		ID:       primitive.NewObjectID(),
		Title:    title,
		TitleCI:  text.Fold(title),
		Position: 1,
		Videos: []models.Video{
			{
				VideoID:     "1",
				Title:       "Introduction to Cybersecurity",
				URL:         "https://videos.dyntube.com/iframes/5AXyqbQZUkimLIpPE8CA",
				Description: "Memahami dasar-dasar Cybersecurity.",
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.c.InsertOne(ctx, section)
	return err
}
