// internal/domain/models/course.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video is a single course video inside a section. The URL is an embeddable
// player URL (e.g. a dyntube iframe source) rendered in a sandboxed iframe.
type Video struct {
	VideoID     string `bson:"video_id" json:"video_id"`
	Title       string `bson:"title" json:"title"`
	URL         string `bson:"url" json:"url"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// CourseSection groups videos under a collapsible heading on the class page.
type CourseSection struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	TitleCI  string             `bson:"title_ci" json:"title_ci"` // lowercase, diacritics-stripped
	Position int                `bson:"position" json:"position"`
	Videos   []Video            `bson:"videos" json:"videos"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
