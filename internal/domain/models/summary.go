// internal/domain/models/summary.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Summary is a text summary a viewer submitted for a course video.
//
// Author fields are denormalized from the session at submission time so the
// admin review list renders without joining back to users. Summaries are
// append-only: never updated or deleted by this application.
type Summary struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID       primitive.ObjectID `bson:"author_id" json:"author_id"`
	AuthorName     string             `bson:"author_name" json:"author_name"`
	AuthorEmail    string             `bson:"author_email" json:"author_email"`
	AuthorPhotoURL string             `bson:"author_photo_url,omitempty" json:"author_photo_url,omitempty"`

	VideoID    string `bson:"video_id" json:"video_id"`
	VideoTitle string `bson:"video_title" json:"video_title"`
	Text       string `bson:"text" json:"text"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
