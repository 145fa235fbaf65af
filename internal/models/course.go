package models

import (
	"time"

	"github.com/noah-isme/trackademic-api/internal/ident"
)

// Course is a catalog entry, independent of any student.
type Course struct {
	ID            ident.ID   `bson:"_id" json:"_id"`
	Code          string     `bson:"code" json:"code"`
	Title         string     `bson:"title" json:"title"`
	Credits       int        `bson:"credits" json:"credits"`
	Description   string     `bson:"description,omitempty" json:"description,omitempty"`
	Department    string     `bson:"department,omitempty" json:"department,omitempty"`
	Prerequisites []string   `bson:"prerequisites,omitempty" json:"prerequisites,omitempty"`
	CreatedAt     *time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// CourseFilter holds the case-insensitive substring filters for listing.
type CourseFilter struct {
	Title string
	Code  string
}
