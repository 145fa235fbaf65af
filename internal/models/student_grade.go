package models

import (
	"time"

	"github.com/noah-isme/trackademic-api/internal/ident"
)

// StudentGrade is one student's grade on one activity of one plan. The plan
// and activity references are never checked.
type StudentGrade struct {
	ID                 ident.ID   `bson:"_id" json:"_id"`
	StudentID          string     `bson:"student_id" json:"student_id"`
	SubjectCode        string     `bson:"subject_code" json:"subject_code"`
	EvaluationPlanID   string     `bson:"evaluation_plan_id" json:"evaluation_plan_id"`
	ActivityID         string     `bson:"activity_id" json:"activity_id"`
	ActivityName       string     `bson:"activity_name" json:"activity_name"`
	Grade              float64    `bson:"grade" json:"grade"`
	ActivityPercentage float64    `bson:"activity_percentage" json:"activity_percentage"`
	Semester           string     `bson:"semester" json:"semester"`
	CreatedAt          time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt          *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// StudentGradeFilter holds the exact-match filters for listing grades.
type StudentGradeFilter struct {
	EvaluationPlanID string
	StudentID        string
	ActivityID       string
	SubjectCode      string
}
