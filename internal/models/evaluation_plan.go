package models

import (
	"time"

	"github.com/noah-isme/trackademic-api/internal/ident"
)

// UnknownCourseName is shown for plans whose course cannot be resolved.
const UnknownCourseName = "Unknown Course"

// Activity is one weighted component of an evaluation plan. Percentages are
// not required to sum to 100.
type Activity struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Percentage  float64 `bson:"percentage" json:"percentage"`
}

// EvaluationPlan is a grading scheme for a course offering.
type EvaluationPlan struct {
	ID            ident.ID   `bson:"_id" json:"_id"`
	SubjectCode   string     `bson:"subject_code" json:"subject_code"`
	SubjectName   string     `bson:"subject_name,omitempty" json:"subject_name,omitempty"`
	Semester      string     `bson:"semester" json:"semester"`
	CreatedBy     string     `bson:"created_by" json:"created_by"`
	ProfessorID   string     `bson:"professor_id,omitempty" json:"professor_id,omitempty"`
	ProfessorName string     `bson:"professor_name,omitempty" json:"professor_name,omitempty"`
	Activities    []Activity `bson:"activities" json:"activities"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updated_at"`
}

// EvaluationPlanFilter holds the exact-match filters for listing plans.
type EvaluationPlanFilter struct {
	SubjectCode string
	Semester    string
	CreatedBy   string
}
