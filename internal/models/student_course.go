package models

import (
	"fmt"
	"time"

	"github.com/noah-isme/trackademic-api/internal/ident"
)

// EnrollmentStatusActive is the only status the server writes.
const EnrollmentStatusActive = "active"

// StudentCourse is one student's enrollment in one course for one semester.
// (student_id, subject_code, semester) identifies it in practice; nothing
// enforces uniqueness.
type StudentCourse struct {
	ID             ident.ID   `bson:"_id" json:"_id"`
	StudentID      string     `bson:"student_id" json:"student_id"`
	SubjectCode    string     `bson:"subject_code" json:"subject_code"`
	SubjectName    string     `bson:"subject_name" json:"subject_name"`
	Semester       string     `bson:"semester" json:"semester"`
	ProfessorID    string     `bson:"professor_id" json:"professor_id"`
	ProfessorName  string     `bson:"professor_name" json:"professor_name"`
	EnrollmentDate time.Time  `bson:"enrollment_date" json:"enrollment_date"`
	Status         string     `bson:"status" json:"status"`
	GroupID        string     `bson:"group_id" json:"group_id"`
	Credits        *float64   `bson:"credits,omitempty" json:"credits,omitempty"`
	AutoEnrolled   bool       `bson:"auto_enrolled,omitempty" json:"auto_enrolled,omitempty"`
	CreatedAt      *time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// StudentCourseFilter holds the exact-match filters for listing enrollments.
type StudentCourseFilter struct {
	StudentID   string
	SubjectCode string
	Semester    string
}

// GroupID builds the fixed group identifier for a course offering.
func GroupID(subjectCode, semester string) string {
	return fmt.Sprintf("1-%s-%s", subjectCode, semester)
}
