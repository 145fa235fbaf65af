package models

// CourseReport aggregates one enrolled course's grades for a semester.
type CourseReport struct {
	SubjectCode     string     `json:"subject_code"`
	CourseName      string     `json:"course_name"`
	Grades          []Document `json:"grades"`
	FinalGrade      float64    `json:"final_grade"`
	TotalPercentage float64    `json:"total_percentage"`
}

// SemesterReport summarises a student's semester. OverallAverage is nil when
// no course has a grade yet.
type SemesterReport struct {
	StudentID      string         `json:"student_id"`
	Semester       string         `json:"semester"`
	Courses        []CourseReport `json:"courses"`
	OverallAverage *float64       `json:"overall_average"`
}
