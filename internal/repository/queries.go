package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/noah-isme/trackademic-api/internal/ident"
	"github.com/noah-isme/trackademic-api/internal/models"
)

// CourseQuery matches title and code as case-insensitive substrings. The
// input is quoted so characters like "+" in "C++" match literally.
func CourseQuery(filter models.CourseFilter) bson.M {
	query := bson.M{}
	if filter.Title != "" {
		query["title"] = containsFold(filter.Title)
	}
	if filter.Code != "" {
		query["code"] = containsFold(filter.Code)
	}
	return query
}

// EvaluationPlanQuery builds the exact-match plan filter.
func EvaluationPlanQuery(filter models.EvaluationPlanFilter) bson.M {
	query := bson.M{}
	setIf(query, "subject_code", filter.SubjectCode)
	setIf(query, "semester", filter.Semester)
	setIf(query, "created_by", filter.CreatedBy)
	return query
}

// StudentCourseQuery builds the exact-match enrollment filter.
func StudentCourseQuery(filter models.StudentCourseFilter) bson.M {
	query := bson.M{}
	setIf(query, "student_id", filter.StudentID)
	setIf(query, "subject_code", filter.SubjectCode)
	setIf(query, "semester", filter.Semester)
	return query
}

// EnrollmentQuery matches one enrollment triple.
func EnrollmentQuery(studentID, subjectCode, semester string) bson.M {
	return bson.M{"student_id": studentID, "subject_code": subjectCode, "semester": semester}
}

// StudentGradeQuery builds the exact-match grade filter. The plan reference
// follows the plan identifier rule: ObjectID-shaped values are matched as
// native identifiers, anything else literally.
func StudentGradeQuery(filter models.StudentGradeFilter) bson.M {
	query := bson.M{}
	if filter.EvaluationPlanID != "" {
		query["evaluation_plan_id"] = ident.Reference(filter.EvaluationPlanID)
	}
	setIf(query, "student_id", filter.StudentID)
	setIf(query, "activity_id", filter.ActivityID)
	setIf(query, "subject_code", filter.SubjectCode)
	return query
}

// GradesForSubjectsQuery matches a student's grades across subject codes.
func GradesForSubjectsQuery(studentID string, subjectCodes []string) bson.M {
	return bson.M{"student_id": studentID, "subject_code": bson.M{"$in": subjectCodes}}
}

// PlanCommentQuery builds the plan comment filter.
func PlanCommentQuery(filter models.PlanCommentFilter) bson.M {
	query := bson.M{}
	setIf(query, "evaluation_plan_id", filter.EvaluationPlanID)
	return query
}

func containsFold(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}

func setIf(query bson.M, field, value string) {
	if value != "" {
		query[field] = value
	}
}
