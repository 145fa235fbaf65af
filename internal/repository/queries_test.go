package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/noah-isme/trackademic-api/internal/models"
)

func TestCourseQuery(t *testing.T) {
	assert.Equal(t, bson.M{}, CourseQuery(models.CourseFilter{}))
	assert.Equal(t, bson.M{
		"code":  bson.M{"$regex": "CS1", "$options": "i"},
		"title": bson.M{"$regex": `C\+\+`, "$options": "i"},
	}, CourseQuery(models.CourseFilter{Code: "CS1", Title: "C++"}))
}

func TestExactMatchQueries(t *testing.T) {
	assert.Equal(t, bson.M{"semester": "2024-1", "created_by": "S1"},
		EvaluationPlanQuery(models.EvaluationPlanFilter{Semester: "2024-1", CreatedBy: "S1"}))
	assert.Equal(t, bson.M{"student_id": "S1", "subject_code": "CS101"},
		StudentCourseQuery(models.StudentCourseFilter{StudentID: "S1", SubjectCode: "CS101"}))
	assert.Equal(t, bson.M{"evaluation_plan_id": "plan1"},
		PlanCommentQuery(models.PlanCommentFilter{EvaluationPlanID: "plan1"}))
	assert.Equal(t, bson.M{"student_id": "S1", "subject_code": "CS101", "semester": "2024-1"},
		EnrollmentQuery("S1", "CS101", "2024-1"))
}

func TestStudentGradeQueryPlanReference(t *testing.T) {
	assert.Equal(t, bson.M{"evaluation_plan_id": "plan1", "activity_id": "act1"},
		StudentGradeQuery(models.StudentGradeFilter{EvaluationPlanID: "plan1", ActivityID: "act1"}))

	oid := primitive.NewObjectID()
	assert.Equal(t, bson.M{"evaluation_plan_id": oid, "student_id": "S1"},
		StudentGradeQuery(models.StudentGradeFilter{EvaluationPlanID: oid.Hex(), StudentID: "S1"}))
}

func TestGradesForSubjectsQuery(t *testing.T) {
	assert.Equal(t, bson.M{
		"student_id":   "S1",
		"subject_code": bson.M{"$in": []string{"CS101", "CS201"}},
	}, GradesForSubjectsQuery("S1", []string{"CS101", "CS201"}))
}
