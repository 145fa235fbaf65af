package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/noah-isme/trackademic-api/internal/models"
	appErrors "github.com/noah-isme/trackademic-api/pkg/errors"
)

type planFixture struct {
	svc         *EvaluationPlanService
	plans       *memoryStore
	courses     *memoryStore
	enrollments *memoryStore
}

func newPlanFixture() planFixture {
	f := planFixture{
		plans: newMemoryStore(
			models.Document{"_id": "plan1", "subject_code": "CS101", "semester": "2024-1", "created_by": "A1"},
			models.Document{"_id": "plan2", "subject_code": "ENG9", "semester": "2024-1", "created_by": "A1"},
			models.Document{"_id": "plan3", "subject_code": "HIST1", "subject_name": "History", "semester": "2024-2", "created_by": "B2"},
		),
		courses: newMemoryStore(
			models.Document{"_id": "course1", "code": "CS101", "title": "Introduction to Programming", "credits": 4},
		),
		enrollments: newMemoryStore(
			models.Document{"_id": "sc1", "student_id": "A1", "subject_code": "ENG9", "subject_name": "English", "semester": "2024-1"},
		),
	}
	f.svc = NewEvaluationPlanService(f.plans, f.courses, f.enrollments, nil)
	f.svc.crud.now = fixedClock
	return f
}

func TestEvaluationPlanListEnrichesSubjectName(t *testing.T) {
	f := newPlanFixture()

	plans, err := f.svc.List(context.Background(), models.EvaluationPlanFilter{})
	require.NoError(t, err)
	require.Len(t, plans, 3)

	names := map[string]string{}
	for _, plan := range plans {
		names[plan.String("_id")] = plan.String("subject_name")
	}
	assert.Equal(t, "Introduction to Programming", names["plan1"])
	assert.Equal(t, "English", names["plan2"])
	assert.Equal(t, "History", names["plan3"])

	stored, err := f.plans.FindOne(context.Background(), bson.M{"_id": "plan1"})
	require.NoError(t, err)
	assert.False(t, stored.Has("subject_name"))
}

func TestEvaluationPlanListUnknownCourse(t *testing.T) {
	f := newPlanFixture()
	f.plans = newMemoryStore(models.Document{"_id": "p", "subject_code": "ZZZ"})
	f.svc.crud.store = f.plans

	plans, err := f.svc.List(context.Background(), models.EvaluationPlanFilter{})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, models.UnknownCourseName, plans[0].String("subject_name"))
}

func TestEvaluationPlanListFilters(t *testing.T) {
	f := newPlanFixture()

	plans, err := f.svc.List(context.Background(), models.EvaluationPlanFilter{Semester: "2024-2"})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "plan3", plans[0].String("_id"))
}

func TestEvaluationPlanCreateAutoEnrolls(t *testing.T) {
	f := newPlanFixture()
	ctx := context.Background()
	body := models.Document{"subject_code": "CS101", "semester": "2024-2", "created_by": "C3", "activities": []interface{}{}}

	created, err := f.svc.Create(ctx, body)
	require.NoError(t, err)
	assert.Equal(t, true, created["auto_enrolled"])
	assert.NotEmpty(t, created.String("_id"))

	enrollment, err := f.enrollments.FindOne(ctx, bson.M{"student_id": "C3", "subject_code": "CS101", "semester": "2024-2"})
	require.NoError(t, err)
	assert.Equal(t, "Introduction to Programming", enrollment.String("subject_name"))
	assert.Equal(t, "C3", enrollment.String("professor_id"))
	assert.Equal(t, "Student C3", enrollment.String("professor_name"))
	assert.Equal(t, models.EnrollmentStatusActive, enrollment.String("status"))
	assert.Equal(t, "1-CS101-2024-2", enrollment.String("group_id"))
	credits, _ := enrollment.Float("credits")
	assert.Equal(t, 4.0, credits)

	stored, err := f.plans.FindOne(ctx, bson.M{"_id": created.String("_id")})
	require.NoError(t, err)
	assert.False(t, stored.Has("auto_enrolled"))

	again, err := f.svc.Create(ctx, body)
	require.NoError(t, err)
	assert.Equal(t, false, again["auto_enrolled"])
	assert.NotEqual(t, created.String("_id"), again.String("_id"))

	all, err := f.enrollments.Find(ctx, bson.M{"student_id": "C3"}, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Len(t, f.plans.docs, 5)
}

func TestEvaluationPlanCreateUnknownCourseDefaults(t *testing.T) {
	f := newPlanFixture()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, models.Document{"subject_code": "MATH7", "semester": "2024-1", "created_by": "D4"})
	require.NoError(t, err)

	enrollment, err := f.enrollments.FindOne(ctx, bson.M{"student_id": "D4"})
	require.NoError(t, err)
	assert.Equal(t, "MATH7", enrollment.String("subject_name"))
	credits, _ := enrollment.Float("credits")
	assert.Equal(t, float64(defaultCourseCredits), credits)
}

func TestEvaluationPlanCreateProfessorFromAuthor(t *testing.T) {
	f := newPlanFixture()
	ctx := context.Background()
	body := models.Document{
		"subject_code":   "CS101",
		"semester":       "2031-1",
		"created_by":     "S1",
		"professor_id":   "P9",
		"professor_name": "Dr X",
	}

	created, err := f.svc.Create(ctx, body)
	require.NoError(t, err)
	assert.Equal(t, true, created["auto_enrolled"])

	enrollment, err := f.enrollments.FindOne(ctx, bson.M{"student_id": "S1", "semester": "2031-1"})
	require.NoError(t, err)
	assert.Equal(t, "S1", enrollment.String("professor_id"))
	assert.Equal(t, "Student S1", enrollment.String("professor_name"))

	plan, err := f.plans.FindOne(ctx, bson.M{"_id": created.String("_id")})
	require.NoError(t, err)
	assert.Equal(t, "P9", plan.String("professor_id"))
}

func TestEvaluationPlanCreateCopiesCatalogCredits(t *testing.T) {
	cases := []struct {
		name    string
		credits float64
	}{
		{name: "fractional", credits: 3.5},
		{name: "zero", credits: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newPlanFixture()
			ctx := context.Background()
			f.courses = newMemoryStore(models.Document{"_id": "course9", "code": "LAB1", "title": "Lab", "credits": tc.credits})
			f.svc.courses = f.courses

			_, err := f.svc.Create(ctx, models.Document{"subject_code": "LAB1", "semester": "2024-1", "created_by": "E5"})
			require.NoError(t, err)

			enrollment, err := f.enrollments.FindOne(ctx, bson.M{"student_id": "E5"})
			require.NoError(t, err)
			require.True(t, enrollment.Has("credits"))
			credits, ok := enrollment.Float("credits")
			require.True(t, ok)
			assert.Equal(t, tc.credits, credits)
		})
	}
}

func TestEvaluationPlanCreateWithoutAuthorSkipsEnrollment(t *testing.T) {
	f := newPlanFixture()

	created, err := f.svc.Create(context.Background(), models.Document{"subject_code": "CS101"})
	require.NoError(t, err)
	assert.Equal(t, false, created["auto_enrolled"])
	assert.Zero(t, f.enrollments.writes)
}

func TestEvaluationPlanCreateEnrollmentFailureStopsPlan(t *testing.T) {
	f := newPlanFixture()
	f.enrollments.failOn("insert_one", errStoreDown)

	_, err := f.svc.Create(context.Background(), models.Document{"subject_code": "CS101", "semester": "2030-1", "created_by": "E5"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrInternal))
	assert.Zero(t, f.plans.writes)
}

func TestEvaluationPlanGetUpdateDelete(t *testing.T) {
	f := newPlanFixture()
	ctx := context.Background()

	plan, err := f.svc.Get(ctx, "plan1")
	require.NoError(t, err)
	assert.Equal(t, "CS101", plan.String("subject_code"))

	updated, err := f.svc.Update(ctx, "plan1", models.Document{"semester": "2024-3"})
	require.NoError(t, err)
	assert.Equal(t, "2024-3", updated.String("semester"))

	require.NoError(t, f.svc.Delete(ctx, "plan1"))
	_, err = f.svc.Get(ctx, "plan1")
	assert.Equal(t, "Evaluation plan plan1 not found", err.Error())

	f.plans.writes = 0
	_, err = f.svc.Update(ctx, "plan1", models.Document{"semester": "x"})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	assert.Zero(t, f.plans.writes)
}
