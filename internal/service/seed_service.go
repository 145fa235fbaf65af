package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/noah-isme/trackademic-api/internal/ident"
	"github.com/noah-isme/trackademic-api/internal/models"
	appErrors "github.com/noah-isme/trackademic-api/pkg/errors"
)

const (
	// DemoStudentID owns the demo dataset.
	DemoStudentID = "A00377013"
	// DefaultSemester is the semester demo data and bootstrapped enrollments use.
	DefaultSemester = "2024-1"

	bootstrapCourseLimit = 3
)

// InitializeStudentRequest bootstraps enrollments for a student.
type InitializeStudentRequest struct {
	StudentCode string `json:"student_code" validate:"required"`
}

// InitializeStudentResult reports what the bootstrap did.
type InitializeStudentResult struct {
	Message      string `json:"message"`
	Action       string `json:"action,omitempty"`
	CoursesAdded int    `json:"courses_added,omitempty"`
}

// SeedResult confirms a demo reset.
type SeedResult struct {
	Message string `json:"message"`
}

// SeedService resets demo data and bootstraps new students. Neither
// operation cleans up after a partial failure.
type SeedService struct {
	stores    Stores
	validator *validator.Validate
	logger    *zap.Logger
	now       clock
}

// NewSeedService constructs SeedService.
func NewSeedService(stores Stores, validate *validator.Validate, logger *zap.Logger) *SeedService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{stores: stores, validator: validate, logger: logger, now: utcNow}
}

// Seed empties all five collections and writes the fixed demo dataset.
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	collections := []struct {
		name  string
		store documentStore
	}{
		{"courses", s.stores.Courses},
		{"evaluation plans", s.stores.EvaluationPlans},
		{"student courses", s.stores.StudentCourses},
		{"student grades", s.stores.StudentGrades},
		{"plan comments", s.stores.PlanComments},
	}
	for _, coll := range collections {
		removed, err := coll.store.DeleteAll(ctx)
		if err != nil {
			return nil, s.fail(err, "failed to clear "+coll.name)
		}
		s.logger.Info("collection cleared", zap.String("collection", coll.name), zap.Int64("removed", removed))
	}

	data := demoDataset(s.now())
	inserts := []struct {
		name  string
		store documentStore
		docs  []interface{}
	}{
		{"courses", s.stores.Courses, data.courses},
		{"evaluation plans", s.stores.EvaluationPlans, data.plans},
		{"student courses", s.stores.StudentCourses, data.enrollments},
		{"student grades", s.stores.StudentGrades, data.grades},
	}
	for _, step := range inserts {
		if err := step.store.InsertMany(ctx, step.docs); err != nil {
			return nil, s.fail(err, "failed to seed "+step.name)
		}
	}

	s.logger.Info("demo data seeded", zap.String("student_id", DemoStudentID))
	return &SeedResult{Message: fmt.Sprintf("Demo data has been seeded for student %s", DemoStudentID)}, nil
}

// InitializeStudent enrolls a student without enrollments in up to three
// catalog courses. An empty catalog is first filled with two default courses.
func (s *SeedService) InitializeStudent(ctx context.Context, req InitializeStudentRequest) (*InitializeStudentResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Student code is required")
	}
	code := req.StudentCode

	existing, err := findOptional(ctx, s.stores.StudentCourses, ident.Lookup{Field: "student_id", ID: ident.FromString(code)})
	if err != nil {
		return nil, s.fail(err, "failed to check student courses")
	}
	if existing != nil {
		return &InitializeStudentResult{Message: fmt.Sprintf("Student %s already has data", code), Action: "none"}, nil
	}

	catalog, err := s.stores.Courses.Find(ctx, bson.M{}, bootstrapCourseLimit)
	if err != nil {
		return nil, s.fail(err, "failed to list courses")
	}
	if len(catalog) == 0 {
		defaults := defaultCourses(code)
		docs := make([]interface{}, 0, len(defaults))
		for _, course := range defaults {
			docs = append(docs, course)
			catalog = append(catalog, models.Document{"code": course.Code, "title": course.Title})
		}
		if err := s.stores.Courses.InsertMany(ctx, docs); err != nil {
			return nil, s.fail(err, "failed to create default courses")
		}
	}

	now := s.now()
	enrollments := make([]interface{}, 0, len(catalog))
	for i, course := range catalog {
		subjectCode := course.String("code")
		enrollments = append(enrollments, models.StudentCourse{
			ID:             ident.FromString(fmt.Sprintf("sc_%d_%s", i, code)),
			StudentID:      code,
			SubjectCode:    subjectCode,
			SubjectName:    course.String("title"),
			Semester:       DefaultSemester,
			ProfessorID:    fmt.Sprintf("100%d", i+1),
			ProfessorName:  "Default Professor",
			EnrollmentDate: now,
			Status:         models.EnrollmentStatusActive,
			GroupID:        models.GroupID(subjectCode, DefaultSemester),
			CreatedAt:      &now,
		})
	}
	if err := s.stores.StudentCourses.InsertMany(ctx, enrollments); err != nil {
		return nil, s.fail(err, "failed to create student courses")
	}

	s.logger.Info("student initialized", zap.String("student_id", code), zap.Int("courses_added", len(enrollments)))
	return &InitializeStudentResult{
		Message:      fmt.Sprintf("Initial data created for student %s", code),
		CoursesAdded: len(enrollments),
	}, nil
}

func (s *SeedService) fail(err error, message string) error {
	s.logger.Error(message, zap.Error(err))
	return appErrors.Internal(err, message)
}

func defaultCourses(studentCode string) []models.Course {
	return []models.Course{
		{ID: ident.FromString("course_default_1_" + studentCode), Code: "CS101", Title: "Introduction to Programming", Credits: 3},
		{ID: ident.FromString("course_default_2_" + studentCode), Code: "CS201", Title: "Data Structures", Credits: 4},
	}
}

type dataset struct {
	courses     []interface{}
	plans       []interface{}
	enrollments []interface{}
	grades      []interface{}
}

func demoDataset(now time.Time) dataset {
	enrollment := func(id, code, name, professorID, professorName string) models.StudentCourse {
		return models.StudentCourse{
			ID:             ident.FromString(id),
			StudentID:      DemoStudentID,
			SubjectCode:    code,
			SubjectName:    name,
			Semester:       DefaultSemester,
			ProfessorID:    professorID,
			ProfessorName:  professorName,
			EnrollmentDate: now,
			Status:         models.EnrollmentStatusActive,
			GroupID:        models.GroupID(code, DefaultSemester),
			CreatedAt:      &now,
		}
	}
	grade := func(id, code, planID, activityID, activityName string, value, percentage float64) models.StudentGrade {
		return models.StudentGrade{
			ID:                 ident.FromString(id),
			StudentID:          DemoStudentID,
			SubjectCode:        code,
			EvaluationPlanID:   planID,
			ActivityID:         activityID,
			ActivityName:       activityName,
			Grade:              value,
			ActivityPercentage: percentage,
			Semester:           DefaultSemester,
			CreatedAt:          now,
		}
	}

	return dataset{
		courses: []interface{}{
			models.Course{ID: ident.FromString("course1"), Code: "CS101", Title: "Introduction to Programming", Credits: 3, CreatedAt: &now, UpdatedAt: &now},
			models.Course{ID: ident.FromString("course2"), Code: "CS201", Title: "Data Structures", Credits: 4, CreatedAt: &now, UpdatedAt: &now},
		},
		plans: []interface{}{
			models.EvaluationPlan{
				ID:          ident.FromString("plan1"),
				SubjectCode: "CS101",
				Semester:    DefaultSemester,
				CreatedBy:   DemoStudentID,
				CreatedAt:   now,
				UpdatedAt:   now,
				Activities: []models.Activity{
					{ID: "act1", Name: "Midterm Exam", Description: "Written exam", Percentage: 30},
					{ID: "act2", Name: "Final Project", Description: "Group project", Percentage: 40},
					{ID: "act3", Name: "Assignments", Description: "Weekly homework", Percentage: 30},
				},
			},
			models.EvaluationPlan{
				ID:          ident.FromString("plan2"),
				SubjectCode: "CS201",
				Semester:    DefaultSemester,
				CreatedBy:   DemoStudentID,
				CreatedAt:   now,
				UpdatedAt:   now,
				Activities: []models.Activity{
					{ID: "act4", Name: "Quiz 1", Description: "First quiz", Percentage: 15},
					{ID: "act5", Name: "Quiz 2", Description: "Second quiz", Percentage: 15},
					{ID: "act6", Name: "Midterm Exam", Description: "Written exam", Percentage: 30},
					{ID: "act7", Name: "Final Exam", Description: "Comprehensive exam", Percentage: 40},
				},
			},
		},
		enrollments: []interface{}{
			enrollment("sc1", "CS101", "Introduction to Programming", "1001", "John Doe"),
			enrollment("sc2", "CS201", "Data Structures", "1002", "Jane Smith"),
		},
		grades: []interface{}{
			grade("grade1", "CS101", "plan1", "act1", "Midterm Exam", 4.2, 30),
			grade("grade2", "CS101", "plan1", "act3", "Assignments", 4.5, 30),
			grade("grade3", "CS201", "plan2", "act4", "Quiz 1", 3.8, 15),
		},
	}
}
