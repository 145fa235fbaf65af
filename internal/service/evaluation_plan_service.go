package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/trackademic-api/internal/ident"
	"github.com/noah-isme/trackademic-api/internal/models"
	"github.com/noah-isme/trackademic-api/internal/repository"
)

const defaultCourseCredits = 3

// EvaluationPlanService manages grading schemes and the enrollment side
// effect of creating one.
type EvaluationPlanService struct {
	crud        crud
	courses     documentStore
	enrollments documentStore
	logger      *zap.Logger
}

// NewEvaluationPlanService constructs EvaluationPlanService.
func NewEvaluationPlanService(plans, courses, enrollments documentStore, logger *zap.Logger) *EvaluationPlanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationPlanService{
		crud: crud{
			store:                plans,
			resource:             "Evaluation plan",
			plural:               "evaluation plans",
			newID:                ident.NewString,
			stampUpdatedOnCreate: true,
			now:                  utcNow,
			logger:               logger,
		},
		courses:     courses,
		enrollments: enrollments,
		logger:      logger,
	}
}

// List returns plans with subject_name resolved from the catalog, then the
// enrollments, then the plan itself, then the placeholder. The resolved name
// is never written back.
func (s *EvaluationPlanService) List(ctx context.Context, filter models.EvaluationPlanFilter) ([]models.Document, error) {
	plans, err := s.crud.list(ctx, repository.EvaluationPlanQuery(filter))
	if err != nil {
		return nil, err
	}
	for _, plan := range plans {
		code := plan.String("subject_code")
		if code == "" {
			continue
		}
		name, err := s.resolveSubjectName(ctx, code)
		if err != nil {
			return nil, err
		}
		switch {
		case name != "":
			plan["subject_name"] = name
		case plan.String("subject_name") == "":
			plan["subject_name"] = models.UnknownCourseName
		}
	}
	return plans, nil
}

func (s *EvaluationPlanService) resolveSubjectName(ctx context.Context, code string) (string, error) {
	course, err := findOptional(ctx, s.courses, ident.CourseByCode(code))
	if err != nil {
		return "", s.crud.fail(err, "failed to resolve course "+code)
	}
	if title := course.String("title"); title != "" {
		return title, nil
	}

	enrollment, err := findOptional(ctx, s.enrollments, ident.Lookup{Field: "subject_code", ID: ident.FromString(code)})
	if err != nil {
		return "", s.crud.fail(err, "failed to resolve enrollment "+code)
	}
	return enrollment.String("subject_name"), nil
}

// Get returns one plan by its identifier in either form.
func (s *EvaluationPlanService) Get(ctx context.Context, id string) (models.Document, error) {
	return s.crud.get(ctx, ident.EvaluationPlan(id), id)
}

// Create enrolls the plan's author in the course when they are not already
// enrolled for that semester, then stores the plan. The two writes are
// independent: a failed plan insert leaves the enrollment in place. The
// returned document carries auto_enrolled, which is not stored.
func (s *EvaluationPlanService) Create(ctx context.Context, body models.Document) (models.Document, error) {
	autoEnrolled, err := s.ensureEnrollment(ctx, body)
	if err != nil {
		return nil, err
	}

	plan, err := s.crud.create(ctx, body)
	if err != nil {
		return nil, err
	}
	out := plan.Clone()
	out["auto_enrolled"] = autoEnrolled
	return out, nil
}

// ensureEnrollment checks and inserts without any atomicity, so concurrent
// plan creations for the same triple may both enroll.
func (s *EvaluationPlanService) ensureEnrollment(ctx context.Context, plan models.Document) (bool, error) {
	studentID := plan.String("created_by")
	code := plan.String("subject_code")
	semester := plan.String("semester")
	if studentID == "" || code == "" || semester == "" {
		return false, nil
	}

	_, err := s.enrollments.FindOne(ctx, repository.EnrollmentQuery(studentID, code, semester))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, s.crud.fail(err, "failed to check enrollment")
	}

	course, err := findOptional(ctx, s.courses, ident.CourseByCode(code))
	if err != nil {
		return false, s.crud.fail(err, "failed to resolve course "+code)
	}

	credits := float64(defaultCourseCredits)
	if c, ok := course.Float("credits"); ok {
		credits = c
	}
	subjectName := course.String("title")
	if subjectName == "" {
		subjectName = plan.String("subject_name")
	}
	if subjectName == "" {
		subjectName = code
	}
	now := s.crud.now()
	enrollment := models.StudentCourse{
		ID:             ident.NewNative(),
		StudentID:      studentID,
		SubjectCode:    code,
		SubjectName:    subjectName,
		Semester:       semester,
		ProfessorID:    studentID,
		ProfessorName:  fmt.Sprintf("Student %s", studentID),
		EnrollmentDate: now,
		Status:         models.EnrollmentStatusActive,
		GroupID:        models.GroupID(code, semester),
		Credits:        &credits,
		AutoEnrolled:   true,
		CreatedAt:      &now,
	}
	if err := s.enrollments.InsertOne(ctx, enrollment); err != nil {
		return false, s.crud.fail(err, "failed to auto-enroll student")
	}

	s.logger.Info("student auto-enrolled",
		zap.String("student_id", studentID),
		zap.String("subject_code", code),
		zap.String("semester", semester),
		zap.String("enrollment_id", enrollment.ID.String()),
	)
	return true, nil
}

// Update merges body into a plan.
func (s *EvaluationPlanService) Update(ctx context.Context, id string, body models.Document) (models.Document, error) {
	return s.crud.update(ctx, ident.EvaluationPlan(id), id, body)
}

// Delete removes a plan. Grades and comments referencing it are kept.
func (s *EvaluationPlanService) Delete(ctx context.Context, id string) error {
	return s.crud.delete(ctx, ident.EvaluationPlan(id), id)
}

// findOptional returns a nil Document when nothing matches.
func findOptional(ctx context.Context, store documentStore, lookup ident.Lookup) (models.Document, error) {
	doc, err := store.FindOne(ctx, lookup.Filter())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return doc, err
}
