package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/trackademic-api/internal/ident"
	"github.com/noah-isme/trackademic-api/internal/models"
	"github.com/noah-isme/trackademic-api/internal/repository"
)

// StudentCourseService manages enrollments. Path values are resolved as a
// native _id when ObjectID-shaped and as a subject_code otherwise.
type StudentCourseService struct {
	crud crud
}

// NewStudentCourseService constructs StudentCourseService.
func NewStudentCourseService(enrollments documentStore, logger *zap.Logger) *StudentCourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentCourseService{crud: crud{
		store:     enrollments,
		resource:  "Student course",
		plural:    "student courses",
		newID:     ident.NewNative,
		nativeIDs: true,
		now:       utcNow,
		logger:    logger,
	}}
}

// List returns enrollments matching the filter exactly.
func (s *StudentCourseService) List(ctx context.Context, filter models.StudentCourseFilter) ([]models.Document, error) {
	return s.crud.list(ctx, repository.StudentCourseQuery(filter))
}

// Get returns the first enrollment matching code.
func (s *StudentCourseService) Get(ctx context.Context, code string) (models.Document, error) {
	return s.crud.get(ctx, ident.StudentCourse(code), code)
}

// Create stores an enrollment.
func (s *StudentCourseService) Create(ctx context.Context, body models.Document) (models.Document, error) {
	return s.crud.create(ctx, body)
}

// Update merges body into the first enrollment matching code.
func (s *StudentCourseService) Update(ctx context.Context, code string, body models.Document) (models.Document, error) {
	return s.crud.update(ctx, ident.StudentCourse(code), code, body)
}

// Delete removes the first enrollment matching code.
func (s *StudentCourseService) Delete(ctx context.Context, code string) error {
	return s.crud.delete(ctx, ident.StudentCourse(code), code)
}
