package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/trackademic-api/internal/ident"
	"github.com/noah-isme/trackademic-api/internal/models"
	"github.com/noah-isme/trackademic-api/internal/repository"
	appErrors "github.com/noah-isme/trackademic-api/pkg/errors"
)

// CourseService manages the course catalog.
type CourseService struct {
	crud crud
}

// NewCourseService constructs CourseService.
func NewCourseService(courses documentStore, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{
		crud: crud{
			store:                courses,
			resource:             "Course",
			plural:               "courses",
			newID:                ident.NewString,
			stampUpdatedOnCreate: true,
			now:                  utcNow,
			logger:               logger,
		},
	}
}

// List returns catalog courses whose title and code contain the filter values.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.Document, error) {
	return s.crud.list(ctx, repository.CourseQuery(filter))
}

// Get looks a course up by its code. When no course carries that code the
// value is tried as a literal _id, which is how a just-created course is
// re-fetched by the identifier the create call returned.
func (s *CourseService) Get(ctx context.Context, code string) (models.Document, error) {
	doc, err := s.crud.get(ctx, ident.CourseByCode(code), code)
	if err == nil || !appErrors.Is(err, appErrors.ErrNotFound) {
		return doc, err
	}
	return s.crud.get(ctx, ident.CourseByKey(code), code)
}

// Create stores any JSON object as a course.
func (s *CourseService) Create(ctx context.Context, body models.Document) (models.Document, error) {
	return s.crud.create(ctx, body)
}

// Update merges body into the course whose _id equals key. Callers passing a
// course code only match when the code is also the stored _id.
func (s *CourseService) Update(ctx context.Context, key string, body models.Document) (models.Document, error) {
	return s.crud.update(ctx, ident.CourseByKey(key), key, body)
}

// Delete removes the course whose _id equals key.
func (s *CourseService) Delete(ctx context.Context, key string) error {
	return s.crud.delete(ctx, ident.CourseByKey(key), key)
}
