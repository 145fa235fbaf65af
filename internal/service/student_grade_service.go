package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/trackademic-api/internal/ident"
	"github.com/noah-isme/trackademic-api/internal/models"
	"github.com/noah-isme/trackademic-api/internal/repository"
)

// StudentGradeService manages grades.
type StudentGradeService struct {
	crud        crud
	enrollments documentStore
}

// NewStudentGradeService constructs StudentGradeService.
func NewStudentGradeService(grades, enrollments documentStore, logger *zap.Logger) *StudentGradeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentGradeService{
		crud: crud{
			store:     grades,
			resource:  "Grade",
			plural:    "grades",
			newID:     ident.NewNative,
			nativeIDs: true,
			now:       utcNow,
			logger:    logger,
		},
		enrollments: enrollments,
	}
}

// List returns grades with the enrollment's subject_name attached when one
// exists for the grade's subject_code.
func (s *StudentGradeService) List(ctx context.Context, filter models.StudentGradeFilter) ([]models.Document, error) {
	grades, err := s.crud.list(ctx, repository.StudentGradeQuery(filter))
	if err != nil {
		return nil, err
	}
	for _, grade := range grades {
		if err := s.attachSubjectName(ctx, grade); err != nil {
			return nil, err
		}
	}
	return grades, nil
}

// Get returns one grade, enriched like List.
func (s *StudentGradeService) Get(ctx context.Context, id string) (models.Document, error) {
	grade, err := s.crud.get(ctx, ident.StudentGrade(id), id)
	if err != nil {
		return nil, err
	}
	if err := s.attachSubjectName(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

// attachSubjectName leaves the grade untouched when no enrollment matches;
// unlike plans there is no placeholder.
func (s *StudentGradeService) attachSubjectName(ctx context.Context, grade models.Document) error {
	code := grade.String("subject_code")
	if code == "" {
		return nil
	}
	enrollment, err := findOptional(ctx, s.enrollments, ident.Lookup{Field: "subject_code", ID: ident.FromString(code)})
	if err != nil {
		return s.crud.fail(err, "failed to resolve enrollment "+code)
	}
	if enrollment != nil && enrollment.Has("subject_name") {
		grade["subject_name"] = enrollment["subject_name"]
	}
	return nil
}

// BySemester returns the student's grades for every subject they are enrolled
// in that semester. Without enrollments the grades are not queried at all.
func (s *StudentGradeService) BySemester(ctx context.Context, studentID, semester string) ([]models.Document, error) {
	codes, err := enrolledSubjectCodes(ctx, s.enrollments, studentID, semester)
	if err != nil {
		return nil, s.crud.fail(err, "failed to list student courses")
	}
	if len(codes) == 0 {
		return []models.Document{}, nil
	}
	return s.crud.list(ctx, repository.GradesForSubjectsQuery(studentID, codes))
}

// Create stores a grade under a native identifier unless one is supplied.
func (s *StudentGradeService) Create(ctx context.Context, body models.Document) (models.Document, error) {
	return s.crud.create(ctx, body)
}

// Update merges body into a grade.
func (s *StudentGradeService) Update(ctx context.Context, id string, body models.Document) (models.Document, error) {
	return s.crud.update(ctx, ident.StudentGrade(id), id, body)
}

// Delete removes a grade.
func (s *StudentGradeService) Delete(ctx context.Context, id string) error {
	return s.crud.delete(ctx, ident.StudentGrade(id), id)
}

func enrolledSubjectCodes(ctx context.Context, enrollments documentStore, studentID, semester string) ([]string, error) {
	docs, err := enrollments.Find(ctx, repository.StudentCourseQuery(models.StudentCourseFilter{
		StudentID: studentID,
		Semester:  semester,
	}), 0)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(docs))
	for _, doc := range docs {
		if code := doc.String("subject_code"); code != "" {
			codes = append(codes, code)
		}
	}
	return codes, nil
}
