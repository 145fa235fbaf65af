package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/trackademic-api/internal/ident"
	"github.com/noah-isme/trackademic-api/internal/models"
	"github.com/noah-isme/trackademic-api/internal/repository"
	appErrors "github.com/noah-isme/trackademic-api/pkg/errors"
	"github.com/noah-isme/trackademic-api/pkg/export"
)

// Report formats.
const (
	ReportFormatJSON = "json"
	ReportFormatCSV  = "csv"
	ReportFormatPDF  = "pdf"
)

var reportHeaders = []string{"Subject Code", "Course", "Graded Activities", "Total Percentage", "Final Grade"}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ReportFile is a rendered semester report.
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ReportService computes weighted semester standings from enrollments and grades.
type ReportService struct {
	courses     documentStore
	enrollments documentStore
	grades      documentStore
	csv         csvRenderer
	pdf         pdfRenderer
	logger      *zap.Logger
}

// NewReportService constructs ReportService.
func NewReportService(stores Stores, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ReportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		courses:     stores.Courses,
		enrollments: stores.StudentCourses,
		grades:      stores.StudentGrades,
		csv:         csv,
		pdf:         pdf,
		logger:      logger,
	}
}

// Semester builds the student's report. Each enrolled course's final grade is
// the sum of grade × percentage / 100 over its grades; the overall average is
// the mean final grade across courses with at least one grade.
func (s *ReportService) Semester(ctx context.Context, studentID, semester string) (*models.SemesterReport, error) {
	report := &models.SemesterReport{StudentID: studentID, Semester: semester, Courses: []models.CourseReport{}}

	enrollments, err := s.enrollments.Find(ctx, repository.StudentCourseQuery(models.StudentCourseFilter{
		StudentID: studentID,
		Semester:  semester,
	}), 0)
	if err != nil {
		return nil, s.fail(err, "failed to list student courses")
	}

	index := make(map[string]int)
	codes := make([]string, 0, len(enrollments))
	for _, enrollment := range enrollments {
		code := enrollment.String("subject_code")
		if code == "" {
			continue
		}
		if _, seen := index[code]; seen {
			continue
		}
		name, err := s.courseName(ctx, code, enrollment.String("subject_name"))
		if err != nil {
			return nil, err
		}
		index[code] = len(report.Courses)
		codes = append(codes, code)
		report.Courses = append(report.Courses, models.CourseReport{SubjectCode: code, CourseName: name, Grades: []models.Document{}})
	}
	if len(codes) == 0 {
		return report, nil
	}

	grades, err := s.grades.Find(ctx, repository.GradesForSubjectsQuery(studentID, codes), 0)
	if err != nil {
		return nil, s.fail(err, "failed to list grades")
	}
	for _, grade := range grades {
		i, ok := index[grade.String("subject_code")]
		if !ok {
			continue
		}
		course := &report.Courses[i]
		course.Grades = append(course.Grades, grade)
		value, _ := grade.Float("grade")
		percentage, _ := grade.Float("activity_percentage")
		course.FinalGrade += value * percentage / 100
		course.TotalPercentage += percentage
	}

	var sum float64
	var graded int
	for _, course := range report.Courses {
		if len(course.Grades) > 0 {
			sum += course.FinalGrade
			graded++
		}
	}
	if graded > 0 {
		avg := sum / float64(graded)
		report.OverallAverage = &avg
	}
	return report, nil
}

func (s *ReportService) courseName(ctx context.Context, code, enrolledName string) (string, error) {
	course, err := findOptional(ctx, s.courses, ident.CourseByCode(code))
	if err != nil {
		return "", s.fail(err, "failed to resolve course "+code)
	}
	if title := course.String("title"); title != "" {
		return title, nil
	}
	if enrolledName != "" {
		return enrolledName, nil
	}
	return models.UnknownCourseName, nil
}

// Export renders the semester report as CSV or PDF.
func (s *ReportService) Export(ctx context.Context, studentID, semester, format string) (*ReportFile, error) {
	if format != ReportFormatCSV && format != ReportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported report format %q", format))
	}
	report, err := s.Semester(ctx, studentID, semester)
	if err != nil {
		return nil, err
	}

	data := reportDataset(report)
	base := fmt.Sprintf("semester-report-%s-%s", studentID, semester)
	switch format {
	case ReportFormatCSV:
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, s.fail(err, "failed to render csv report")
		}
		return &ReportFile{Filename: base + ".csv", ContentType: "text/csv", Content: content}, nil
	default:
		title := fmt.Sprintf("Semester %s report for %s", semester, studentID)
		content, err := s.pdf.Render(data, title)
		if err != nil {
			return nil, s.fail(err, "failed to render pdf report")
		}
		return &ReportFile{Filename: base + ".pdf", ContentType: "application/pdf", Content: content}, nil
	}
}

func reportDataset(report *models.SemesterReport) export.Dataset {
	rows := make([]map[string]string, 0, len(report.Courses))
	for _, course := range report.Courses {
		rows = append(rows, map[string]string{
			"Subject Code":      course.SubjectCode,
			"Course":            course.CourseName,
			"Graded Activities": strconv.Itoa(len(course.Grades)),
			"Total Percentage":  formatNumber(course.TotalPercentage),
			"Final Grade":       formatNumber(course.FinalGrade),
		})
	}
	data := export.Dataset{Headers: reportHeaders, Rows: rows}
	if report.OverallAverage != nil {
		data.Footer = []string{"Overall average", formatNumber(*report.OverallAverage)}
	}
	return data
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func (s *ReportService) fail(err error, message string) error {
	s.logger.Error(message, zap.Error(err))
	return appErrors.Internal(err, message)
}
