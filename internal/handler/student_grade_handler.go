package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/trackademic-api/internal/models"
	"github.com/noah-isme/trackademic-api/internal/service"
	"github.com/noah-isme/trackademic-api/pkg/response"
)

type semesterReporter interface {
	Semester(ctx context.Context, studentID, semester string) (*models.SemesterReport, error)
	Export(ctx context.Context, studentID, semester, format string) (*service.ReportFile, error)
}

// StudentGradeHandler serves grades and the per-semester views built on them.
type StudentGradeHandler struct {
	service studentGradeService
	reports semesterReporter
	routes  documentRoutes
}

// NewStudentGradeHandler constructs a student grade handler.
func NewStudentGradeHandler(svc studentGradeService, reports semesterReporter) *StudentGradeHandler {
	return &StudentGradeHandler{
		service: svc,
		reports: reports,
		routes:  documentRoutes{svc: svc, resource: "Grade", param: "id"},
	}
}

// List godoc
// @Summary List student grades
// @Tags Student Grades
// @Produce json
// @Param evaluation_plan_id query string false "Plan ID"
// @Param student_id query string false "Student ID"
// @Param activity_id query string false "Activity ID"
// @Param subject_code query string false "Subject code"
// @Success 200 {array} models.Document
// @Router /api/student-grades [get]
func (h *StudentGradeHandler) List(c *gin.Context) {
	docs, err := h.service.List(c.Request.Context(), models.StudentGradeFilter{
		EvaluationPlanID: c.Query("evaluation_plan_id"),
		StudentID:        c.Query("student_id"),
		ActivityID:       c.Query("activity_id"),
		SubjectCode:      c.Query("subject_code"),
	})
	sendList(c, docs, err)
}

// BySemester godoc
// @Summary Grades for a student's enrolled courses in one semester
// @Tags Student Grades
// @Produce json
// @Param student_id path string true "Student ID"
// @Param semester path string true "Semester"
// @Success 200 {array} models.Document
// @Router /api/student-grades/semester/{student_id}/{semester} [get]
func (h *StudentGradeHandler) BySemester(c *gin.Context) {
	docs, err := h.service.BySemester(c.Request.Context(), c.Param("student_id"), c.Param("semester"))
	sendList(c, docs, err)
}

// SemesterReport godoc
// @Summary Weighted semester report
// @Tags Student Grades
// @Produce json
// @Produce text/csv
// @Produce application/pdf
// @Param student_id path string true "Student ID"
// @Param semester path string true "Semester"
// @Param format query string false "json (default), csv or pdf"
// @Success 200 {object} models.SemesterReport
// @Failure 400 {object} response.ErrorBody
// @Router /api/student-grades/semester/{student_id}/{semester}/report [get]
func (h *StudentGradeHandler) SemesterReport(c *gin.Context) {
	studentID, semester := c.Param("student_id"), c.Param("semester")
	format := strings.ToLower(c.DefaultQuery("format", service.ReportFormatJSON))
	if format == service.ReportFormatJSON {
		report, err := h.reports.Semester(c.Request.Context(), studentID, semester)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, report)
		return
	}

	file, err := h.reports.Export(c.Request.Context(), studentID, semester, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Bytes(c, file.ContentType, file.Filename, file.Content)
}

// Get godoc
// @Summary Get student grade
// @Tags Student Grades
// @Produce json
// @Param id path string true "Grade ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} response.ErrorBody
// @Router /api/student-grades/{id} [get]
func (h *StudentGradeHandler) Get(c *gin.Context) { h.routes.get(c) }

// Create godoc
// @Summary Create student grade
// @Tags Student Grades
// @Accept json
// @Produce json
// @Param payload body models.Document true "Grade document"
// @Success 201 {object} models.Document
// @Router /api/student-grades [post]
func (h *StudentGradeHandler) Create(c *gin.Context) { h.routes.create(c) }

// Update godoc
// @Summary Update student grade
// @Tags Student Grades
// @Accept json
// @Produce json
// @Param id path string true "Grade ID"
// @Param payload body models.Document true "Fields to merge"
// @Success 200 {object} models.Document
// @Failure 404 {object} response.ErrorBody
// @Router /api/student-grades/{id} [put]
func (h *StudentGradeHandler) Update(c *gin.Context) { h.routes.update(c) }

// Delete godoc
// @Summary Delete student grade
// @Tags Student Grades
// @Produce json
// @Param id path string true "Grade ID"
// @Success 200 {object} response.DeleteBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/student-grades/{id} [delete]
func (h *StudentGradeHandler) Delete(c *gin.Context) { h.routes.delete(c) }
