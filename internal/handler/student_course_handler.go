package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/trackademic-api/internal/models"
)

// StudentCourseHandler serves enrollments.
type StudentCourseHandler struct {
	service studentCourseService
	routes  documentRoutes
}

// NewStudentCourseHandler constructs a student course handler.
func NewStudentCourseHandler(svc studentCourseService) *StudentCourseHandler {
	return &StudentCourseHandler{service: svc, routes: documentRoutes{svc: svc, resource: "Student course", param: "code"}}
}

// List godoc
// @Summary List student courses
// @Tags Student Courses
// @Produce json
// @Param student_id query string false "Student ID"
// @Param subject_code query string false "Subject code"
// @Param semester query string false "Semester"
// @Success 200 {array} models.Document
// @Router /api/student-courses [get]
func (h *StudentCourseHandler) List(c *gin.Context) {
	docs, err := h.service.List(c.Request.Context(), models.StudentCourseFilter{
		StudentID:   c.Query("student_id"),
		SubjectCode: c.Query("subject_code"),
		Semester:    c.Query("semester"),
	})
	sendList(c, docs, err)
}

// Get godoc
// @Summary Get student course
// @Description A 24-character hex value matches the enrollment ID; anything else matches subject_code.
// @Tags Student Courses
// @Produce json
// @Param code path string true "Enrollment ID or subject code"
// @Success 200 {object} models.Document
// @Failure 404 {object} response.ErrorBody
// @Router /api/student-courses/{code} [get]
func (h *StudentCourseHandler) Get(c *gin.Context) { h.routes.get(c) }

// Create godoc
// @Summary Create student course
// @Tags Student Courses
// @Accept json
// @Produce json
// @Param payload body models.Document true "Enrollment document"
// @Success 201 {object} models.Document
// @Router /api/student-courses [post]
func (h *StudentCourseHandler) Create(c *gin.Context) { h.routes.create(c) }

// Update godoc
// @Summary Update student course
// @Tags Student Courses
// @Accept json
// @Produce json
// @Param code path string true "Enrollment ID or subject code"
// @Param payload body models.Document true "Fields to merge"
// @Success 200 {object} models.Document
// @Failure 404 {object} response.ErrorBody
// @Router /api/student-courses/{code} [put]
func (h *StudentCourseHandler) Update(c *gin.Context) { h.routes.update(c) }

// Delete godoc
// @Summary Delete student course
// @Tags Student Courses
// @Produce json
// @Param code path string true "Enrollment ID or subject code"
// @Success 200 {object} response.DeleteBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/student-courses/{code} [delete]
func (h *StudentCourseHandler) Delete(c *gin.Context) { h.routes.delete(c) }
