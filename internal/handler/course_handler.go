package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/trackademic-api/internal/models"
)

// CourseHandler serves the course catalog.
type CourseHandler struct {
	service courseService
	routes  documentRoutes
}

// NewCourseHandler constructs a course handler.
func NewCourseHandler(svc courseService) *CourseHandler {
	return &CourseHandler{service: svc, routes: documentRoutes{svc: svc, resource: "Course", param: "code"}}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Param title query string false "Case-insensitive title substring"
// @Param code query string false "Case-insensitive code substring"
// @Success 200 {array} models.Document
// @Router /api/courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	docs, err := h.service.List(c.Request.Context(), models.CourseFilter{
		Title: c.Query("title"),
		Code:  c.Query("code"),
	})
	sendList(c, docs, err)
}

// Get godoc
// @Summary Get course by code
// @Tags Courses
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} models.Document
// @Failure 404 {object} response.ErrorBody
// @Router /api/courses/{code} [get]
func (h *CourseHandler) Get(c *gin.Context) { h.routes.get(c) }

// Create godoc
// @Summary Create course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body models.Document true "Course document"
// @Success 201 {object} models.Document
// @Router /api/courses [post]
func (h *CourseHandler) Create(c *gin.Context) { h.routes.create(c) }

// Update godoc
// @Summary Update course
// @Tags Courses
// @Accept json
// @Produce json
// @Param code path string true "Course identifier"
// @Param payload body models.Document true "Fields to merge"
// @Success 200 {object} models.Document
// @Failure 404 {object} response.ErrorBody
// @Router /api/courses/{code} [put]
func (h *CourseHandler) Update(c *gin.Context) { h.routes.update(c) }

// Delete godoc
// @Summary Delete course
// @Tags Courses
// @Produce json
// @Param code path string true "Course identifier"
// @Success 200 {object} response.DeleteBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/courses/{code} [delete]
func (h *CourseHandler) Delete(c *gin.Context) { h.routes.delete(c) }
