package handler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/trackademic-api/internal/service"
	"github.com/noah-isme/trackademic-api/pkg/response"
)

type seeder interface {
	Seed(ctx context.Context) (*service.SeedResult, error)
	InitializeStudent(ctx context.Context, req service.InitializeStudentRequest) (*service.InitializeStudentResult, error)
}

// SeedHandler exposes the demo reset and student bootstrap.
type SeedHandler struct {
	service seeder
}

// NewSeedHandler constructs a seed handler.
func NewSeedHandler(svc seeder) *SeedHandler {
	return &SeedHandler{service: svc}
}

// Seed godoc
// @Summary Reset demo data
// @Description Empties every collection and loads the demo dataset.
// @Tags Admin
// @Produce json
// @Param X-Admin-Key header string true "Admin secret"
// @Success 200 {object} service.SeedResult
// @Failure 401 {object} response.ErrorBody
// @Router /api/seed-data [post]
func (h *SeedHandler) Seed(c *gin.Context) {
	result, err := h.service.Seed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// InitializeStudent godoc
// @Summary Bootstrap a student's enrollments
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body service.InitializeStudentRequest true "Student code"
// @Success 200 {object} service.InitializeStudentResult
// @Failure 400 {object} response.ErrorBody
// @Router /api/initialize-student-data [post]
func (h *SeedHandler) InitializeStudent(c *gin.Context) {
	body, ok := bindDocument(c)
	if !ok {
		return
	}
	req := service.InitializeStudentRequest{StudentCode: studentCode(body["student_code"])}
	result, err := h.service.InitializeStudent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// studentCode accepts any JSON scalar; numeric codes such as 123 arrive as
// float64 and are printed without an exponent.
func studentCode(v interface{}) string {
	switch code := v.(type) {
	case nil:
		return ""
	case string:
		return code
	case float64:
		return strconv.FormatFloat(code, 'f', -1, 64)
	default:
		return fmt.Sprint(code)
	}
}
