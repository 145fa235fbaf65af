package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/trackademic-api/internal/models"
)

// EvaluationPlanHandler serves evaluation plans.
type EvaluationPlanHandler struct {
	service evaluationPlanService
	routes  documentRoutes
}

// NewEvaluationPlanHandler constructs an evaluation plan handler.
func NewEvaluationPlanHandler(svc evaluationPlanService) *EvaluationPlanHandler {
	return &EvaluationPlanHandler{service: svc, routes: documentRoutes{svc: svc, resource: "Evaluation plan", param: "id"}}
}

// List godoc
// @Summary List evaluation plans
// @Description Each plan carries a resolved subject_name.
// @Tags Evaluation Plans
// @Produce json
// @Param subject_code query string false "Subject code"
// @Param semester query string false "Semester"
// @Param created_by query string false "Author student ID"
// @Success 200 {array} models.Document
// @Router /api/evaluation-plans [get]
func (h *EvaluationPlanHandler) List(c *gin.Context) {
	docs, err := h.service.List(c.Request.Context(), models.EvaluationPlanFilter{
		SubjectCode: c.Query("subject_code"),
		Semester:    c.Query("semester"),
		CreatedBy:   c.Query("created_by"),
	})
	sendList(c, docs, err)
}

// Get godoc
// @Summary Get evaluation plan
// @Tags Evaluation Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} response.ErrorBody
// @Router /api/evaluation-plans/{id} [get]
func (h *EvaluationPlanHandler) Get(c *gin.Context) { h.routes.get(c) }

// Create godoc
// @Summary Create evaluation plan
// @Description Enrolls created_by in the course first when no enrollment exists for the semester.
// @Tags Evaluation Plans
// @Accept json
// @Produce json
// @Param payload body models.Document true "Plan document"
// @Success 201 {object} models.Document
// @Router /api/evaluation-plans [post]
func (h *EvaluationPlanHandler) Create(c *gin.Context) { h.routes.create(c) }

// Update godoc
// @Summary Update evaluation plan
// @Tags Evaluation Plans
// @Accept json
// @Produce json
// @Param id path string true "Plan ID"
// @Param payload body models.Document true "Fields to merge"
// @Success 200 {object} models.Document
// @Failure 404 {object} response.ErrorBody
// @Router /api/evaluation-plans/{id} [put]
func (h *EvaluationPlanHandler) Update(c *gin.Context) { h.routes.update(c) }

// Delete godoc
// @Summary Delete evaluation plan
// @Tags Evaluation Plans
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} response.DeleteBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/evaluation-plans/{id} [delete]
func (h *EvaluationPlanHandler) Delete(c *gin.Context) { h.routes.delete(c) }
