package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/trackademic-api/internal/models"
)

// PlanCommentHandler serves comments on evaluation plans.
type PlanCommentHandler struct {
	service planCommentService
	routes  documentRoutes
}

// NewPlanCommentHandler constructs a plan comment handler.
func NewPlanCommentHandler(svc planCommentService) *PlanCommentHandler {
	return &PlanCommentHandler{service: svc, routes: documentRoutes{svc: svc, resource: "Comment", param: "id"}}
}

// List godoc
// @Summary List plan comments
// @Tags Plan Comments
// @Produce json
// @Param evaluation_plan_id query string false "Plan ID"
// @Success 200 {array} models.Document
// @Router /api/plan-comments [get]
func (h *PlanCommentHandler) List(c *gin.Context) {
	docs, err := h.service.List(c.Request.Context(), models.PlanCommentFilter{
		EvaluationPlanID: c.Query("evaluation_plan_id"),
	})
	sendList(c, docs, err)
}

// Get godoc
// @Summary Get plan comment
// @Tags Plan Comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} models.Document
// @Failure 404 {object} response.ErrorBody
// @Router /api/plan-comments/{id} [get]
func (h *PlanCommentHandler) Get(c *gin.Context) { h.routes.get(c) }

// Create godoc
// @Summary Create plan comment
// @Tags Plan Comments
// @Accept json
// @Produce json
// @Param payload body models.Document true "Comment document"
// @Success 201 {object} models.Document
// @Router /api/plan-comments [post]
func (h *PlanCommentHandler) Create(c *gin.Context) { h.routes.create(c) }

// Update godoc
// @Summary Update plan comment
// @Tags Plan Comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param payload body models.Document true "Fields to merge"
// @Success 200 {object} models.Document
// @Failure 404 {object} response.ErrorBody
// @Router /api/plan-comments/{id} [put]
func (h *PlanCommentHandler) Update(c *gin.Context) { h.routes.update(c) }

// Delete godoc
// @Summary Delete plan comment
// @Tags Plan Comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} response.DeleteBody
// @Failure 404 {object} response.ErrorBody
// @Router /api/plan-comments/{id} [delete]
func (h *PlanCommentHandler) Delete(c *gin.Context) { h.routes.delete(c) }
