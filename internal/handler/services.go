package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/trackademic-api/internal/models"
	appErrors "github.com/noah-isme/trackademic-api/pkg/errors"
	"github.com/noah-isme/trackademic-api/pkg/response"
)

// documentService is the single-document surface every collection shares.
type documentService interface {
	Get(ctx context.Context, id string) (models.Document, error)
	Create(ctx context.Context, body models.Document) (models.Document, error)
	Update(ctx context.Context, id string, body models.Document) (models.Document, error)
	Delete(ctx context.Context, id string) error
}

type courseService interface {
	documentService
	List(ctx context.Context, filter models.CourseFilter) ([]models.Document, error)
}

type evaluationPlanService interface {
	documentService
	List(ctx context.Context, filter models.EvaluationPlanFilter) ([]models.Document, error)
}

type studentCourseService interface {
	documentService
	List(ctx context.Context, filter models.StudentCourseFilter) ([]models.Document, error)
}

type studentGradeService interface {
	documentService
	List(ctx context.Context, filter models.StudentGradeFilter) ([]models.Document, error)
	BySemester(ctx context.Context, studentID, semester string) ([]models.Document, error)
}

type planCommentService interface {
	documentService
	List(ctx context.Context, filter models.PlanCommentFilter) ([]models.Document, error)
}

// documentRoutes implements get/create/update/delete for one resource whose
// identifier arrives in the path parameter param.
type documentRoutes struct {
	svc      documentService
	resource string
	param    string
}

func (r documentRoutes) get(c *gin.Context) {
	doc, err := r.svc.Get(c.Request.Context(), c.Param(r.param))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, doc)
}

func (r documentRoutes) create(c *gin.Context) {
	body, ok := bindDocument(c)
	if !ok {
		return
	}
	doc, err := r.svc.Create(c.Request.Context(), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, doc)
}

func (r documentRoutes) update(c *gin.Context) {
	body, ok := bindDocument(c)
	if !ok {
		return
	}
	doc, err := r.svc.Update(c.Request.Context(), c.Param(r.param), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, doc)
}

func (r documentRoutes) delete(c *gin.Context) {
	id := c.Param(r.param)
	if err := r.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Deleted(c, r.resource, id)
}

// bindDocument accepts any JSON object. Non-object or malformed bodies are a
// 400; nothing else about the body is checked.
func bindDocument(c *gin.Context) (models.Document, bool) {
	var body models.Document
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return nil, false
	}
	return body, true
}

func sendList(c *gin.Context, docs []models.Document, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	if docs == nil {
		docs = []models.Document{}
	}
	response.OK(c, docs)
}
