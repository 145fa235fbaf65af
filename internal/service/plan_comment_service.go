package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/trackademic-api/internal/ident"
	"github.com/noah-isme/trackademic-api/internal/models"
	"github.com/noah-isme/trackademic-api/internal/repository"
)

// PlanCommentService manages free-form comments attached to plans.
type PlanCommentService struct {
	crud crud
}

// NewPlanCommentService constructs PlanCommentService.
func NewPlanCommentService(comments documentStore, logger *zap.Logger) *PlanCommentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanCommentService{crud: crud{
		store:    comments,
		resource: "Comment",
		plural:   "comments",
		newID:    ident.NewString,
		now:      utcNow,
		logger:   logger,
	}}
}

// List returns comments, optionally for one plan.
func (s *PlanCommentService) List(ctx context.Context, filter models.PlanCommentFilter) ([]models.Document, error) {
	return s.crud.list(ctx, repository.PlanCommentQuery(filter))
}

// Get returns one comment by its string identifier.
func (s *PlanCommentService) Get(ctx context.Context, id string) (models.Document, error) {
	return s.crud.get(ctx, ident.PlanComment(id), id)
}

// Create stores a comment.
func (s *PlanCommentService) Create(ctx context.Context, body models.Document) (models.Document, error) {
	return s.crud.create(ctx, body)
}

// Update merges body into a comment.
func (s *PlanCommentService) Update(ctx context.Context, id string, body models.Document) (models.Document, error) {
	return s.crud.update(ctx, ident.PlanComment(id), id, body)
}

// Delete removes a comment.
func (s *PlanCommentService) Delete(ctx context.Context, id string) error {
	return s.crud.delete(ctx, ident.PlanComment(id), id)
}
