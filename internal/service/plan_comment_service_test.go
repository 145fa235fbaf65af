package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/trackademic-api/internal/models"
	appErrors "github.com/noah-isme/trackademic-api/pkg/errors"
)

func TestPlanCommentServiceLifecycle(t *testing.T) {
	store := newMemoryStore(
		models.Document{"_id": "c1", "evaluation_plan_id": "plan1", "text": "Too heavy on exams"},
		models.Document{"_id": "c2", "evaluation_plan_id": "plan2", "text": "Looks fine"},
	)
	svc := NewPlanCommentService(store, nil)
	svc.crud.now = fixedClock
	ctx := context.Background()

	comments, err := svc.List(ctx, models.PlanCommentFilter{EvaluationPlanID: "plan1"})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "c1", comments[0].ID())

	created, err := svc.Create(ctx, models.Document{"evaluation_plan_id": "plan1", "text": "Agreed"})
	require.NoError(t, err)
	id := created.String("_id")
	require.NotEmpty(t, id)

	updated, err := svc.Update(ctx, id, models.Document{"text": "Agreed, mostly"})
	require.NoError(t, err)
	assert.Equal(t, "Agreed, mostly", updated.String("text"))
	assert.Equal(t, "plan1", updated.String("evaluation_plan_id"))

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	assert.Equal(t, "Comment "+id+" not found", err.Error())
}

func TestPlanCommentServiceUpdateMissingWritesNothing(t *testing.T) {
	store := newMemoryStore()
	svc := NewPlanCommentService(store, nil)

	_, err := svc.Update(context.Background(), "ghost", models.Document{"text": "x"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	assert.Zero(t, store.writes)
}
