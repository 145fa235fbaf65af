package models

// PlanCommentFilter narrows comments to one evaluation plan.
type PlanCommentFilter struct {
	EvaluationPlanID string
}
