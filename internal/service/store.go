package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/noah-isme/trackademic-api/internal/ident"
	"github.com/noah-isme/trackademic-api/internal/models"
	"github.com/noah-isme/trackademic-api/internal/repository"
	appErrors "github.com/noah-isme/trackademic-api/pkg/errors"
)

// documentStore is the subset of repository.Collection the services use.
type documentStore interface {
	Find(ctx context.Context, filter bson.M, limit int64) ([]models.Document, error)
	FindOne(ctx context.Context, filter bson.M) (models.Document, error)
	InsertOne(ctx context.Context, doc interface{}) error
	InsertMany(ctx context.Context, docs []interface{}) error
	UpdateOne(ctx context.Context, filter bson.M, set models.Document) (bool, error)
	DeleteOne(ctx context.Context, filter bson.M) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// Stores groups the five collections.
type Stores struct {
	Courses         documentStore
	StudentCourses  documentStore
	EvaluationPlans documentStore
	StudentGrades   documentStore
	PlanComments    documentStore
}

// clock is swapped in tests.
type clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }

// crud is the create/read/update/delete contract shared by every collection:
// server identifiers when none is supplied, timestamps, re-read after write.
type crud struct {
	store    documentStore
	resource string // "Evaluation plan" in "Evaluation plan plan1 not found"
	plural   string
	newID    func() ident.ID
	// nativeIDs stores hex-shaped client _id strings as ObjectIDs so reads,
	// which resolve hex to the native form, find them again.
	nativeIDs bool
	// stampUpdatedOnCreate also sets updated_at when a document is created.
	stampUpdatedOnCreate bool
	now                  clock
	logger               *zap.Logger
}

func (c crud) list(ctx context.Context, filter bson.M) ([]models.Document, error) {
	docs, err := c.store.Find(ctx, filter, 0)
	if err != nil {
		return nil, c.fail(err, "failed to list "+c.plural)
	}
	return docs, nil
}

func (c crud) get(ctx context.Context, lookup ident.Lookup, raw string) (models.Document, error) {
	doc, err := c.store.FindOne(ctx, lookup.Filter())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFound(c.resource, raw)
		}
		return nil, c.fail(err, "failed to load "+c.noun())
	}
	return doc, nil
}

func (c crud) create(ctx context.Context, body models.Document) (models.Document, error) {
	doc := body.Clone()
	if !doc.Has(ident.FieldID) {
		doc[ident.FieldID] = c.newID().Value()
	} else if raw, ok := doc[ident.FieldID].(string); ok && c.nativeIDs && ident.IsNative(raw) {
		doc[ident.FieldID] = ident.Parse(raw).Value()
	}
	now := c.now()
	doc["created_at"] = now
	if c.stampUpdatedOnCreate {
		doc["updated_at"] = now
	}

	if err := c.store.InsertOne(ctx, doc); err != nil {
		return nil, c.fail(err, "failed to create "+c.noun())
	}
	created, err := c.store.FindOne(ctx, bson.M{ident.FieldID: doc.ID()})
	if err != nil {
		return nil, c.fail(err, "failed to load created "+c.noun())
	}
	return created, nil
}

// update merges body into the document matched by lookup. Fields absent from
// body are left alone; _id is immutable and dropped from the merge.
func (c crud) update(ctx context.Context, lookup ident.Lookup, raw string, body models.Document) (models.Document, error) {
	existing, err := c.get(ctx, lookup, raw)
	if err != nil {
		return nil, err
	}

	set := body.Clone()
	delete(set, ident.FieldID)
	set["updated_at"] = c.now()

	byID := bson.M{ident.FieldID: existing.ID()}
	matched, err := c.store.UpdateOne(ctx, byID, set)
	if err != nil {
		return nil, c.fail(err, "failed to update "+c.noun())
	}
	if !matched {
		return nil, appErrors.NotFound(c.resource, raw)
	}

	updated, err := c.store.FindOne(ctx, byID)
	if err != nil {
		return nil, c.fail(err, "failed to load updated "+c.noun())
	}
	return updated, nil
}

func (c crud) delete(ctx context.Context, lookup ident.Lookup, raw string) error {
	deleted, err := c.store.DeleteOne(ctx, lookup.Filter())
	if err != nil {
		return c.fail(err, "failed to delete "+c.noun())
	}
	if !deleted {
		return appErrors.NotFound(c.resource, raw)
	}
	return nil
}

func (c crud) fail(err error, message string) error {
	c.logger.Error(message, zap.String("collection", c.plural), zap.Error(err))
	return appErrors.Internal(err, message)
}

func (c crud) noun() string {
	return strings.ToLower(c.resource)
}
