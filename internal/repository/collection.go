package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noah-isme/trackademic-api/internal/models"
)

// Collection names as laid out in the deployed database.
const (
	CoursesCollection         = "courses"
	StudentCoursesCollection  = "student_courses"
	EvaluationPlansCollection = "evaluation_plans"
	StudentGradesCollection   = "student_grades"
	PlanCommentsCollection    = "plan_comments"
)

// ErrNotFound is returned by FindOne when no document matches.
var ErrNotFound = errors.New("document not found")

type queryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// Collection runs schemaless document operations against one collection.
type Collection struct {
	coll     *mongo.Collection
	observer queryObserver
}

// NewCollection binds name in db. observer may be nil.
func NewCollection(db *mongo.Database, name string, observer queryObserver) *Collection {
	return &Collection{coll: db.Collection(name), observer: observer}
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.coll.Name()
}

// Find returns every matching document in natural order. A limit of zero
// means no limit.
func (c *Collection) Find(ctx context.Context, filter bson.M, limit int64) ([]models.Document, error) {
	defer c.observe("find", time.Now())

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := c.coll.Find(ctx, orEmpty(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]models.Document, 0)
	for cursor.Next(ctx) {
		var doc models.Document
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// FindOne returns the first matching document or ErrNotFound.
func (c *Collection) FindOne(ctx context.Context, filter bson.M) (models.Document, error) {
	defer c.observe("find_one", time.Now())

	var doc models.Document
	if err := c.coll.FindOne(ctx, orEmpty(filter)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// InsertOne stores doc, which may be a Document or a bson-tagged struct.
func (c *Collection) InsertOne(ctx context.Context, doc interface{}) error {
	defer c.observe("insert_one", time.Now())

	_, err := c.coll.InsertOne(ctx, doc)
	return err
}

// InsertMany stores docs in order and stops at the first failure; documents
// written before it stay written.
func (c *Collection) InsertMany(ctx context.Context, docs []interface{}) error {
	if len(docs) == 0 {
		return nil
	}
	defer c.observe("insert_many", time.Now())

	_, err := c.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	return err
}

// UpdateOne merges set into the first matching document and reports whether
// anything matched.
func (c *Collection) UpdateOne(ctx context.Context, filter bson.M, set models.Document) (bool, error) {
	defer c.observe("update_one", time.Now())

	result, err := c.coll.UpdateOne(ctx, orEmpty(filter), bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// DeleteOne removes the first matching document and reports whether one was removed.
func (c *Collection) DeleteOne(ctx context.Context, filter bson.M) (bool, error) {
	defer c.observe("delete_one", time.Now())

	result, err := c.coll.DeleteOne(ctx, orEmpty(filter))
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// DeleteAll empties the collection.
func (c *Collection) DeleteAll(ctx context.Context) (int64, error) {
	defer c.observe("delete_many", time.Now())

	result, err := c.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (c *Collection) observe(op string, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveDBQuery(c.coll.Name()+"."+op, time.Since(start))
}

func orEmpty(filter bson.M) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return filter
}
