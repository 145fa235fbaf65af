package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/trackademic-api/internal/models"
	appErrors "github.com/noah-isme/trackademic-api/pkg/errors"
)

func newCourseFixture() (*CourseService, *memoryStore) {
	store := newMemoryStore(
		models.Document{"_id": "course1", "code": "CS101", "title": "Introduction to Programming", "credits": 3},
		models.Document{"_id": "course2", "code": "CS201", "title": "Data Structures", "credits": 4},
	)
	svc := NewCourseService(store, nil)
	svc.crud.now = fixedClock
	return svc, store
}

func TestCourseServiceListFilters(t *testing.T) {
	svc, _ := newCourseFixture()
	ctx := context.Background()

	docs, err := svc.List(ctx, models.CourseFilter{Code: "CS1"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "CS101", docs[0].String("code"))

	docs, err = svc.List(ctx, models.CourseFilter{Title: "data"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "CS201", docs[0].String("code"))

	docs, err = svc.List(ctx, models.CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestCourseServiceCreateThenGet(t *testing.T) {
	svc, _ := newCourseFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Document{"code": "CS301", "title": "Algorithms"})
	require.NoError(t, err)
	id := created.String("_id")
	require.NotEmpty(t, id)
	assert.True(t, created.Has("created_at"))
	assert.True(t, created.Has("updated_at"))

	byCode, err := svc.Get(ctx, "CS301")
	require.NoError(t, err)
	assert.Equal(t, id, byCode.String("_id"))

	byID, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Algorithms", byID.String("title"))
}

func TestCourseServiceGetNotFound(t *testing.T) {
	svc, _ := newCourseFixture()

	_, err := svc.Get(context.Background(), "NOPE")
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, "Course NOPE not found", err.Error())
}

func TestCourseServiceUpdateMergesFields(t *testing.T) {
	svc, _ := newCourseFixture()

	updated, err := svc.Update(context.Background(), "course1", models.Document{"title": "Programming I", "_id": "hijack"})
	require.NoError(t, err)
	assert.Equal(t, "course1", updated.String("_id"))
	assert.Equal(t, "Programming I", updated.String("title"))
	assert.Equal(t, "CS101", updated.String("code"))
	assert.True(t, updated.Has("updated_at"))
}

func TestCourseServiceUpdateByCodeIsNotFound(t *testing.T) {
	svc, store := newCourseFixture()

	_, err := svc.Update(context.Background(), "CS101", models.Document{"title": "x"})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	assert.Zero(t, store.writes)
}

func TestCourseServiceDelete(t *testing.T) {
	svc, store := newCourseFixture()
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "course2"))
	assert.Len(t, store.docs, 1)

	err := svc.Delete(ctx, "course2")
	require.Error(t, err)
	assert.Equal(t, "Course course2 not found", err.Error())
}

func TestCourseServiceStoreFailure(t *testing.T) {
	svc, store := newCourseFixture()
	store.failOn("find", errStoreDown)

	_, err := svc.List(context.Background(), models.CourseFilter{})
	require.Error(t, err)
	assert.True(t, appErrors.Is(err, appErrors.ErrInternal))
}
