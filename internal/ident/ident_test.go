package ident

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const hexID = "65a1f0c2e4b0a1b2c3d4e5f6"

func TestParse(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(hexID)
	require.NoError(t, err)

	cases := []struct {
		name  string
		raw   string
		kind  Kind
		value interface{}
	}{
		{name: "hex", raw: hexID, kind: KindNative, value: oid},
		{name: "uuid", raw: "3f1c9a2e-5b7d-4c1e-9f0a-123456789abc", kind: KindString, value: "3f1c9a2e-5b7d-4c1e-9f0a-123456789abc"},
		{name: "short hex", raw: "abc123", kind: KindString, value: "abc123"},
		{name: "non hex of right length", raw: "zzzzzzzzzzzzzzzzzzzzzzzz", kind: KindString, value: "zzzzzzzzzzzzzzzzzzzzzzzz"},
		{name: "empty", raw: "", kind: KindString, value: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := Parse(tc.raw)
			assert.Equal(t, tc.kind, id.Kind())
			assert.Equal(t, tc.value, id.Value())
			assert.Equal(t, tc.raw, id.String())
		})
	}
}

func TestResolversPerCollection(t *testing.T) {
	oid, _ := primitive.ObjectIDFromHex(hexID)

	assert.Equal(t, bson.M{"code": "CS101"}, CourseByCode("CS101").Filter())
	assert.Equal(t, bson.M{"_id": "CS101"}, CourseByKey("CS101").Filter())
	assert.Equal(t, bson.M{"_id": hexID}, CourseByKey(hexID).Filter())

	assert.Equal(t, bson.M{"_id": oid}, StudentCourse(hexID).Filter())
	assert.Equal(t, bson.M{"subject_code": "CS101"}, StudentCourse("CS101").Filter())
	assert.Equal(t, bson.M{"subject_code": "sc1"}, StudentCourse("sc1").Filter())

	assert.Equal(t, bson.M{"_id": oid}, EvaluationPlan(hexID).Filter())
	assert.Equal(t, bson.M{"_id": "plan1"}, EvaluationPlan("plan1").Filter())

	assert.Equal(t, bson.M{"_id": oid}, StudentGrade(hexID).Filter())
	assert.Equal(t, bson.M{"_id": "not-an-objectid"}, StudentGrade("not-an-objectid").Filter())

	assert.Equal(t, bson.M{"_id": hexID}, PlanComment(hexID).Filter())
}

func TestNewIdentifiers(t *testing.T) {
	s := NewString()
	assert.Equal(t, KindString, s.Kind())
	_, err := uuid.Parse(s.String())
	require.NoError(t, err)

	n := NewNative()
	assert.Equal(t, KindNative, n.Kind())
	assert.True(t, IsNative(n.String()))
	assert.False(t, n.IsZero())
	assert.True(t, ID{}.IsZero())
}

func TestMarshalInOwnForm(t *testing.T) {
	oid, _ := primitive.ObjectIDFromHex(hexID)

	raw, err := bson.Marshal(struct {
		ID ID `bson:"_id"`
	}{ID: FromNative(oid)})
	require.NoError(t, err)
	var decoded bson.M
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, oid, decoded["_id"])

	raw, err = bson.Marshal(struct {
		ID ID `bson:"_id"`
	}{ID: FromString("plan1")})
	require.NoError(t, err)
	decoded = bson.M{}
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, "plan1", decoded["_id"])

	out, err := json.Marshal(map[string]ID{"_id": FromNative(oid)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"`+hexID+`"}`, string(out))
}
