package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDocumentMarshalJSONNormalizesStoreValues(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex("65a1f0c2e4b0a1b2c3d4e5f6")
	require.NoError(t, err)
	at := time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC)

	doc := Document{
		"_id":        oid,
		"created_at": primitive.NewDateTimeFromTime(at),
		"activities": primitive.A{
			primitive.D{{Key: "id", Value: "act1"}, {Key: "percentage", Value: int32(30)}},
			bson.M{"id": "act2"},
		},
	}

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"_id": "65a1f0c2e4b0a1b2c3d4e5f6",
		"created_at": "2024-02-01T10:30:00Z",
		"activities": [{"id": "act1", "percentage": 30}, {"id": "act2"}]
	}`, string(out))
}

func TestDocumentSliceMarshal(t *testing.T) {
	out, err := json.Marshal([]Document{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestDocumentAccessors(t *testing.T) {
	doc := Document{
		"code":    "CS101",
		"credits": int32(4),
		"grade":   "4.5",
		"title":   nil,
		"weight":  true,
	}

	assert.Equal(t, "CS101", doc.String("code"))
	assert.Equal(t, "", doc.String("credits"))
	assert.True(t, doc.Has("code"))
	assert.False(t, doc.Has("title"))

	credits, ok := doc.Float("credits")
	assert.True(t, ok)
	assert.Equal(t, 4.0, credits)

	grade, ok := doc.Float("grade")
	assert.True(t, ok)
	assert.Equal(t, 4.5, grade)

	_, ok = doc.Float("weight")
	assert.False(t, ok)

	clone := doc.Clone()
	clone["code"] = "CS201"
	assert.Equal(t, "CS101", doc.String("code"))
}
