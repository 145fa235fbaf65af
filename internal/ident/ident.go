// Package ident models the two identifier forms found in the store and the
// per-collection rules for turning a path segment into a lookup.
//
// Collections do not agree on a form: some documents carry client-era UUID
// strings, others native ObjectIDs, and a few endpoints look records up by a
// business field instead of _id. The resolvers below reproduce each rule
// exactly; unifying them is a data migration, not something to do here.
package ident

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind tells which form an identifier takes.
type Kind uint8

const (
	// KindString is an opaque string token, usually a UUID.
	KindString Kind = iota
	// KindNative is a store-native ObjectID.
	KindNative
)

func (k Kind) String() string {
	if k == KindNative {
		return "native"
	}
	return "string"
}

// ID is a tagged union of a string token and a native ObjectID.
type ID struct {
	kind   Kind
	str    string
	native primitive.ObjectID
}

// FromString wraps an opaque string identifier.
func FromString(s string) ID {
	return ID{kind: KindString, str: s}
}

// FromNative wraps an ObjectID.
func FromNative(oid primitive.ObjectID) ID {
	return ID{kind: KindNative, native: oid}
}

// NewString returns a fresh random UUID string identifier.
func NewString() ID {
	return FromString(uuid.NewString())
}

// NewNative returns a fresh ObjectID.
func NewNative() ID {
	return FromNative(primitive.NewObjectID())
}

// IsNative reports whether raw has the syntactic form of an ObjectID.
func IsNative(raw string) bool {
	return primitive.IsValidObjectID(raw)
}

// Parse returns a native identifier when raw is shaped like an ObjectID and
// an opaque string otherwise. It never fails.
func Parse(raw string) ID {
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		return FromNative(oid)
	}
	return FromString(raw)
}

// Kind returns the identifier form.
func (id ID) Kind() Kind { return id.kind }

// Value returns the value to place in a store filter or document.
func (id ID) Value() interface{} {
	if id.kind == KindNative {
		return id.native
	}
	return id.str
}

// String renders the identifier the way it travels in JSON: native
// identifiers as plain hex.
func (id ID) String() string {
	if id.kind == KindNative {
		return id.native.Hex()
	}
	return id.str
}

// IsZero reports an empty identifier of either form.
func (id ID) IsZero() bool {
	if id.kind == KindNative {
		return id.native.IsZero()
	}
	return id.str == ""
}

// MarshalBSONValue stores the identifier in its own form.
func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(id.Value())
}

// MarshalJSON renders the identifier as a JSON string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// FieldID is the store's primary key field.
const FieldID = "_id"

// Lookup pairs a document field with the identifier to match it against.
type Lookup struct {
	Field string
	ID    ID
}

// Filter renders the lookup as a store filter.
func (l Lookup) Filter() bson.M {
	return bson.M{l.Field: l.ID.Value()}
}

// ByID matches the primary key against id.
func ByID(id ID) Lookup {
	return Lookup{Field: FieldID, ID: id}
}

// CourseByCode is the read-side course rule: the path carries a course code.
func CourseByCode(raw string) Lookup {
	return Lookup{Field: "code", ID: FromString(raw)}
}

// CourseByKey is the write-side course rule: the path is matched literally
// against _id, so an update or delete by code only hits when the code
// happens to equal the stored identifier.
func CourseByKey(raw string) Lookup {
	return ByID(FromString(raw))
}

// StudentCourse treats an ObjectID-shaped value as the enrollment's _id and
// anything else as its subject_code.
func StudentCourse(raw string) Lookup {
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		return ByID(FromNative(oid))
	}
	return Lookup{Field: "subject_code", ID: FromString(raw)}
}

// EvaluationPlan matches _id in whichever form the caller supplied.
func EvaluationPlan(raw string) Lookup {
	return ByID(Parse(raw))
}

// StudentGrade expects a native _id. Values that do not parse are looked up
// literally so that a malformed identifier surfaces as a miss.
func StudentGrade(raw string) Lookup {
	return ByID(Parse(raw))
}

// PlanComment matches the _id as an opaque string only.
func PlanComment(raw string) Lookup {
	return ByID(FromString(raw))
}

// Reference converts a cross-collection reference (such as a grade's
// evaluation_plan_id query parameter) into a filter value.
func Reference(raw string) interface{} {
	return Parse(raw).Value()
}
