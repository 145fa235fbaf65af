package models

import (
	"encoding/json"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document is a schemaless record as stored. Request bodies are persisted
// without validation, so most endpoints pass Documents through untouched.
type Document map[string]interface{}

// MarshalJSON renders store-native values in their wire forms: ObjectIDs as
// plain hex strings, datetimes as RFC 3339, nested documents as objects.
func (d Document) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	return json.Marshal(normalizeMap(d))
}

// ID returns the raw _id value.
func (d Document) ID() interface{} {
	return d["_id"]
}

// String returns the string at key, or "" when absent or not a string.
func (d Document) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Has reports whether key is present with a non-nil value.
func (d Document) Has(key string) bool {
	v, ok := d[key]
	return ok && v != nil
}

// Float reads a numeric field. Strings holding numbers are accepted because
// bodies are not validated.
func (d Document) Float(key string) (float64, bool) {
	return toFloat(d[key])
}

// Clone returns a shallow copy.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(n.String(), 64)
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Normalize converts decoded store values into plain JSON-friendly values.
func Normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case Document:
		return normalizeMap(val)
	case primitive.M:
		return normalizeMap(val)
	case map[string]interface{}:
		return normalizeMap(val)
	case primitive.D:
		out := make(map[string]interface{}, len(val))
		for _, e := range val {
			out[e.Key] = Normalize(e.Value)
		}
		return out
	case primitive.A:
		return normalizeSlice(val)
	case []interface{}:
		return normalizeSlice(val)
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time().UTC().Format(time.RFC3339Nano)
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	case primitive.Decimal128:
		return val.String()
	default:
		return v
	}
}

func normalizeMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = Normalize(v)
	}
	return out
}

func normalizeSlice(s []interface{}) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = Normalize(v)
	}
	return out
}
