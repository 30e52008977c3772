package redisource

import (
	"encoding/json"

	"github.com/spf13/cast"
)

// DecodeFunc turns a stored member into an item.
type DecodeFunc[T any] func(string) (T, error)

// JSONDecoder unmarshals members stored as JSON documents.
func JSONDecoder[T any]() DecodeFunc[T] {
	return func(s string) (T, error) {
		var v T
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	}
}

// StringDecoder passes raw members through unchanged.
func StringDecoder() DecodeFunc[string] {
	return func(s string) (string, error) { return s, nil }
}

// Int64Decoder converts numeric members, tolerating the string forms
// Redis hands back.
func Int64Decoder() DecodeFunc[int64] {
	return func(s string) (int64, error) { return cast.ToInt64E(s) }
}

// Float64Decoder converts score-like numeric members.
func Float64Decoder() DecodeFunc[float64] {
	return func(s string) (float64, error) { return cast.ToFloat64E(s) }
}
