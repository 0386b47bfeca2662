package domain

import "encoding/json"

// Optional wraps a patch field so that a key absent from the request body
// can be told apart from one that was present. Set is true whenever the key
// appeared, including with an explicit null (which overwrites with the zero
// value); absent fields leave the stored document untouched.
type Optional[T any] struct {
	Value T
	Set   bool
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Value = zero
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
