package model

import "encoding/json"

// Optional is a patch field that tells an absent key apart from an
// explicit null. Set is true whenever the key was present in the payload;
// Value is nil when that key carried null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some is a present, non-null patch value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null is a present key that clears the column.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// apply writes o onto dst when the key was sent, clearing dst on null.
func apply[T any](dst **T, o Optional[T]) {
	if !o.Set {
		return
	}
	if o.Value == nil {
		*dst = nil
		return
	}
	v := *o.Value
	*dst = &v
}
