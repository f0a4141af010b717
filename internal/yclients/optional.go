package yclients

import "encoding/json"

// Optional distinguishes a field that was never set from one explicitly set
// to null. Unset values carry omitzero json tags and disappear from the wire
// form entirely; null values serialize as JSON null.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Set returns an Optional carrying v.
func Set[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an Optional serializing as explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// Get reports the value and whether it was set to a non-null value.
func (o Optional[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

func (o Optional[T]) IsSet() bool  { return o.set }
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// IsZero makes unset values vanish under a json omitzero tag.
func (o Optional[T]) IsZero() bool { return !o.set }

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}
