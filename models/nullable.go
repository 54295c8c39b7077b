package models

import (
	"bytes"
	"encoding/json"
)

// NullableBool is a JSON boolean that keeps an omitted key apart from an
// explicit null. The zero value means the key was omitted.
type NullableBool struct {
	// Present is true when the key appeared in the body, null included.
	Present bool
	// Null is true when the key was sent as null.
	Null  bool
	Value bool
}

// BoolValue returns a NullableBool carrying v.
func BoolValue(v bool) NullableBool {
	return NullableBool{Present: true, Value: v}
}

// NullBool returns a NullableBool sent as an explicit null.
func NullBool() NullableBool {
	return NullableBool{Present: true, Null: true}
}

// True reports whether the key was sent with the value true.
func (b NullableBool) True() bool {
	return b.Present && !b.Null && b.Value
}

func (b NullableBool) IsZero() bool {
	return !b.Present
}

func (b *NullableBool) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*b = NullBool()
		return nil
	}

	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*b = BoolValue(v)
	return nil
}

func (b NullableBool) MarshalJSON() ([]byte, error) {
	if !b.Present || b.Null {
		return []byte("null"), nil
	}

	return json.Marshal(b.Value)
}
