package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableBool_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		body string
		want NullableBool
	}{
		{name: "omitted", body: `{}`, want: NullableBool{}},
		{name: "null", body: `{"is_admin":null}`, want: NullBool()},
		{name: "true", body: `{"is_admin":true}`, want: BoolValue(true)},
		{name: "false", body: `{"is_admin":false}`, want: BoolValue(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateUserRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.IsAdmin)
		})
	}
}

func TestNullableBool_UnmarshalWrongType(t *testing.T) {
	var req UpdateUserRequest
	err := json.Unmarshal([]byte(`{"is_admin":"yes"}`), &req)

	var typeErr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "is_admin", typeErr.Field)
}

func TestNullableBool_True(t *testing.T) {
	assert.True(t, BoolValue(true).True())
	assert.False(t, BoolValue(false).True())
	assert.False(t, NullBool().True())
	assert.False(t, NullableBool{}.True())
}

func TestNullableBool_MarshalOmitsAbsentKey(t *testing.T) {
	name := "Ann"

	omitted, err := json.Marshal(UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ann"}`, string(omitted))

	null, err := json.Marshal(UpdateUserRequest{IsAdmin: NullBool()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_admin":null}`, string(null))

	set, err := json.Marshal(UpdateUserRequest{IsAdmin: BoolValue(false)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_admin":false}`, string(set))
}
