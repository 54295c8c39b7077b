package validators

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name    string `json:"name"`
	IsAdmin *bool  `json:"is_admin"`
}

func requireIssue(t *testing.T, err error) FieldError {
	t.Helper()

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr), "expected *ValidationError, got %v", err)
	require.Len(t, vErr.Issues, 1)

	return vErr.Issues[0]
}

func TestDecodeJSON_Valid(t *testing.T) {
	var dst decodeTarget
	err := DecodeJSON(strings.NewReader(`{"name":"John","is_admin":true}`), &dst)

	require.NoError(t, err)
	assert.Equal(t, "John", dst.Name)
	require.NotNil(t, dst.IsAdmin)
	assert.True(t, *dst.IsAdmin)
}

func TestDecodeJSON_NullIsAdminIsNil(t *testing.T) {
	var dst decodeTarget
	err := DecodeJSON(strings.NewReader(`{"name":"John","is_admin":null}`), &dst)

	require.NoError(t, err)
	assert.Nil(t, dst.IsAdmin)
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	for _, body := range []string{"", "   \n"} {
		var dst decodeTarget
		err := DecodeJSON(strings.NewReader(body), &dst)

		require.NoError(t, err)
		assert.Equal(t, decodeTarget{}, dst)
	}
}

func TestDecodeJSON_UnknownField(t *testing.T) {
	var dst decodeTarget
	err := DecodeJSON(strings.NewReader(`{"name":"John","role":"admin"}`), &dst)

	issue := requireIssue(t, err)
	assert.Equal(t, "role", issue.Field)
	assert.Equal(t, RuleUnrecognizedKey, issue.Rule)
	assert.Equal(t, "is not allowed", issue.Message)
}

func TestDecodeJSON_Syntax(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "broken token", body: `{"name":}`},
		{name: "truncated", body: `{"name":"John"`},
		{name: "trailing data", body: `{"name":"John"}{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst decodeTarget
			err := DecodeJSON(strings.NewReader(tt.body), &dst)

			issue := requireIssue(t, err)
			assert.Empty(t, issue.Field)
			assert.Equal(t, RuleInvalidJSON, issue.Rule)
			assert.NotEmpty(t, issue.Message)
		})
	}
}

func TestDecodeJSON_TypeMismatch(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{name: "bool field", body: `{"is_admin":"yes"}`, wantField: "is_admin", wantMsg: "must be of type boolean"},
		{name: "string field", body: `{"name":42}`, wantField: "name", wantMsg: "must be of type string"},
		{name: "not an object", body: `[1,2]`, wantField: "", wantMsg: "must be of type object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst decodeTarget
			err := DecodeJSON(strings.NewReader(tt.body), &dst)

			issue := requireIssue(t, err)
			assert.Equal(t, tt.wantField, issue.Field)
			assert.Equal(t, RuleType, issue.Rule)
			assert.Equal(t, tt.wantMsg, issue.Message)
		})
	}
}

func TestDecodeJSON_NilDestination(t *testing.T) {
	err := DecodeJSON(strings.NewReader(`{}`), nil)

	require.Error(t, err)
	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr))
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError(
		FieldError{Field: "email", Rule: "email", Message: "must be a valid email address"},
		FieldError{Rule: RuleInvalidJSON, Message: "malformed JSON"},
	)

	assert.Equal(t, "validation failed: email: must be a valid email address; malformed JSON", err.Error())
}
