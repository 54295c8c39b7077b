// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIDCtxKey(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{name: "set", ctx: WithUserID(context.Background(), "user-42"), wantID: "user-42", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "empty", ctx: WithUserID(context.Background(), "")},
		{name: "wrong type", ctx: context.WithValue(context.Background(), UserIDCtxKey, 42)},
		{name: "plain string key is not ours", ctx: context.WithValue(context.Background(), "userID", "user-42")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}
