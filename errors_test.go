package tasks_test

import (
	"testing"

	"github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"

	tasks "github.com/goliatone/go-tasks"
)

func TestErrorTextCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *errors.Error
		textCode string
		code     int
	}{
		{"Account exists", tasks.ErrAccountExists, tasks.TextCodeAccountExists, errors.CodeBadRequest},
		{"Account not found", tasks.ErrAccountNotFound, tasks.TextCodeAccountNotFound, errors.CodeBadRequest},
		{"Bad credentials", tasks.ErrBadCredentials, tasks.TextCodeBadCredentials, errors.CodeBadRequest},
		{"Token expired", tasks.ErrTokenExpired, tasks.TextCodeTokenExpired, errors.CodeForbidden},
		{"Token invalid", tasks.ErrTokenInvalid, tasks.TextCodeTokenInvalid, errors.CodeForbidden},
		{"Token malformed", tasks.ErrTokenMalformed, tasks.TextCodeTokenMalformed, errors.CodeForbidden},
		{"Task not found", tasks.ErrTaskNotFound, tasks.TextCodeTaskNotFound, errors.CodeNotFound},
		{"Route not found", tasks.ErrRouteNotFound, tasks.TextCodeRouteNotFound, errors.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.textCode, tt.err.TextCode)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestTokenFailuresShareClientMessage(t *testing.T) {
	// the three token failure modes are distinct values but present the
	// same message to the client
	assert.Equal(t, tasks.ErrTokenInvalid.Message, tasks.ErrTokenExpired.Message)
	assert.Equal(t, tasks.ErrTokenInvalid.Message, tasks.ErrTokenMalformed.Message)
	assert.NotEqual(t, tasks.ErrTokenInvalid.TextCode, tasks.ErrTokenExpired.TextCode)
}
