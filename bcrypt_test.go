package tasks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tasks "github.com/goliatone/go-tasks"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "Valid password",
			password: "securePassword123!",
			wantErr:  false,
		},
		{
			name:     "Empty password",
			password: "",
			wantErr:  true, // bcrypt can hash empty strings!
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := tasks.HashPassword(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, hash)

			err = tasks.ComparePasswordAndHash(tt.password, hash)
			assert.NoError(t, err)
		})
	}
}

func TestComparePasswordAndHash(t *testing.T) {
	hash, err := tasks.HashPassword("correct horse battery staple")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{
			name:     "Matching password",
			password: "correct horse battery staple",
			hash:     hash,
			wantErr:  nil,
		},
		{
			name:     "Wrong password",
			password: "incorrect horse",
			hash:     hash,
			wantErr:  tasks.ErrMismatchedHashAndPassword,
		},
		{
			name:     "Malformed stored hash",
			password: "correct horse battery staple",
			hash:     "not-a-bcrypt-hash",
			wantErr:  tasks.ErrMismatchedHashAndPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tasks.ComparePasswordAndHash(tt.password, tt.hash)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
