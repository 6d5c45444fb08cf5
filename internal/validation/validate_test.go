package validation

import (
	"testing"

	"github.com/GoArmGo/UserPostApp/internal/apperrors"
	"github.com/GoArmGo/UserPostApp/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	assert.NoError(t, ID("userId", 1))
	assert.Error(t, ID("userId", 0))
	assert.Error(t, ID("userId", -7))
}

func TestUserDTO(t *testing.T) {
	tests := []struct {
		name   string
		in     *dto.UserDTO
		fields []string
	}{
		{"nil dto", nil, []string{"userDTO"}},
		{"valid", &dto.UserDTO{UserName: "alice", Email: "alice@example.com"}, nil},
		{"blank username", &dto.UserDTO{UserName: " ", Email: "alice@example.com"}, []string{"userName"}},
		{"blank email", &dto.UserDTO{UserName: "alice", Email: ""}, []string{"email"}},
		{"bad email", &dto.UserDTO{UserName: "alice", Email: "alice-at-example"}, []string{"email"}},
		{"everything wrong", &dto.UserDTO{UserName: "", Email: ""}, []string{"userName", "email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := UserDTO(tt.in)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)

			got := make([]string, 0, len(validationErr.Fields))
			for _, f := range validationErr.Fields {
				got = append(got, f.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestPostDTO(t *testing.T) {
	assert.NoError(t, PostDTO(&dto.PostDTO{Title: "ok"}))
	assert.Error(t, PostDTO(nil))
	assert.Error(t, PostDTO(&dto.PostDTO{Title: "   "}))
}

func TestPostTitleAt(t *testing.T) {
	assert.NoError(t, PostTitleAt(0, "ok"))

	err := PostTitleAt(2, "")
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "posts[2].title", validationErr.Fields[0].Field)
}
