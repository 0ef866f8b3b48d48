package wp_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		kind   wp.ErrorKind
		is     error
	}{
		{"unauthorized", http.StatusUnauthorized, wp.KindAuthentication, wp.ErrAuthentication},
		{"forbidden", http.StatusForbidden, wp.KindPermission, wp.ErrPermission},
		{"not found", http.StatusNotFound, wp.KindNotFound, wp.ErrNotFound},
		{"bad request", http.StatusBadRequest, wp.KindValidation, wp.ErrValidation},
		{"server error", http.StatusInternalServerError, wp.KindAPI, wp.ErrAPI},
		{"conflict", http.StatusConflict, wp.KindAPI, wp.ErrAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := wp.Classify(tt.status, map[string]any{"message": "boom"})

			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestClassify_UnauthorizedIgnoresBody(t *testing.T) {
	t.Parallel()

	bodies := []map[string]any{
		nil,
		{},
		{"code": "rest_post_invalid_id", "message": "Invalid post ID."},
		{"data": map[string]any{"status": 404}},
	}

	for _, body := range bodies {
		err := wp.Classify(http.StatusUnauthorized, body)
		assert.Equal(t, wp.KindAuthentication, err.Kind)
		assert.True(t, wp.IsAuthentication(err))
	}
}

func TestClassify_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     map[string]any
		expected string
	}{
		{
			name:     "top-level message",
			body:     map[string]any{"message": "Invalid post ID."},
			expected: "Invalid post ID.",
		},
		{
			name:     "code is not prefixed",
			body:     map[string]any{"code": "rest_post_invalid_id", "message": "Invalid post ID."},
			expected: "Invalid post ID.",
		},
		{
			name:     "nested data message",
			body:     map[string]any{"data": map[string]any{"message": "Nested failure"}},
			expected: "Nested failure",
		},
		{
			name:     "data is not an object",
			body:     map[string]any{"data": "oops"},
			expected: wp.UnknownErrorMessage,
		},
		{
			name:     "empty body",
			body:     map[string]any{},
			expected: wp.UnknownErrorMessage,
		},
		{
			name:     "nil body",
			body:     nil,
			expected: wp.UnknownErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := wp.Classify(http.StatusNotFound, tt.body)
			assert.Equal(t, tt.expected, err.Message)
		})
	}
}

func TestClassify_KeepsCodeAndResponse(t *testing.T) {
	t.Parallel()

	body := map[string]any{"code": "rest_post_invalid_id", "message": "Invalid post ID."}
	err := wp.Classify(http.StatusNotFound, body)

	assert.Equal(t, "rest_post_invalid_id", err.Code)
	assert.Equal(t, body, err.Response)
	assert.Equal(t, "Invalid post ID. (status: 404)", err.Error())
}

func TestClassify_ServerErrorEmptyBody(t *testing.T) {
	t.Parallel()

	err := wp.Classify(http.StatusInternalServerError, map[string]any{})

	assert.Equal(t, wp.KindAPI, err.Kind)
	assert.Equal(t, "Unknown error occurred", err.Message)
}

func TestError_SurvivesWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("getting post: %w", wp.Classify(http.StatusNotFound, nil))

	assert.True(t, wp.IsNotFound(wrapped))
	assert.False(t, wp.IsPermission(wrapped))
	assert.Equal(t, wp.KindNotFound, wp.KindOf(wrapped))

	apiErr, ok := wp.AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestKindOf_PlainError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, wp.KindAPI, wp.KindOf(errors.New("plain")))

	_, ok := wp.AsError(errors.New("plain"))
	assert.False(t, ok)
}

func TestNewTransportError(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp 127.0.0.1:1: connect: connection refused")
	err := wp.NewTransportError(cause)

	assert.Equal(t, wp.KindAPI, err.Kind)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 0, err.StatusCode)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, wp.ErrAPI)
}

func TestNewValidationError(t *testing.T) {
	t.Parallel()

	err := wp.NewValidationError("Invalid status: %s", "bogus")

	assert.True(t, wp.IsValidation(err))
	assert.Equal(t, "Invalid status: bogus", err.Error())
}

func TestErrorKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "api", wp.KindAPI.String())
	assert.Equal(t, "authentication", wp.KindAuthentication.String())
	assert.Equal(t, "not_found", wp.KindNotFound.String())
	assert.Equal(t, "kind(42)", wp.ErrorKind(42).String())
}
