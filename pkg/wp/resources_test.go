package wp_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostCreateRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     wp.PostCreateRequest
		message string
	}{
		{"valid", wp.PostCreateRequest{Title: "Hello", Content: "World", Status: "draft"}, ""},
		{"status omitted", wp.PostCreateRequest{Title: "Hello", Content: "World"}, ""},
		{"missing title", wp.PostCreateRequest{Content: "World"}, "title is required"},
		{"missing content", wp.PostCreateRequest{Title: "Hello"}, "content is required"},
		{"bad status", wp.PostCreateRequest{Title: "Hello", Content: "World", Status: "bogus"}, "Invalid status: bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.message == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, wp.IsValidation(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestPostUpdateRequest_Validate(t *testing.T) {
	t.Parallel()

	good := "publish"
	bad := "archived"

	require.NoError(t, (&wp.PostUpdateRequest{}).Validate())
	require.NoError(t, (&wp.PostUpdateRequest{Status: &good}).Validate())

	err := (&wp.PostUpdateRequest{Status: &bad}).Validate()
	require.Error(t, err)
	assert.Equal(t, "Invalid status: archived", err.Error())
}

func TestAllValidStatuses(t *testing.T) {
	t.Parallel()

	for _, status := range wp.ValidStatuses {
		req := wp.PostCreateRequest{Title: "t", Content: "c", Status: status}
		require.NoError(t, req.Validate(), status)
		assert.True(t, wp.IsValidStatus(status))
	}

	assert.False(t, wp.IsValidStatus("bogus"))
}

func TestCategoryCreateRequest_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, (&wp.CategoryCreateRequest{Name: "News"}).Validate())

	err := (&wp.CategoryCreateRequest{}).Validate()
	require.Error(t, err)
	assert.True(t, wp.IsValidation(err))
	assert.Equal(t, "name is required", err.Error())
}

func TestMediaUploadRequest_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, (&wp.MediaUploadRequest{FilePath: "a.png"}).Validate())
	require.NoError(t, (&wp.MediaUploadRequest{Reader: strings.NewReader("x"), Filename: "a.png"}).Validate())

	err := (&wp.MediaUploadRequest{}).Validate()
	assert.True(t, wp.IsValidation(err))

	err = (&wp.MediaUploadRequest{Reader: strings.NewReader("x")}).Validate()
	assert.True(t, wp.IsValidation(err))
}

func TestPostCreateRequest_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(&wp.PostCreateRequest{Title: "Hello", Content: "<p>World</p>", Status: "draft"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"title":"Hello","content":"<p>World</p>","status":"draft"}`, string(data))
}

func TestPost_UnmarshalWordPressDates(t *testing.T) {
	t.Parallel()

	payload := `{
		"id": 42,
		"date": "2024-05-06T07:08:09",
		"date_gmt": "2024-05-06T05:08:09",
		"modified": null,
		"status": "draft",
		"title": {"rendered": "Hello"},
		"content": {"rendered": "<p>World</p>", "protected": false},
		"categories": [1, 2]
	}`

	var post wp.Post
	require.NoError(t, json.Unmarshal([]byte(payload), &post))

	assert.Equal(t, 42, post.ID)
	assert.Equal(t, "Hello", post.Title.Rendered)
	assert.Equal(t, time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC), post.Date.Time)
	assert.True(t, post.Modified.IsZero())
	assert.Equal(t, []int{1, 2}, post.Categories)
}

func TestTime_RFC3339AndInvalid(t *testing.T) {
	t.Parallel()

	var ts wp.Time
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-06T07:08:09+02:00"`), &ts))
	assert.Equal(t, 5, ts.UTC().Hour())

	err := json.Unmarshal([]byte(`"yesterday"`), &ts)
	require.ErrorIs(t, err, wp.ErrInvalidTime)

	data, err := json.Marshal(wp.Time{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)})
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-01-02T03:04:05"`, string(data))
}

func TestParseAuthMethod(t *testing.T) {
	t.Parallel()

	method, err := wp.ParseAuthMethod("")
	require.NoError(t, err)
	assert.Equal(t, wp.AuthApplicationPassword, method)

	method, err = wp.ParseAuthMethod("JWT")
	require.NoError(t, err)
	assert.Equal(t, wp.AuthJWT, method)

	_, err = wp.ParseAuthMethod("oauth")
	require.ErrorIs(t, err, wp.ErrUnknownAuthMethod)
}
