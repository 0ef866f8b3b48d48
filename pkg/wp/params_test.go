package wp_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Encode(t *testing.T) {
	t.Parallel()

	var nilInt *int

	parent := 3

	tests := []struct {
		name     string
		params   wp.Params
		expected string
	}{
		{"nil map", nil, ""},
		{"only absent values", wp.Params{"a": nil, "b": "", "c": nilInt}, ""},
		{"sorted", wp.Params{"search": "hello", "page": 2, "per_page": 10}, "page=2&per_page=10&search=hello"},
		{"false is kept", wp.Params{"force": false}, "force=false"},
		{"true", wp.Params{"force": true}, "force=true"},
		{"int slice", wp.Params{"categories": []int{1, 2, 3}}, "categories=1%2C2%2C3"},
		{"empty slice dropped", wp.Params{"categories": []int{}}, ""},
		{"pointer", wp.Params{"parent": &parent}, "parent=3"},
		{"escaping", wp.Params{"search": "a&b c"}, "search=a%26b+c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.params.Encode())
		})
	}
}

func TestParams_Set(t *testing.T) {
	t.Parallel()

	var params wp.Params

	params = params.Set("page", 2).Set("search", "hello")
	assert.Equal(t, "page=2&search=hello", params.Encode())
}

func TestParams_EncodeRoundTrip(t *testing.T) {
	t.Parallel()

	values := []string{"héllo wörld", "a=b&c=d", "100% sure", "slash/and?question", "emoji 🎉"}

	for _, value := range values {
		encoded := wp.Params{"q": value}.Encode()

		decoded, err := url.ParseQuery(encoded)
		require.NoError(t, err)
		assert.Equal(t, value, decoded.Get("q"))
	}
}

func TestParams_Time(t *testing.T) {
	t.Parallel()

	after := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	values := wp.Params{"after": after}.Values()

	assert.Equal(t, "2024-03-01T12:00:00Z", values.Get("after"))
}

func TestPostListOptions_Params(t *testing.T) {
	t.Parallel()

	opts := &wp.PostListOptions{
		Page:       2,
		PerPage:    500,
		Status:     wp.StatusDraft,
		Categories: []int{4, 5},
	}

	values := opts.Params().Values()

	assert.Equal(t, "2", values.Get("page"))
	assert.Equal(t, "100", values.Get("per_page"))
	assert.Equal(t, "draft", values.Get("status"))
	assert.Equal(t, "4,5", values.Get("categories"))
	assert.False(t, values.Has("search"))
	assert.False(t, values.Has("author"))

	var nilOpts *wp.PostListOptions
	assert.Empty(t, nilOpts.Params().Encode())
}

func TestMediaUploadRequest_Params(t *testing.T) {
	t.Parallel()

	req := &wp.MediaUploadRequest{FilePath: "photo.jpg", Title: "Photo", AltText: "A photo", PostID: 7}
	values := req.Params().Values()

	assert.Equal(t, "Photo", values.Get("title"))
	assert.Equal(t, "A photo", values.Get("alt_text"))
	assert.Equal(t, "7", values.Get("post"))
	assert.False(t, values.Has("caption"))
}
