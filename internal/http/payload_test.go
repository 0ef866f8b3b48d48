package http_test

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	wphttp "github.com/fivetwenty-io/wpclient/internal/http"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectContentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image/png", wphttp.DetectContentType("photo.PNG"))
	assert.Equal(t, "application/octet-stream", wphttp.DetectContentType("archive.unknownext"))
	assert.Equal(t, "application/octet-stream", wphttp.DetectContentType("Makefile"))
}

func TestUpload_MultipartShape(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/wp-json/wp/v2/media", request.URL.Path)
		assert.Equal(t, "My Photo", request.URL.Query().Get("title"))
		assert.Equal(t, "7", request.URL.Query().Get("post"))

		mediaType, params, err := mime.ParseMediaType(request.Header.Get("Content-Type"))
		assert.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)

		reader := multipart.NewReader(request.Body, params["boundary"])

		part, err := reader.NextPart()
		if !assert.NoError(t, err) {
			return
		}

		assert.Equal(t, "file", part.FormName())
		assert.Equal(t, "photo.png", part.FileName())
		assert.Equal(t, "image/png", part.Header.Get("Content-Type"))

		content, _ := io.ReadAll(part)
		assert.Equal(t, "PNGDATA", string(content))

		_, err = reader.NextPart()
		assert.ErrorIs(t, err, io.EOF)

		writer.WriteHeader(http.StatusCreated)
		_, _ = writer.Write([]byte(`{"id": 10}`))
	}))
	defer server.Close()

	client := wphttp.NewClient(server.URL, nil)

	resp, err := client.Upload(context.Background(), "wp/v2/media",
		wphttp.NewFilePayload("/tmp/photo.png", strings.NewReader("PNGDATA")),
		wp.Params{"title": "My Photo", "post": 7, "caption": ""})
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
}
