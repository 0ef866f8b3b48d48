package commands

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMediaServer(t *testing.T, uploads *atomic.Int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /wp-json/wp/v2/media", func(w http.ResponseWriter, r *http.Request) {
		uploads.Add(1)

		assert.Equal(t, "Holiday", r.URL.Query().Get("title"))
		assert.Equal(t, "8", r.URL.Query().Get("post"))

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()

		data, _ := io.ReadAll(file)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":         len(data),
			"title":      map[string]any{"rendered": "Holiday"},
			"mime_type":  header.Header.Get("Content-Type"),
			"source_url": "https://example.com/uploads/" + header.Filename,
		})
	})
	mux.HandleFunc("GET /wp-json/wp/v2/media/5", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 5, "title": {"rendered": "Logo"}, "alt_text": "Company logo",
			"mime_type": "image/png", "media_type": "image", "source_url": "https://example.com/logo.png",
			"media_details": {"width": 512, "height": 256, "sizes": {"thumbnail": {"width": 150, "height": 150, "source_url": "https://example.com/logo-150x150.png"}}}}`))
	})
	mux.HandleFunc("DELETE /wp-json/wp/v2/media/5", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("force"))
		_, _ = w.Write([]byte(`{"deleted": true}`))
	})

	return httptest.NewServer(mux)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMediaUploadCommand(t *testing.T) {
	var uploads atomic.Int32

	server := newMediaServer(t, &uploads)
	defer server.Close()

	dir := t.TempDir()
	first := writeFile(t, dir, "beach.jpg", "JPEG")
	second := writeFile(t, dir, "notes.pdf", "PDFDATA")

	result := executeCommand(t, "", "", "--url", server.URL,
		"media", "upload", first, second, "--title", "Holiday", "--post-id", "8")
	require.NoError(t, result.err)
	assert.Contains(t, result.stdout, "✓ Uploaded beach.jpg")
	assert.Contains(t, result.stdout, "✓ Uploaded notes.pdf")
	assert.Contains(t, result.stdout, "Type: image/jpeg")
	assert.Contains(t, result.stdout, "Type: application/pdf")
	assert.Equal(t, int32(2), uploads.Load())
}

func TestMediaUploadCommand_PartialFailure(t *testing.T) {
	var uploads atomic.Int32

	server := newMediaServer(t, &uploads)
	defer server.Close()

	dir := t.TempDir()
	present := writeFile(t, dir, "beach.jpg", "JPEG")
	missing := filepath.Join(dir, "missing.png")

	result := executeCommand(t, "", "", "--url", server.URL, "-o", "json",
		"media", "upload", present, missing, "--title", "Holiday", "--post-id", "8")
	require.ErrorIs(t, result.err, constants.ErrUploadsFailed)
	assert.Equal(t, int32(1), uploads.Load())

	var results []uploadResult
	require.NoError(t, json.Unmarshal([]byte(result.stdout), &results))
	require.Len(t, results, 2)
	assert.Equal(t, present, results[0].File)
	assert.Empty(t, results[0].Error)
	assert.Equal(t, missing, results[1].File)
	assert.Equal(t, "File not found: "+missing, results[1].Error)
}

func TestMediaUploadCommand_SingleMissingFile(t *testing.T) {
	var uploads atomic.Int32

	server := newMediaServer(t, &uploads)
	defer server.Close()

	missing := filepath.Join(t.TempDir(), "missing.png")

	result := executeCommand(t, "", "", "--url", server.URL, "media", "upload", missing)
	require.Error(t, result.err)
	assert.Equal(t, "File not found: "+missing, errorMessage(result.err))
	assert.Contains(t, result.stdout, "✗ missing.png: File not found: "+missing)
	assert.Equal(t, int32(0), uploads.Load())
}

func TestMediaGetAndDeleteCommands(t *testing.T) {
	var uploads atomic.Int32

	server := newMediaServer(t, &uploads)
	defer server.Close()

	result := executeCommand(t, "", "", "--url", server.URL, "media", "get", "5")
	require.NoError(t, result.err)
	assert.Contains(t, result.stdout, "Company logo")
	assert.Contains(t, result.stdout, "512x256")
	assert.Contains(t, result.stdout, "thumbnail")

	result = executeCommand(t, "", "", "--url", server.URL, "media", "delete", "5", "--force", "--yes")
	require.NoError(t, result.err)
	assert.Contains(t, result.stdout, "✓ Deleted media item 5")
	assert.NotContains(t, result.stdout, "Moved to trash")
}

func TestMediaUpdateCommand_NothingToUpdate(t *testing.T) {
	result := executeCommand(t, "", "", "--url", "https://example.com", "media", "update", "5")
	require.ErrorIs(t, result.err, constants.ErrNothingToUpdate)
}
