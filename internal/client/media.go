package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/internal/http"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
)

// MediaClient implements wp.MediaClient.
type MediaClient struct {
	httpClient *http.Client
}

// NewMediaClient creates a new media client.
func NewMediaClient(httpClient *http.Client) *MediaClient {
	return &MediaClient{
		httpClient: httpClient,
	}
}

// List implements wp.MediaClient.List.
func (c *MediaClient) List(ctx context.Context, opts *wp.MediaListOptions) ([]wp.Media, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathMedia, opts.Params())
	if err != nil {
		return nil, fmt.Errorf("listing media: %w", err)
	}

	var items []wp.Media

	err = decodeList(resp, &items)
	if err != nil {
		return nil, fmt.Errorf("parsing media list: %w", err)
	}

	return items, nil
}

// Get implements wp.MediaClient.Get.
func (c *MediaClient) Get(ctx context.Context, id int) (*wp.Media, error) {
	resp, err := c.httpClient.Get(ctx, itemPath(constants.APIPathMedia, id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting media: %w", err)
	}

	return decodeMedia(resp)
}

// Upload implements wp.MediaClient.Upload. Title, caption, alt text and the
// parent post travel as query parameters next to the multipart file.
func (c *MediaClient) Upload(ctx context.Context, request *wp.MediaUploadRequest) (*wp.Media, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	content, filename, closeFn, err := openUpload(request)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	contentType := request.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(filename)
	}

	file := &http.FilePayload{
		Filename:    filename,
		ContentType: contentType,
		Content:     content,
	}

	resp, err := c.httpClient.Upload(ctx, constants.APIPathMedia, file, request.Params())
	if err != nil {
		return nil, fmt.Errorf("uploading media: %w", err)
	}

	return decodeMedia(resp)
}

// Update implements wp.MediaClient.Update.
func (c *MediaClient) Update(ctx context.Context, id int, request *wp.MediaUpdateRequest) (*wp.Media, error) {
	resp, err := c.httpClient.Post(ctx, itemPath(constants.APIPathMedia, id), request)
	if err != nil {
		return nil, fmt.Errorf("updating media: %w", err)
	}

	return decodeMedia(resp)
}

// Delete implements wp.MediaClient.Delete. Attachments do not support the
// trash, so callers normally pass force=true.
func (c *MediaClient) Delete(ctx context.Context, id int, force bool) (map[string]any, error) {
	resp, err := c.httpClient.Delete(ctx, itemPath(constants.APIPathMedia, id), wp.Params{"force": force})
	if err != nil {
		return nil, fmt.Errorf("deleting media: %w", err)
	}

	return deletePayload(resp)
}

// openUpload resolves the request to a reader and filename. A missing file is
// a Validation error.
func openUpload(request *wp.MediaUploadRequest) (io.Reader, string, func(), error) {
	if request.Reader != nil {
		return request.Reader, request.Filename, func() {}, nil
	}

	info, err := os.Stat(request.FilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", nil, wp.NewValidationError("File not found: %s", request.FilePath)
		}

		return nil, "", nil, &wp.Error{Kind: wp.KindValidation, Message: err.Error(), Err: err}
	}

	if info.IsDir() {
		return nil, "", nil, wp.NewValidationError("Not a file: %s", request.FilePath)
	}

	file, err := os.Open(request.FilePath)
	if err != nil {
		return nil, "", nil, &wp.Error{Kind: wp.KindValidation, Message: err.Error(), Err: err}
	}

	filename := request.Filename
	if filename == "" {
		filename = filepath.Base(request.FilePath)
	}

	return file, filename, func() { _ = file.Close() }, nil
}

func decodeMedia(resp *http.Response) (*wp.Media, error) {
	var media wp.Media

	err := decodeObject(resp, &media)
	if err != nil {
		return nil, fmt.Errorf("parsing media: %w", err)
	}

	return &media, nil
}
