package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/internal/http"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
)

// PostsClient implements wp.PostsClient.
type PostsClient struct {
	httpClient *http.Client
}

// NewPostsClient creates a new posts client.
func NewPostsClient(httpClient *http.Client) *PostsClient {
	return &PostsClient{
		httpClient: httpClient,
	}
}

// List implements wp.PostsClient.List.
func (c *PostsClient) List(ctx context.Context, opts *wp.PostListOptions) ([]wp.Post, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathPosts, opts.Params())
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	var posts []wp.Post

	err = decodeList(resp, &posts)
	if err != nil {
		return nil, fmt.Errorf("parsing posts list: %w", err)
	}

	return posts, nil
}

// Get implements wp.PostsClient.Get.
func (c *PostsClient) Get(ctx context.Context, id int) (*wp.Post, error) {
	resp, err := c.httpClient.Get(ctx, itemPath(constants.APIPathPosts, id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting post: %w", err)
	}

	var post wp.Post

	err = decodeObject(resp, &post)
	if err != nil {
		return nil, fmt.Errorf("parsing post: %w", err)
	}

	return &post, nil
}

// Create implements wp.PostsClient.Create.
func (c *PostsClient) Create(ctx context.Context, request *wp.PostCreateRequest) (*wp.Post, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathPosts, request)
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}

	var post wp.Post

	err = decodeObject(resp, &post)
	if err != nil {
		return nil, fmt.Errorf("parsing created post: %w", err)
	}

	return &post, nil
}

// Update implements wp.PostsClient.Update. WordPress updates via POST to the item.
func (c *PostsClient) Update(ctx context.Context, id int, request *wp.PostUpdateRequest) (*wp.Post, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, itemPath(constants.APIPathPosts, id), request)
	if err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	var post wp.Post

	err = decodeObject(resp, &post)
	if err != nil {
		return nil, fmt.Errorf("parsing updated post: %w", err)
	}

	return &post, nil
}

// Delete implements wp.PostsClient.Delete.
func (c *PostsClient) Delete(ctx context.Context, id int, force bool) (map[string]any, error) {
	resp, err := c.httpClient.Delete(ctx, itemPath(constants.APIPathPosts, id), wp.Params{"force": force})
	if err != nil {
		return nil, fmt.Errorf("deleting post: %w", err)
	}

	return deletePayload(resp)
}
