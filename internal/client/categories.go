package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/internal/http"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
)

// CategoriesClient implements wp.CategoriesClient.
type CategoriesClient struct {
	httpClient *http.Client
}

// NewCategoriesClient creates a new categories client.
func NewCategoriesClient(httpClient *http.Client) *CategoriesClient {
	return &CategoriesClient{
		httpClient: httpClient,
	}
}

// List implements wp.CategoriesClient.List.
func (c *CategoriesClient) List(ctx context.Context, opts *wp.CategoryListOptions) ([]wp.Category, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathCategories, opts.Params())
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	var categories []wp.Category

	err = decodeList(resp, &categories)
	if err != nil {
		return nil, fmt.Errorf("parsing categories list: %w", err)
	}

	return categories, nil
}

// Get implements wp.CategoriesClient.Get.
func (c *CategoriesClient) Get(ctx context.Context, id int) (*wp.Category, error) {
	resp, err := c.httpClient.Get(ctx, itemPath(constants.APIPathCategories, id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting category: %w", err)
	}

	return decodeCategory(resp)
}

// Create implements wp.CategoriesClient.Create.
func (c *CategoriesClient) Create(ctx context.Context, request *wp.CategoryCreateRequest) (*wp.Category, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathCategories, request)
	if err != nil {
		return nil, fmt.Errorf("creating category: %w", err)
	}

	return decodeCategory(resp)
}

// Update implements wp.CategoriesClient.Update.
func (c *CategoriesClient) Update(ctx context.Context, id int, request *wp.CategoryUpdateRequest) (*wp.Category, error) {
	resp, err := c.httpClient.Post(ctx, itemPath(constants.APIPathCategories, id), request)
	if err != nil {
		return nil, fmt.Errorf("updating category: %w", err)
	}

	return decodeCategory(resp)
}

// Delete implements wp.CategoriesClient.Delete. Terms cannot be trashed, so
// WordPress rejects force=false with a 501.
func (c *CategoriesClient) Delete(ctx context.Context, id int, force bool) (map[string]any, error) {
	resp, err := c.httpClient.Delete(ctx, itemPath(constants.APIPathCategories, id), wp.Params{"force": force})
	if err != nil {
		return nil, fmt.Errorf("deleting category: %w", err)
	}

	return deletePayload(resp)
}

func decodeCategory(resp *http.Response) (*wp.Category, error) {
	var category wp.Category

	err := decodeObject(resp, &category)
	if err != nil {
		return nil, fmt.Errorf("parsing category: %w", err)
	}

	return &category, nil
}
