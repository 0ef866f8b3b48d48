package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/fivetwenty-io/wpclient/internal/http"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesClient(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /wp-json/wp/v2/categories", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hide_empty=true&parent=0", r.URL.RawQuery)
		_, _ = w.Write([]byte(`[{"id": 1, "name": "Uncategorized", "count": 3}]`))
	})
	mux.HandleFunc("POST /wp-json/wp/v2/categories", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"News","slug":"news"}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 9, "name": "News", "slug": "news", "taxonomy": "category"}`))
	})
	mux.HandleFunc("GET /wp-json/wp/v2/categories/9", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 9, "name": "News"}`))
	})
	mux.HandleFunc("POST /wp-json/wp/v2/categories/9", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"description":"Latest"}`, string(body))
		_, _ = w.Write([]byte(`{"id": 9, "name": "News", "description": "Latest"}`))
	})
	mux.HandleFunc("DELETE /wp-json/wp/v2/categories/9", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("force") != "true" {
			w.WriteHeader(http.StatusNotImplemented)
			_, _ = w.Write([]byte(`{"code":"rest_trash_not_supported","message":"Terms do not support trashing. Set 'force=true' to delete."}`))

			return
		}

		_, _ = w.Write([]byte(`{"deleted": true, "previous": {"id": 9}}`))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	categories := NewCategoriesClient(internalhttp.NewClient(server.URL, nil))
	ctx := context.Background()

	parent := 0

	list, err := categories.List(ctx, &wp.CategoryListOptions{Parent: &parent, HideEmpty: true})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Uncategorized", list[0].Name)

	created, err := categories.Create(ctx, &wp.CategoryCreateRequest{Name: "News", Slug: "news"})
	require.NoError(t, err)
	assert.Equal(t, 9, created.ID)

	got, err := categories.Get(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "News", got.Name)

	description := "Latest"

	updated, err := categories.Update(ctx, 9, &wp.CategoryUpdateRequest{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, "Latest", updated.Description)

	_, err = categories.Delete(ctx, 9, false)
	require.Error(t, err)
	assert.Equal(t, wp.KindAPI, wp.KindOf(err))

	payload, err := categories.Delete(ctx, 9, true)
	require.NoError(t, err)
	assert.Equal(t, true, payload["deleted"])
}

func TestCategoriesClient_CreateRequiresName(t *testing.T) {
	t.Parallel()

	categories := NewCategoriesClient(internalhttp.NewClient("http://127.0.0.1:1", nil))

	_, err := categories.Create(context.Background(), &wp.CategoryCreateRequest{})
	require.Error(t, err)
	assert.True(t, wp.IsValidation(err))
}
