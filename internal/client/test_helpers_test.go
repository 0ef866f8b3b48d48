package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/fivetwenty-io/wpclient/internal/http"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewTestClient creates a new anonymous test client with the given base URL.
func NewTestClient(baseURL string) *Client {
	client := &Client{
		httpClient: internalhttp.NewClient(baseURL, nil),
		baseURL:    baseURL,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation struct {
	Name         string
	ID           int
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	WantKind     wp.ErrorKind
	ErrMessage   string
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name          string
	ID            int
	Force         bool
	ExpectedPath  string
	ExpectedQuery string
	StatusCode    int
	Response      interface{}
	WantErr       bool
	WantKind      wp.ErrorKind
	ErrMessage    string
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation,
	getFunc func(*Client) func(context.Context, int) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "GET", request.Method)
				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			getFn := getFunc(NewTestClient(server.URL))
			result, err := getFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)
				assert.Equal(t, testCase.WantKind, wp.KindOf(err))

				if testCase.ErrMessage != "" {
					apiErr, ok := wp.AsError(err)
					require.True(t, ok)
					assert.Equal(t, testCase.ErrMessage, apiErr.Message)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, int, bool) (map[string]any, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "DELETE", request.Method)
				assert.Equal(t, testCase.ExpectedQuery, request.URL.RawQuery)

				if testCase.Response != nil {
					writer.Header().Set("Content-Type", "application/json")
				}

				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			deleteFn := deleteFunc(NewTestClient(server.URL))
			payload, err := deleteFn(context.Background(), testCase.ID, testCase.Force)

			if testCase.WantErr {
				require.Error(t, err)
				assert.Equal(t, testCase.WantKind, wp.KindOf(err))

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, payload)
			} else {
				require.NoError(t, err)
				require.NotNil(t, payload)
			}
		})
	}
}
