package http

import (
	"strings"

	"github.com/fivetwenty-io/wpclient/pkg/wp"
)

// DiscoveryPrefix is the path segment every REST namespace is served under.
const DiscoveryPrefix = "wp-json"

// BuildURL joins baseURL and endpoint with exactly one slash, roots the
// endpoint under wp-json/ when it is not already, and appends the surviving
// query parameters.
func BuildURL(baseURL, endpoint string, params wp.Params) string {
	base := strings.TrimRight(baseURL, "/")
	path := strings.TrimLeft(endpoint, "/")

	if !strings.HasPrefix(path, DiscoveryPrefix) {
		path = DiscoveryPrefix + "/" + path
	}

	fullURL := base + "/" + path

	if query := params.Encode(); query != "" {
		fullURL += "?" + query
	}

	return fullURL
}
