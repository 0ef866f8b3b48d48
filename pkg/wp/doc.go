// Package wp provides types, interfaces, and helpers for working with the
// WordPress REST API.
//
// # Overview
//
// The wp package defines the domain types (Post, Media, Category, SiteInfo)
// and the interfaces for resource-oriented clients (PostsClient, MediaClient,
// CategoriesClient). A concrete implementation is provided by the wpclient
// package, which wires configuration, transport, and authentication.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/wpclient/pkg/wp"
//	  "github.com/fivetwenty-io/wpclient/pkg/wpclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := wpclient.New(ctx, &wp.Config{
//	    SiteURL:  "https://example.com",
//	    Username: "admin",
//	    Password: "abcd efgh ijkl mnop",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  posts, err := cli.Posts().List(ctx, &wp.PostListOptions{PerPage: 10})
//	  if err != nil { log.Fatal(err) }
//	  _ = posts
//	}
//
// # Errors
//
// Every failure is an *Error carrying one of five kinds: Authentication (401
// or a failed JWT exchange), Permission (403), NotFound (404), Validation (400
// or bad local input) and API (anything else, including transport failures).
// Use IsNotFound and friends, or errors.Is(err, wp.ErrNotFound):
//
//	post, err := cli.Posts().Get(ctx, 99)
//	if wp.IsNotFound(err) {
//	  // handle missing post
//	}
//
// # Query parameters
//
// Params is a plain map. Entries whose value is nil, a nil pointer or an empty
// string are dropped, so optional filters can be set unconditionally.
package wp
