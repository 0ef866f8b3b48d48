// Package wpclient provides the primary entry point for constructing a
// WordPress REST API client that implements the wp.Client interface.
//
// It layers configuration, HTTP transport and authentication on top of the
// resource interfaces and types defined in the wp package. Most applications
// should import wpclient to build a client, then use the returned wp.Client to
// access the resource clients Posts(), Categories() and Media().
//
// Quick start
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
//
//	  // Anonymous: public endpoints only.
//	  cli, err := wpclient.New(ctx, &wp.Config{SiteURL: "https://blog.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Application password (Users > Profile > Application Passwords).
//	  cli, err = wpclient.New(ctx, &wp.Config{
//	    SiteURL:  "blog.example.com", // https:// is assumed
//	    Username: "admin",
//	    Password: "abcd efgh ijkl mnop",
//	  })
//
//	  // JWT Authentication plugin. The token exchange happens inside New.
//	  cli, err = wpclient.New(ctx, &wp.Config{
//	    SiteURL:    "https://blog.example.com",
//	    Username:   "admin",
//	    Password:   "secret",
//	    AuthMethod: wp.AuthJWT,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  posts, err := cli.Posts().List(ctx, &wp.PostListOptions{PerPage: 10})
//	  if err != nil { log.Fatal(err) }
//	  _ = posts
//	}
//
// # Authenticators
//
// NewApplicationPasswordAuth and NewJWTAuth build authenticators directly for
// use with NewWithAuthenticator, for example when a JWT token is persisted
// between runs and handed back through JWTConfig.Token.
//
// # Helpers
//
// The package also provides convenience constructors NewWithSite,
// NewWithApplicationPassword and NewWithJWT that wrap New with the
// appropriate configuration.
package wpclient
