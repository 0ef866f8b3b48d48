package constants

import "time"

// Version is the library and CLI version.
const Version = "0.1.0"

// DefaultUserAgent is sent on every request unless overridden.
const DefaultUserAgent = "wpclient-go/" + Version

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultRequestTimeout bounds a single HTTP attempt.
	DefaultRequestTimeout = 30 * time.Second

	// UploadTimeout is used by the CLI for media uploads.
	UploadTimeout = 120 * time.Second
)

// REST API paths, relative to the wp-json/ discovery prefix.
const (
	// APIPathPosts for the posts collection.
	APIPathPosts = "wp/v2/posts"

	// APIPathCategories for the categories collection.
	APIPathCategories = "wp/v2/categories"

	// APIPathMedia for the media collection.
	APIPathMedia = "wp/v2/media"

	// APIPathIndex for the REST index document.
	APIPathIndex = "wp-json/"

	// APIPathJWTToken issues JWT tokens.
	APIPathJWTToken = "jwt-auth/v1/token"

	// APIPathJWTValidate validates a JWT token.
	APIPathJWTValidate = "jwt-auth/v1/token/validate"
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent uploads from the CLI.
	DefaultConcurrencyLimit = 3
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 10

	// ExcerptDisplayLength is the preview length for rendered content in tables.
	ExcerptDisplayLength = 60

	// TitleDisplayLength is the preview length for titles in tables.
	TitleDisplayLength = 50
)

// UI and display constants.
const (
	// CheckMarkSymbol marks a successful operation.
	CheckMarkSymbol = "✓"

	// CrossMarkSymbol marks a failed operation.
	CrossMarkSymbol = "✗"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Content formats accepted by posts get.
const (
	// ContentFormatText renders content as plain text.
	ContentFormatText = "text"

	// ContentFormatMarkdown converts content to Markdown.
	ContentFormatMarkdown = "markdown"

	// ContentFormatHTML prints the rendered HTML.
	ContentFormatHTML = "html"
)

// Confirmation constants.
const (
	// ConfirmationYes for positive confirmations.
	ConfirmationYes = "yes"
)

// JSONIndentSize is the number of spaces for JSON indentation.
const JSONIndentSize = 2
