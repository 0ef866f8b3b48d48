package wp

import "io"

// Post statuses accepted by the posts endpoint.
const (
	StatusPublish = "publish"
	StatusFuture  = "future"
	StatusDraft   = "draft"
	StatusPending = "pending"
	StatusPrivate = "private"
	StatusTrash   = "trash"
)

// ValidStatuses lists every post status in the order WordPress documents them.
var ValidStatuses = []string{StatusPublish, StatusFuture, StatusDraft, StatusPending, StatusPrivate, StatusTrash}

// MaxPerPage is the largest page size the REST API accepts.
const MaxPerPage = 100

// Rendered is a field WordPress returns both rendered and, in edit context, raw.
type Rendered struct {
	Rendered  string `json:"rendered"            yaml:"rendered"`
	Raw       string `json:"raw,omitempty"       yaml:"raw,omitempty"`
	Protected bool   `json:"protected,omitempty" yaml:"protected,omitempty"`
}

// Post represents a WordPress post.
type Post struct {
	ID            int      `json:"id"                       yaml:"id"`
	Date          Time     `json:"date"                     yaml:"date"`
	DateGMT       Time     `json:"date_gmt"                 yaml:"date_gmt"`
	Modified      Time     `json:"modified"                 yaml:"modified"`
	ModifiedGMT   Time     `json:"modified_gmt"             yaml:"modified_gmt"`
	Slug          string   `json:"slug"                     yaml:"slug"`
	Status        string   `json:"status"                   yaml:"status"`
	Type          string   `json:"type"                     yaml:"type"`
	Link          string   `json:"link"                     yaml:"link"`
	Title         Rendered `json:"title"                    yaml:"title"`
	Content       Rendered `json:"content"                  yaml:"content"`
	Excerpt       Rendered `json:"excerpt"                  yaml:"excerpt"`
	Author        int      `json:"author"                   yaml:"author"`
	FeaturedMedia int      `json:"featured_media"           yaml:"featured_media"`
	CommentStatus string   `json:"comment_status,omitempty" yaml:"comment_status,omitempty"`
	PingStatus    string   `json:"ping_status,omitempty"    yaml:"ping_status,omitempty"`
	Sticky        bool     `json:"sticky"                   yaml:"sticky"`
	Format        string   `json:"format,omitempty"         yaml:"format,omitempty"`
	Categories    []int    `json:"categories,omitempty"     yaml:"categories,omitempty"`
	Tags          []int    `json:"tags,omitempty"           yaml:"tags,omitempty"`
}

// PostCreateRequest represents a request to create a post.
type PostCreateRequest struct {
	// Title and Content are required.
	Title   string `json:"title"   validate:"required" yaml:"title"`
	Content string `json:"content" validate:"required" yaml:"content"`
	// Status defaults to draft on the server when empty.
	Status        string `json:"status,omitempty"         validate:"omitempty,oneof=publish future draft pending private trash" yaml:"status,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"        yaml:"excerpt,omitempty"`
	Slug          string `json:"slug,omitempty"           yaml:"slug,omitempty"`
	Author        int    `json:"author,omitempty"         yaml:"author,omitempty"`
	FeaturedMedia int    `json:"featured_media,omitempty" yaml:"featured_media,omitempty"`
	Categories    []int  `json:"categories,omitempty"     yaml:"categories,omitempty"`
	Tags          []int  `json:"tags,omitempty"           yaml:"tags,omitempty"`
}

// Validate checks the request before it is sent.
func (r *PostCreateRequest) Validate() error {
	return validateStruct(r)
}

// PostUpdateRequest represents a partial post update. Nil fields are left unchanged.
type PostUpdateRequest struct {
	Title         *string `json:"title,omitempty"          yaml:"title,omitempty"`
	Content       *string `json:"content,omitempty"        yaml:"content,omitempty"`
	Status        *string `json:"status,omitempty"         validate:"omitempty,oneof=publish future draft pending private trash" yaml:"status,omitempty"`
	Excerpt       *string `json:"excerpt,omitempty"        yaml:"excerpt,omitempty"`
	Slug          *string `json:"slug,omitempty"           yaml:"slug,omitempty"`
	FeaturedMedia *int    `json:"featured_media,omitempty" yaml:"featured_media,omitempty"`
	Categories    []int   `json:"categories,omitempty"     yaml:"categories,omitempty"`
	Tags          []int   `json:"tags,omitempty"           yaml:"tags,omitempty"`
}

// Validate checks the request before it is sent.
func (r *PostUpdateRequest) Validate() error {
	return validateStruct(r)
}

// PostListOptions filters a posts listing.
type PostListOptions struct {
	Page       int
	PerPage    int
	Search     string
	Status     string
	Author     int
	Categories []int
	Tags       []int
	OrderBy    string
	Order      string
}

// Params converts the options to query parameters. PerPage is capped at MaxPerPage.
func (o *PostListOptions) Params() Params {
	params := Params{}
	if o == nil {
		return params
	}

	setPaging(params, o.Page, o.PerPage)
	params.Set("search", o.Search).
		Set("status", o.Status).
		Set("categories", o.Categories).
		Set("tags", o.Tags).
		Set("orderby", o.OrderBy).
		Set("order", o.Order)

	if o.Author > 0 {
		params.Set("author", o.Author)
	}

	return params
}

// Category represents a WordPress category term.
type Category struct {
	ID          int    `json:"id"          yaml:"id"`
	Count       int    `json:"count"       yaml:"count"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link"        yaml:"link"`
	Name        string `json:"name"        yaml:"name"`
	Slug        string `json:"slug"        yaml:"slug"`
	Taxonomy    string `json:"taxonomy"    yaml:"taxonomy"`
	Parent      int    `json:"parent"      yaml:"parent"`
}

// CategoryCreateRequest represents a request to create a category.
type CategoryCreateRequest struct {
	Name        string `json:"name"                  validate:"required" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Slug        string `json:"slug,omitempty"        yaml:"slug,omitempty"`
	Parent      int    `json:"parent,omitempty"      yaml:"parent,omitempty"`
}

// Validate checks the request before it is sent.
func (r *CategoryCreateRequest) Validate() error {
	return validateStruct(r)
}

// CategoryUpdateRequest represents a partial category update.
type CategoryUpdateRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Slug        *string `json:"slug,omitempty"        yaml:"slug,omitempty"`
	Parent      *int    `json:"parent,omitempty"      yaml:"parent,omitempty"`
}

// CategoryListOptions filters a categories listing.
type CategoryListOptions struct {
	Page      int
	PerPage   int
	Search    string
	Parent    *int
	HideEmpty bool
}

// Params converts the options to query parameters.
func (o *CategoryListOptions) Params() Params {
	params := Params{}
	if o == nil {
		return params
	}

	setPaging(params, o.Page, o.PerPage)
	params.Set("search", o.Search).Set("parent", o.Parent)

	if o.HideEmpty {
		params.Set("hide_empty", true)
	}

	return params
}

// MediaSize describes one generated image size.
type MediaSize struct {
	File      string `json:"file"       yaml:"file"`
	Width     int    `json:"width"      yaml:"width"`
	Height    int    `json:"height"     yaml:"height"`
	MimeType  string `json:"mime_type"  yaml:"mime_type"`
	SourceURL string `json:"source_url" yaml:"source_url"`
}

// MediaDetails holds attachment metadata.
type MediaDetails struct {
	Width    int                  `json:"width,omitempty"    yaml:"width,omitempty"`
	Height   int                  `json:"height,omitempty"   yaml:"height,omitempty"`
	File     string               `json:"file,omitempty"     yaml:"file,omitempty"`
	Filesize int64                `json:"filesize,omitempty" yaml:"filesize,omitempty"`
	Sizes    map[string]MediaSize `json:"sizes,omitempty"    yaml:"sizes,omitempty"`
}

// Media represents a WordPress media attachment.
type Media struct {
	ID           int          `json:"id"            yaml:"id"`
	Date         Time         `json:"date"          yaml:"date"`
	DateGMT      Time         `json:"date_gmt"      yaml:"date_gmt"`
	Slug         string       `json:"slug"          yaml:"slug"`
	Status       string       `json:"status"        yaml:"status"`
	Type         string       `json:"type"          yaml:"type"`
	Link         string       `json:"link"          yaml:"link"`
	Title        Rendered     `json:"title"         yaml:"title"`
	Author       int          `json:"author"        yaml:"author"`
	Caption      Rendered     `json:"caption"       yaml:"caption"`
	Description  Rendered     `json:"description"   yaml:"description"`
	AltText      string       `json:"alt_text"      yaml:"alt_text"`
	MediaType    string       `json:"media_type"    yaml:"media_type"`
	MimeType     string       `json:"mime_type"     yaml:"mime_type"`
	SourceURL    string       `json:"source_url"    yaml:"source_url"`
	Post         *int         `json:"post"          yaml:"post"`
	MediaDetails MediaDetails `json:"media_details" yaml:"media_details"`
}

// MediaUploadRequest describes a file to upload. Either FilePath or Reader
// must be set; Filename is required with Reader and otherwise derived from
// FilePath.
type MediaUploadRequest struct {
	FilePath    string
	Filename    string
	Reader      io.Reader
	ContentType string
	Title       string
	Caption     string
	AltText     string
	PostID      int
}

// Validate checks the request before it is sent.
func (r *MediaUploadRequest) Validate() error {
	if r.Reader == nil && r.FilePath == "" {
		return NewValidationError("File path is required")
	}

	if r.Reader != nil && r.Filename == "" {
		return NewValidationError("Filename is required when uploading from a reader")
	}

	return nil
}

// Params returns the metadata that travels as query parameters with the upload.
func (r *MediaUploadRequest) Params() Params {
	params := Params{
		"title":    r.Title,
		"caption":  r.Caption,
		"alt_text": r.AltText,
	}

	if r.PostID > 0 {
		params.Set("post", r.PostID)
	}

	return params
}

// MediaUpdateRequest represents a partial media metadata update.
type MediaUpdateRequest struct {
	Title       *string `json:"title,omitempty"       yaml:"title,omitempty"`
	Caption     *string `json:"caption,omitempty"     yaml:"caption,omitempty"`
	AltText     *string `json:"alt_text,omitempty"    yaml:"alt_text,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Post        *int    `json:"post,omitempty"        yaml:"post,omitempty"`
}

// MediaListOptions filters a media listing.
type MediaListOptions struct {
	Page      int
	PerPage   int
	Search    string
	MediaType string
	MimeType  string
	Parent    *int
}

// Params converts the options to query parameters.
func (o *MediaListOptions) Params() Params {
	params := Params{}
	if o == nil {
		return params
	}

	setPaging(params, o.Page, o.PerPage)
	params.Set("search", o.Search).
		Set("media_type", o.MediaType).
		Set("mime_type", o.MimeType).
		Set("parent", o.Parent)

	return params
}

// SiteInfo is the subset of the REST index (GET /wp-json/) the client maps.
type SiteInfo struct {
	Name           string   `json:"name"            yaml:"name"`
	Description    string   `json:"description"     yaml:"description"`
	URL            string   `json:"url"             yaml:"url"`
	Home           string   `json:"home"            yaml:"home"`
	GMTOffset      any      `json:"gmt_offset"      yaml:"gmt_offset"`
	TimezoneString string   `json:"timezone_string" yaml:"timezone_string"`
	Namespaces     []string `json:"namespaces"      yaml:"namespaces"`
}

func setPaging(params Params, page, perPage int) {
	if page > 0 {
		params.Set("page", page)
	}

	if perPage > 0 {
		params.Set("per_page", min(perPage, MaxPerPage))
	}
}
