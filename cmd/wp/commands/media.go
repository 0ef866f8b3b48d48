package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/internal/content"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// uploadResult records the outcome of one file in a media upload.
type uploadResult struct {
	File  string    `json:"file"            yaml:"file"`
	Media *wp.Media `json:"media,omitempty" yaml:"media,omitempty"`
	Error string    `json:"error,omitempty" yaml:"error,omitempty"`

	err error
}

// NewMediaCommand creates the media command group.
func NewMediaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media",
		Short: "Manage media",
		Long:  "Upload, list, update, and delete WordPress media attachments",
	}

	cmd.AddCommand(newMediaUploadCommand())
	cmd.AddCommand(newMediaListCommand())
	cmd.AddCommand(newMediaGetCommand())
	cmd.AddCommand(newMediaUpdateCommand())
	cmd.AddCommand(newDeleteCommand("media item", func(cmd *cobra.Command, client wp.Client, id int, force bool) (map[string]any, error) {
		return client.Media().Delete(commandContext(cmd), id, force)
	}))

	return cmd
}

func newMediaUploadCommand() *cobra.Command {
	var (
		title    string
		altText  string
		caption  string
		postID   int
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "upload FILE...",
		Short: "Upload media files",
		Long:  "Upload one or more files to the media library. Metadata flags apply to every file.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClientWithTimeout(cmd, constants.UploadTimeout)
			if err != nil {
				return err
			}

			results := uploadFiles(cmd, client, args, parallel, func(path string) *wp.MediaUploadRequest {
				return &wp.MediaUploadRequest{
					FilePath: path,
					Title:    content.Sanitize(title),
					AltText:  content.Sanitize(altText),
					Caption:  content.Sanitize(caption),
					PostID:   postID,
				}
			})

			err = renderOutput(cmd, results, func(w io.Writer) error {
				return renderUploadResults(w, results)
			})
			if err != nil {
				return err
			}

			return uploadError(results)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "media title")
	cmd.Flags().StringVar(&altText, "alt-text", "", "alternative text")
	cmd.Flags().StringVar(&caption, "caption", "", "media caption")
	cmd.Flags().IntVar(&postID, "post-id", 0, "attach to this post")
	cmd.Flags().IntVar(&parallel, "parallel", constants.DefaultConcurrencyLimit, "concurrent uploads")

	return cmd
}

// uploadFiles uploads every path with at most parallel requests in flight.
// Results keep the order of paths; one failure does not stop the others.
func uploadFiles(cmd *cobra.Command, client wp.Client, paths []string, parallel int, build func(path string) *wp.MediaUploadRequest) []uploadResult {
	results := make([]uploadResult, len(paths))

	var mutex sync.Mutex

	group, ctx := errgroup.WithContext(commandContext(cmd))
	group.SetLimit(max(parallel, 1))

	for i, path := range paths {
		group.Go(func() error {
			media, err := client.Media().Upload(ctx, build(path))

			mutex.Lock()
			defer mutex.Unlock()

			results[i] = uploadResult{File: path, Media: media, err: err}
			if err != nil {
				results[i].Error = errorMessage(err)
			}

			return nil
		})
	}

	_ = group.Wait()

	return results
}

func uploadError(results []uploadResult) error {
	failed := 0

	for _, result := range results {
		if result.Error != "" {
			failed++
		}
	}

	if failed == 0 {
		return nil
	}

	// A single failed upload reports its own message.
	if len(results) == 1 {
		return results[0].err
	}

	return fmt.Errorf("%w: %d of %d", constants.ErrUploadsFailed, failed, len(results))
}

func newMediaListCommand() *cobra.Command {
	var (
		page      int
		perPage   int
		search    string
		mediaType string
		mimeType  string
		parent    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List media",
		Long:  "List media library items",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			items, err := client.Media().List(commandContext(cmd), &wp.MediaListOptions{
				Page:      page,
				PerPage:   perPage,
				Search:    search,
				MediaType: mediaType,
				MimeType:  mimeType,
				Parent:    intFlag(cmd, "parent", parent),
			})
			if err != nil {
				return fmt.Errorf("failed to list media: %w", err)
			}

			return renderOutput(cmd, items, func(w io.Writer) error {
				return renderMediaTable(w, items)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&search, "search", "", "search term")
	cmd.Flags().StringVar(&mediaType, "media-type", "", "filter by media type (image, video, audio, application)")
	cmd.Flags().StringVar(&mimeType, "mime-type", "", "filter by MIME type")
	cmd.Flags().IntVar(&parent, "parent", 0, "only media attached to this post")

	return cmd
}

func newMediaGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get MEDIA_ID",
		Short: "Get media details",
		Long:  "Display detailed information about a media item, including generated sizes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			media, err := client.Media().Get(commandContext(cmd), id)
			if err != nil {
				return fmt.Errorf("failed to get media: %w", err)
			}

			return renderOutput(cmd, media, func(w io.Writer) error {
				return renderMediaDetails(w, media)
			})
		},
	}
}

func newMediaUpdateCommand() *cobra.Command {
	var (
		title       string
		altText     string
		caption     string
		description string
		postID      int
	)

	cmd := &cobra.Command{
		Use:   "update MEDIA_ID",
		Short: "Update media metadata",
		Long:  "Update title, alt text, caption, description or parent post of a media item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			request := &wp.MediaUpdateRequest{
				Title:       stringFlag(cmd, "title", content.Sanitize(title)),
				AltText:     stringFlag(cmd, "alt-text", content.Sanitize(altText)),
				Caption:     stringFlag(cmd, "caption", content.Sanitize(caption)),
				Description: stringFlag(cmd, "description", content.Sanitize(description)),
				Post:        intFlag(cmd, "post-id", postID),
			}

			if request.Title == nil && request.AltText == nil && request.Caption == nil &&
				request.Description == nil && request.Post == nil {
				return constants.ErrNothingToUpdate
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			media, err := client.Media().Update(commandContext(cmd), id, request)
			if err != nil {
				return fmt.Errorf("failed to update media: %w", err)
			}

			return renderOutput(cmd, media, func(w io.Writer) error {
				_, _ = fmt.Fprintf(w, "%s Media updated successfully!\n", constants.CheckMarkSymbol)

				return renderMediaSummary(w, media)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&altText, "alt-text", "", "new alternative text")
	cmd.Flags().StringVar(&caption, "caption", "", "new caption")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().IntVar(&postID, "post-id", 0, "attach to this post")

	return cmd
}

func renderMediaSummary(w io.Writer, media *wp.Media) error {
	_, _ = fmt.Fprintf(w, "  ID: %d\n", media.ID)
	_, _ = fmt.Fprintf(w, "  Title: %s\n", orNA(content.PlainText(media.Title.Rendered)))
	_, _ = fmt.Fprintf(w, "  URL: %s\n", orNA(media.SourceURL))
	_, _ = fmt.Fprintf(w, "  Type: %s\n", orNA(media.MimeType))

	return nil
}

func renderUploadResults(w io.Writer, results []uploadResult) error {
	for _, result := range results {
		if result.Error != "" {
			_, _ = fmt.Fprintf(w, "%s %s: %s\n", constants.CrossMarkSymbol, filepath.Base(result.File), result.Error)

			continue
		}

		_, _ = fmt.Fprintf(w, "%s Uploaded %s\n", constants.CheckMarkSymbol, filepath.Base(result.File))
		_ = renderMediaSummary(w, result.Media)
	}

	return nil
}

func renderMediaTable(w io.Writer, items []wp.Media) error {
	if len(items) == 0 {
		_, _ = io.WriteString(w, "No media items found\n")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Title", "Type", "Date", "URL")

	for _, item := range items {
		_ = table.Append(
			strconv.Itoa(item.ID),
			content.Preview(item.Title.Rendered, constants.TitleDisplayLength),
			orNA(item.MimeType),
			formatTime(item.Date),
			item.SourceURL,
		)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderMediaDetails(w io.Writer, media *wp.Media) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	attachedTo := constants.NotAvailable
	if media.Post != nil && *media.Post > 0 {
		attachedTo = strconv.Itoa(*media.Post)
	}

	_ = table.Append("ID", strconv.Itoa(media.ID))
	_ = table.Append("Title", orNA(content.PlainText(media.Title.Rendered)))
	_ = table.Append("Alt Text", orNA(media.AltText))
	_ = table.Append("Caption", orNA(content.PlainText(media.Caption.Rendered)))
	_ = table.Append("Media Type", orNA(media.MediaType))
	_ = table.Append("MIME Type", orNA(media.MimeType))
	_ = table.Append("URL", orNA(media.SourceURL))
	_ = table.Append("Attached To", attachedTo)
	_ = table.Append("Date", formatTime(media.Date))

	if media.MediaDetails.Width > 0 {
		_ = table.Append("Dimensions", fmt.Sprintf("%dx%d", media.MediaDetails.Width, media.MediaDetails.Height))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if len(media.MediaDetails.Sizes) > 0 {
		_, _ = io.WriteString(w, "\nSizes:\n")

		sizes := tablewriter.NewWriter(w)
		sizes.Header("Name", "Dimensions", "URL")

		for name, size := range media.MediaDetails.Sizes {
			_ = sizes.Append(name, fmt.Sprintf("%dx%d", size.Width, size.Height), size.SourceURL)
		}

		err = sizes.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
