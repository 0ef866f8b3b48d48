package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/internal/content"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPostsCommand creates the posts command group.
func NewPostsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "posts",
		Aliases: []string{"post"},
		Short:   "Manage posts",
		Long:    "List, create, update, and delete WordPress posts",
	}

	cmd.AddCommand(newPostsCreateCommand())
	cmd.AddCommand(newPostsListCommand())
	cmd.AddCommand(newPostsGetCommand())
	cmd.AddCommand(newPostsUpdateCommand())
	cmd.AddCommand(newDeleteCommand("post", func(cmd *cobra.Command, client wp.Client, id int, force bool) (map[string]any, error) {
		return client.Posts().Delete(commandContext(cmd), id, force)
	}))

	return cmd
}

func newPostsCreateCommand() *cobra.Command {
	var (
		status     string
		categories string
		tags       string
		excerpt    string
		slug       string
		markdown   bool
	)

	cmd := &cobra.Command{
		Use:   "create TITLE CONTENT",
		Short: "Create a post",
		Long:  "Create a new post. CONTENT is HTML unless --markdown is given.",
		Args:  cobra.ExactArgs(2), //nolint:mnd // title and content
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := postBody(args[1], markdown)
			if err != nil {
				return err
			}

			request := &wp.PostCreateRequest{
				Title:   content.Sanitize(args[0]),
				Content: body,
				Status:  status,
				Excerpt: content.Sanitize(excerpt),
				Slug:    slug,
			}

			request.Categories, err = parseIDList(categories)
			if err != nil {
				return err
			}

			request.Tags, err = parseIDList(tags)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			post, err := client.Posts().Create(commandContext(cmd), request)
			if err != nil {
				return fmt.Errorf("failed to create post: %w", err)
			}

			return renderOutput(cmd, post, func(w io.Writer) error {
				return renderPostSummary(w, "Post created successfully!", post)
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", wp.StatusDraft, "post status ("+strings.Join(wp.ValidStatuses, ", ")+")")
	cmd.Flags().StringVar(&categories, "categories", "", "comma-separated category IDs")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tag IDs")
	cmd.Flags().StringVar(&excerpt, "excerpt", "", "post excerpt")
	cmd.Flags().StringVar(&slug, "slug", "", "post slug")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "treat CONTENT as markdown and convert it to HTML")

	return cmd
}

func newPostsListCommand() *cobra.Command {
	var (
		page       int
		perPage    int
		status     string
		search     string
		categories string
		orderBy    string
		order      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts",
		Long:  "List posts, newest first. per-page is capped at 100 by the API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryIDs, err := parseIDList(categories)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			posts, err := client.Posts().List(commandContext(cmd), &wp.PostListOptions{
				Page:       page,
				PerPage:    perPage,
				Status:     status,
				Search:     search,
				Categories: categoryIDs,
				OrderBy:    orderBy,
				Order:      order,
			})
			if err != nil {
				return fmt.Errorf("failed to list posts: %w", err)
			}

			return renderOutput(cmd, posts, func(w io.Writer) error {
				return renderPostsTable(w, posts)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&search, "search", "", "search term")
	cmd.Flags().StringVar(&categories, "categories", "", "comma-separated category IDs")
	cmd.Flags().StringVar(&orderBy, "orderby", "", "sort field (date, title, id, ...)")
	cmd.Flags().StringVar(&order, "order", "", "sort direction (asc, desc)")

	return cmd
}

func newPostsGetCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "get POST_ID",
		Short: "Get post details",
		Long:  "Display a single post with its content rendered as text, markdown or html",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			switch format {
			case constants.ContentFormatText, constants.ContentFormatMarkdown, constants.ContentFormatHTML:
			default:
				return fmt.Errorf("%w: %s", constants.ErrInvalidFormat, format)
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			post, err := client.Posts().Get(commandContext(cmd), id)
			if err != nil {
				return fmt.Errorf("failed to get post: %w", err)
			}

			return renderOutput(cmd, post, func(w io.Writer) error {
				return renderPostDetails(w, post, format)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", constants.ContentFormatText, "content format (text, markdown, html)")

	return cmd
}

func newPostsUpdateCommand() *cobra.Command {
	var (
		title      string
		body       string
		status     string
		excerpt    string
		slug       string
		categories string
		markdown   bool
	)

	cmd := &cobra.Command{
		Use:   "update POST_ID",
		Short: "Update a post",
		Long:  "Update fields of an existing post. Only the flags given are changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			request := &wp.PostUpdateRequest{
				Title:   stringFlag(cmd, "title", content.Sanitize(title)),
				Status:  stringFlag(cmd, "status", status),
				Excerpt: stringFlag(cmd, "excerpt", content.Sanitize(excerpt)),
				Slug:    stringFlag(cmd, "slug", slug),
			}

			if cmd.Flags().Changed("content") {
				converted, err := postBody(body, markdown)
				if err != nil {
					return err
				}

				request.Content = &converted
			}

			request.Categories, err = parseIDList(categories)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("content") && !cmd.Flags().Changed("status") &&
				!cmd.Flags().Changed("excerpt") && !cmd.Flags().Changed("slug") && request.Categories == nil {
				return constants.ErrNothingToUpdate
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			post, err := client.Posts().Update(commandContext(cmd), id, request)
			if err != nil {
				return fmt.Errorf("failed to update post: %w", err)
			}

			return renderOutput(cmd, post, func(w io.Writer) error {
				return renderPostSummary(w, "Post updated successfully!", post)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&body, "content", "", "new content")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	cmd.Flags().StringVar(&excerpt, "excerpt", "", "new excerpt")
	cmd.Flags().StringVar(&slug, "slug", "", "new slug")
	cmd.Flags().StringVar(&categories, "categories", "", "comma-separated category IDs")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "treat --content as markdown and convert it to HTML")

	return cmd
}

// postBody sanitizes content and converts it from markdown when asked.
func postBody(body string, markdown bool) (string, error) {
	body = content.Sanitize(body)
	if !markdown {
		return body, nil
	}

	return content.MarkdownToHTML(body)
}

func renderPostSummary(w io.Writer, heading string, post *wp.Post) error {
	_, _ = fmt.Fprintf(w, "%s %s\n", constants.CheckMarkSymbol, heading)
	_, _ = fmt.Fprintf(w, "  ID: %d\n", post.ID)
	_, _ = fmt.Fprintf(w, "  Title: %s\n", orNA(content.PlainText(post.Title.Rendered)))
	_, _ = fmt.Fprintf(w, "  Status: %s\n", post.Status)
	_, _ = fmt.Fprintf(w, "  Link: %s\n", orNA(post.Link))

	return nil
}

func renderPostsTable(w io.Writer, posts []wp.Post) error {
	if len(posts) == 0 {
		_, _ = io.WriteString(w, "No posts found\n")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Title", "Status", "Date", "Link")

	for _, post := range posts {
		_ = table.Append(
			strconv.Itoa(post.ID),
			content.Preview(post.Title.Rendered, constants.TitleDisplayLength),
			post.Status,
			formatTime(post.Date),
			post.Link,
		)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderPostDetails(w io.Writer, post *wp.Post, format string) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("ID", strconv.Itoa(post.ID))
	_ = table.Append("Title", orNA(content.PlainText(post.Title.Rendered)))
	_ = table.Append("Status", post.Status)
	_ = table.Append("Slug", orNA(post.Slug))
	_ = table.Append("Link", orNA(post.Link))
	_ = table.Append("Date", formatTime(post.Date))
	_ = table.Append("Modified", formatTime(post.Modified))
	_ = table.Append("Author", strconv.Itoa(post.Author))
	_ = table.Append("Categories", joinIDs(post.Categories))
	_ = table.Append("Tags", joinIDs(post.Tags))
	_ = table.Append("Excerpt", orNA(content.Preview(post.Excerpt.Rendered, constants.ExcerptDisplayLength)))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	var body string

	switch format {
	case constants.ContentFormatHTML:
		body = post.Content.Rendered
	case constants.ContentFormatMarkdown:
		body = content.HTMLToMarkdown(post.Content.Rendered, post.Link)
	default:
		body = content.PlainText(post.Content.Rendered)
	}

	_, _ = fmt.Fprintf(w, "\nContent:\n%s\n", body)

	return nil
}

func joinIDs(ids []int) string {
	if len(ids) == 0 {
		return constants.NotAvailable
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, ", ")
}
