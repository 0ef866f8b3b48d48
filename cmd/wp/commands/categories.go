package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fivetwenty-io/wpclient/internal/constants"
	"github.com/fivetwenty-io/wpclient/internal/content"
	"github.com/fivetwenty-io/wpclient/pkg/wp"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCategoriesCommand creates the categories command group.
func NewCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cat"},
		Short:   "Manage categories",
		Long:    "List, create, update, and delete WordPress categories",
	}

	cmd.AddCommand(newCategoriesCreateCommand())
	cmd.AddCommand(newCategoriesListCommand())
	cmd.AddCommand(newCategoriesGetCommand())
	cmd.AddCommand(newCategoriesUpdateCommand())
	cmd.AddCommand(newDeleteCommand("category", func(cmd *cobra.Command, client wp.Client, id int, force bool) (map[string]any, error) {
		return client.Categories().Delete(commandContext(cmd), id, force)
	}))

	return cmd
}

func newCategoriesCreateCommand() *cobra.Command {
	var (
		description string
		slug        string
		parent      int
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a category",
		Long:  "Create a new category, optionally below a parent category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			category, err := client.Categories().Create(commandContext(cmd), &wp.CategoryCreateRequest{
				Name:        content.Sanitize(args[0]),
				Description: content.Sanitize(description),
				Slug:        slug,
				Parent:      parent,
			})
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			return renderOutput(cmd, category, func(w io.Writer) error {
				return renderCategorySummary(w, "Category created successfully!", category)
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "category description")
	cmd.Flags().StringVar(&slug, "slug", "", "category slug")
	cmd.Flags().IntVar(&parent, "parent", 0, "parent category ID")

	return cmd
}

func newCategoriesListCommand() *cobra.Command {
	var (
		page      int
		perPage   int
		search    string
		parent    int
		hideEmpty bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  "List categories with their post counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			categories, err := client.Categories().List(commandContext(cmd), &wp.CategoryListOptions{
				Page:      page,
				PerPage:   perPage,
				Search:    search,
				Parent:    intFlag(cmd, "parent", parent),
				HideEmpty: hideEmpty,
			})
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			return renderOutput(cmd, categories, func(w io.Writer) error {
				return renderCategoriesTable(w, categories)
			})
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", constants.DefaultPageSize, "results per page")
	cmd.Flags().StringVar(&search, "search", "", "search term")
	cmd.Flags().IntVar(&parent, "parent", 0, "only children of this category (0 for top level)")
	cmd.Flags().BoolVar(&hideEmpty, "hide-empty", false, "skip categories without posts")

	return cmd
}

func newCategoriesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CATEGORY_ID",
		Short: "Get category details",
		Long:  "Display detailed information about a specific category",
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

			category, err := client.Categories().Get(commandContext(cmd), id)
			if err != nil {
				return fmt.Errorf("failed to get category: %w", err)
			}

			return renderOutput(cmd, category, func(w io.Writer) error {
				return renderCategoryDetails(w, category)
			})
		},
	}
}

func newCategoriesUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
		slug        string
		parent      int
	)

	cmd := &cobra.Command{
		Use:   "update CATEGORY_ID",
		Short: "Update a category",
		Long:  "Update fields of an existing category. Only the flags given are changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			request := &wp.CategoryUpdateRequest{
				Name:        stringFlag(cmd, "name", content.Sanitize(name)),
				Description: stringFlag(cmd, "description", content.Sanitize(description)),
				Slug:        stringFlag(cmd, "slug", slug),
				Parent:      intFlag(cmd, "parent", parent),
			}

			if request.Name == nil && request.Description == nil && request.Slug == nil && request.Parent == nil {
				return constants.ErrNothingToUpdate
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			category, err := client.Categories().Update(commandContext(cmd), id, request)
			if err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}

			return renderOutput(cmd, category, func(w io.Writer) error {
				return renderCategorySummary(w, "Category updated successfully!", category)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&slug, "slug", "", "new slug")
	cmd.Flags().IntVar(&parent, "parent", 0, "new parent category ID")

	return cmd
}

func renderCategorySummary(w io.Writer, heading string, category *wp.Category) error {
	_, _ = fmt.Fprintf(w, "%s %s\n", constants.CheckMarkSymbol, heading)
	_, _ = fmt.Fprintf(w, "  ID: %d\n", category.ID)
	_, _ = fmt.Fprintf(w, "  Name: %s\n", category.Name)
	_, _ = fmt.Fprintf(w, "  Slug: %s\n", orNA(category.Slug))

	return nil
}

func renderCategoriesTable(w io.Writer, categories []wp.Category) error {
	if len(categories) == 0 {
		_, _ = io.WriteString(w, "No categories found\n")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Slug", "Parent", "Posts")

	for _, category := range categories {
		_ = table.Append(
			strconv.Itoa(category.ID),
			content.Truncate(category.Name, constants.TitleDisplayLength),
			category.Slug,
			strconv.Itoa(category.Parent),
			strconv.Itoa(category.Count),
		)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderCategoryDetails(w io.Writer, category *wp.Category) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("ID", strconv.Itoa(category.ID))
	_ = table.Append("Name", category.Name)
	_ = table.Append("Slug", orNA(category.Slug))
	_ = table.Append("Description", orNA(category.Description))
	_ = table.Append("Parent", strconv.Itoa(category.Parent))
	_ = table.Append("Posts", strconv.Itoa(category.Count))
	_ = table.Append("Link", orNA(category.Link))

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
