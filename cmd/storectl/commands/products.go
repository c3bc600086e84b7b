package commands

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
)

// NewProductsCommand groups the product management commands. Listing and
// reading are open to any authenticated role; mutations are admin-gated.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage products",
	}

	cmd.AddCommand(
		newProductsListCommand(),
		newProductsGetCommand(),
		newProductsCreateCommand(),
		newProductsUpdateCommand(),
		newProductsDeleteCommand(),
	)
	return cmd
}

func newProductsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireRoles(domain.RoleAdmin, domain.RoleUser); err != nil {
				return err
			}
			return a.renderProducts(cmd.Context())
		},
	}
}

func newProductsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireRoles(domain.RoleAdmin, domain.RoleUser); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			if err := a.products.FetchOne(cmd.Context(), id); err != nil {
				return err
			}
			if detail, _ := a.products.Detail(); detail != nil {
				a.renderProduct(detail)
			}
			return nil
		},
	}
}

func productInputFlags(cmd *cobra.Command, input *ports.ProductInput, imagePath *string) {
	cmd.Flags().StringVar(&input.Name, "name", "", "product name")
	cmd.Flags().StringVar(&input.ShortDescription, "summary", "", "short description (max 40 chars)")
	cmd.Flags().StringVar(&input.Description, "description", "", "full description")
	cmd.Flags().Int64Var(&input.Quantity, "quantity", 0, "stock quantity")
	cmd.Flags().Float64Var(&input.Price, "price", 0, "unit price")
	cmd.Flags().BoolVar(&input.Available, "available", true, "whether the product is purchasable")
	cmd.Flags().StringVar(imagePath, "image", "", "path to a product image (omitted when empty)")
}

// loadImage reads an image file into an attachment. An empty path yields a
// nil attachment so the request carries no image part at all.
func loadImage(path string) (*domain.ImageFile, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &domain.ImageFile{
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func newProductsCreateCommand() *cobra.Command {
	var input ports.ProductInput
	var imagePath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			if input.Image, err = loadImage(imagePath); err != nil {
				return err
			}
			return a.products.Create(cmd.Context(), input)
		},
	}
	productInputFlags(cmd, &input, &imagePath)
	return cmd
}

func newProductsUpdateCommand() *cobra.Command {
	var input ports.ProductInput
	var imagePath string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			if input.Image, err = loadImage(imagePath); err != nil {
				return err
			}
			return a.products.Update(cmd.Context(), id, input)
		},
	}
	productInputFlags(cmd, &input, &imagePath)
	return cmd
}

func newProductsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if err := a.requireRoles(domain.RoleAdmin); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			return a.products.Delete(cmd.Context(), id)
		},
	}
}
