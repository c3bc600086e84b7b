package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"

	"github.com/storeops/storefront-console/internal/core/domain"
	"github.com/storeops/storefront-console/internal/core/ports"
)

// ProductGateway implements ports.ProductGateway. Create and Update transmit
// a multipart form — scalar fields as form values, the image (when attached)
// as a file part. An absent image produces no part at all, never a null
// placeholder.
type ProductGateway struct {
	client *Client
}

func NewProductGateway(client *Client) *ProductGateway {
	return &ProductGateway{client: client}
}

func (g *ProductGateway) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := g.client.doJSON(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (g *ProductGateway) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := g.client.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (g *ProductGateway) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	return g.send(ctx, http.MethodPost, "/products", input)
}

func (g *ProductGateway) Update(ctx context.Context, id int64, input ports.ProductInput) (*domain.Product, error) {
	return g.send(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), input)
}

func (g *ProductGateway) Delete(ctx context.Context, id int64) error {
	return g.client.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

func (g *ProductGateway) send(ctx context.Context, method, path string, input ports.ProductInput) (*domain.Product, error) {
	body, contentType, err := encodeProductForm(input)
	if err != nil {
		return nil, err
	}

	var product domain.Product
	if err := g.client.do(ctx, method, path, body, contentType, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// encodeProductForm builds the multipart body for a product mutation.
func encodeProductForm(input ports.ProductInput) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	fields := map[string]string{
		"name":             input.Name,
		"shortDescription": input.ShortDescription,
		"description":      input.Description,
		"quantity":         strconv.FormatInt(input.Quantity, 10),
		"price":            strconv.FormatFloat(input.Price, 'f', -1, 64),
		"isAvailable":      strconv.FormatBool(input.Available),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("encode field %s: %w", name, err)
		}
	}

	if input.Image != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="productImage"; filename=%q`, input.Image.Filename))
		contentType := input.Image.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("encode image part: %w", err)
		}
		if _, err := part.Write(input.Image.Data); err != nil {
			return nil, "", fmt.Errorf("write image data: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
