package domain

// ImageFile is a binary attachment on a product. Data travels base64-encoded
// in JSON responses and as a raw multipart file part on upload.
type ImageFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// Product models a storefront product as returned by the API.
type Product struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	ShortDescription string     `json:"shortDescription"`
	Description      string     `json:"description"`
	Quantity         int64      `json:"quantity"`
	Price            float64    `json:"price"`
	Available        bool       `json:"isAvailable"`
	Image            *ImageFile `json:"productImage,omitempty"`
}
