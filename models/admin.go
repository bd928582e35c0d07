package models

// AdminSaveResult is the outcome of an admin save. An invalid result carries
// the product as submitted so the form can be redisplayed.
type AdminSaveResult struct {
	Product    *Product         `json:"product"`
	Message    string           `json:"message,omitempty"`
	Validation ValidationResult `json:"validation"`
}

// ImageUpload describes a presigned upload for a product image.
type ImageUpload struct {
	UploadURL string            `json:"upload_url"`
	Headers   map[string]string `json:"headers,omitempty"`
	Key       string            `json:"key"`
	ExpiresIn int64             `json:"expires_in"`
}

// ImageUploadRequest asks for an upload URL for a product image.
type ImageUploadRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}
