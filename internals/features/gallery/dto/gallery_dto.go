package dto

// ============================
// Create & Update Request DTO
// ============================

type CreateGalleryRequest struct {
	Type         string  `json:"type" validate:"required,oneof=image video"`
	URL          string  `json:"url" validate:"required,url"`
	ThumbnailURL *string `json:"thumbnail_url" validate:"omitempty,url"`
	Published    *bool   `json:"published"` // defaults to true when omitted
}

type UpdateGalleryRequest struct {
	Type         string  `json:"type" validate:"required,oneof=image video"`
	URL          string  `json:"url" validate:"required,url"`
	ThumbnailURL *string `json:"thumbnail_url" validate:"omitempty,url"`
	Published    bool    `json:"published"`
}
