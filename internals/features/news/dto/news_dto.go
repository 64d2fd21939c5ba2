package dto

// ============================
// Create & Update Request DTO
// ============================

type CreateNewsRequest struct {
	TitleAr   string   `json:"title_ar" validate:"required,max=255"`
	TitleEn   string   `json:"title_en" validate:"required,max=255"`
	ContentAr string   `json:"content_ar"`
	ContentEn string   `json:"content_en"`
	Images    []string `json:"images" validate:"dive,url"`
	Published bool     `json:"published"`
}

type UpdateNewsRequest struct {
	TitleAr   string   `json:"title_ar" validate:"required,max=255"`
	TitleEn   string   `json:"title_en" validate:"required,max=255"`
	ContentAr string   `json:"content_ar"`
	ContentEn string   `json:"content_en"`
	Images    []string `json:"images" validate:"dive,url"`
	Published bool     `json:"published"`
}
