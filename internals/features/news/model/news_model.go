package model

import (
	"time"

	"github.com/lib/pq"
)

// NewsModel is one bilingual news post shown on the public site.
type NewsModel struct {
	ID        string         `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TitleAr   string         `gorm:"column:title_ar;type:varchar(255);not null" json:"title_ar"`
	TitleEn   string         `gorm:"column:title_en;type:varchar(255);not null" json:"title_en"`
	ContentAr string         `gorm:"column:content_ar;type:text" json:"content_ar"`
	ContentEn string         `gorm:"column:content_en;type:text" json:"content_en"`
	Images    pq.StringArray `gorm:"column:images;type:text[]" json:"images"`
	Published bool           `gorm:"column:published;not null;default:false" json:"published"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (NewsModel) TableName() string {
	return "news"
}
