package model

import "time"

// GalleryModel is one media item (photo or video) in the public gallery.
type GalleryModel struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Type         string    `gorm:"column:type;type:varchar(20);not null;default:image" json:"type"`
	URL          string    `gorm:"column:url;type:text;not null" json:"url"`
	ThumbnailURL *string   `gorm:"column:thumbnail_url;type:text" json:"thumbnail_url"`
	Published    bool      `gorm:"column:published;not null;default:true" json:"published"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (GalleryModel) TableName() string {
	return "gallery"
}
