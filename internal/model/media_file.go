package model

// MediaFile maps the media_files table. Size is stored in kilobytes.
// ThumbnailURL and MediumURL are the derived image variants; both stay empty
// for non-image uploads.
type MediaFile struct {
	Base
	Name            string  `gorm:"type:varchar(255);not null" json:"name"`
	AlternativeText string  `gorm:"type:varchar(255)"          json:"alternativeText,omitempty"`
	Caption         string  `gorm:"type:varchar(255)"          json:"caption,omitempty"`
	Width           *int    `json:"width,omitempty"`
	Height          *int    `json:"height,omitempty"`
	Ext             string  `gorm:"type:varchar(20)"           json:"ext"`
	Mime            string  `gorm:"type:varchar(100)"          json:"mime"`
	Size            float64 `json:"size"`
	URL             string  `gorm:"type:varchar(500);not null" json:"url"`
	Provider        string  `gorm:"type:varchar(50);default:'local'" json:"provider"`
	ThumbnailURL    string  `gorm:"type:varchar(500)"          json:"thumbnailUrl,omitempty"`
	MediumURL       string  `gorm:"type:varchar(500)"          json:"mediumUrl,omitempty"`
}

func (MediaFile) TableName() string { return "media_files" }

// IsImage reports whether the stored mime type marks an image upload.
func (m *MediaFile) IsImage() bool {
	return len(m.Mime) >= 6 && m.Mime[:6] == "image/"
}
