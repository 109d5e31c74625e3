package dto

// UpdateMediaRequest edits file metadata; the stored bytes never change.
type UpdateMediaRequest struct {
	Name            *string `json:"name"            binding:"omitempty,max=255"`
	AlternativeText *string `json:"alternativeText" binding:"omitempty,max=255"`
	Caption         *string `json:"caption"         binding:"omitempty,max=255"`
}

// MediaFileResponse is the transport representation of an uploaded file.
type MediaFileResponse struct {
	Meta
	Name            string  `json:"name"`
	AlternativeText string  `json:"alternativeText,omitempty"`
	Caption         string  `json:"caption,omitempty"`
	Width           *int    `json:"width,omitempty"`
	Height          *int    `json:"height,omitempty"`
	Ext             string  `json:"ext"`
	Mime            string  `json:"mime"`
	Size            float64 `json:"size"`
	URL             string  `json:"url"`
	Provider        string  `json:"provider"`
	ThumbnailURL    string  `json:"thumbnailUrl,omitempty"`
	MediumURL       string  `json:"mediumUrl,omitempty"`
}

// MediaStatsResponse aggregates the stored files.
type MediaStatsResponse struct {
	TotalFiles  int64   `json:"totalFiles"`
	TotalSizeKB float64 `json:"totalSizeKb"`
	TotalSizeMB float64 `json:"totalSizeMb"`
	ImageCount  int64   `json:"imageCount"`
	PdfCount    int64   `json:"pdfCount"`
}
