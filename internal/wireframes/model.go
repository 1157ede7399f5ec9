package wireframes

import "time"

// ImageInfo captures the dimension heuristics probed from an uploaded image.
type ImageInfo struct {
	Width              int     `json:"width"`
	Height             int     `json:"height"`
	AspectRatio        float64 `json:"aspectRatio"`
	Orientation        string  `json:"orientation"`
	IsMobileFriendly   bool    `json:"isMobileFriendly"`
	HasLargeDimensions bool    `json:"hasLargeDimensions"`
}

// Wireframe represents an uploaded wireframe owned by a user.
type Wireframe struct {
	ID               string
	UserID           string
	FileName         string
	OriginalFilename string
	MimeType         string
	ContentType      string
	SizeBytes        int64
	StorageProvider  string
	StorageKey       string
	ExtractedTextKey string
	ExtractedAt      *time.Time
	Image            *ImageInfo
	CreatedAt        time.Time
}
