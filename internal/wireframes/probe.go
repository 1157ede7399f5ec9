package wireframes

import (
	"bytes"
	"image"
	"strings"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
)

const (
	mobileWidthThreshold = 768
	largeWidthThreshold  = 1920
	largeHeightThreshold = 1080
)

// ProbeImage reads only the image header and derives dimension heuristics.
// Returns nil when the payload is not a decodable image.
func ProbeImage(data []byte) *ImageInfo {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return nil
	}

	aspect := float64(cfg.Width) / float64(cfg.Height)

	orientation := "square"
	switch {
	case cfg.Width > cfg.Height:
		orientation = "landscape"
	case cfg.Height > cfg.Width:
		orientation = "portrait"
	}

	return &ImageInfo{
		Width:              cfg.Width,
		Height:             cfg.Height,
		AspectRatio:        aspect,
		Orientation:        orientation,
		IsMobileFriendly:   cfg.Width < mobileWidthThreshold || aspect < 1,
		HasLargeDimensions: cfg.Width > largeWidthThreshold || cfg.Height > largeHeightThreshold,
	}
}

// IsImageMime reports whether a mime type denotes an image payload.
func IsImageMime(mimeType string) bool {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	return strings.HasPrefix(clean, "image/")
}
