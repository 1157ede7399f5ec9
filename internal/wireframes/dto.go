package wireframes

import "time"

// WireframeResponse is the outward-facing representation of a wireframe.
type WireframeResponse struct {
	WireframeID string     `json:"wireframeId"`
	FileName    string     `json:"fileName"`
	MimeType    string     `json:"mimeType"`
	SizeBytes   int64      `json:"sizeBytes"`
	Image       *ImageInfo `json:"image,omitempty"`
	UploadedAt  time.Time  `json:"uploadedAt"`
}

func toResponse(wf Wireframe) WireframeResponse {
	return WireframeResponse{
		WireframeID: wf.ID,
		FileName:    wf.FileName,
		MimeType:    wf.MimeType,
		SizeBytes:   wf.SizeBytes,
		Image:       wf.Image,
		UploadedAt:  wf.CreatedAt,
	}
}
