package engine

import "fmt"

const (
	mobileWidthThreshold = 768
	largeWidthThreshold  = 1920
)

// ImageFeedback maps image dimensions to supplementary feedback. A portrait
// or narrow canvas contributes one persona-filtered mobile phrase; an
// oversized canvas contributes the fixed responsive-breakpoints entry. The
// two triggers are independent and may both fire.
func ImageFeedback(img *ImageMetadata, persona string, seed int) []FeedbackItem {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return nil
	}

	var out []FeedbackItem

	aspect := img.AspectRatio
	if aspect <= 0 {
		aspect = float64(img.Width) / float64(img.Height)
	}

	if aspect < 1 || img.Width < mobileWidthThreshold {
		pool := make([]Phrase, 0, 8)
		for _, p := range phraseTable {
			if p.Category == CategoryMobile {
				pool = append(pool, p)
			}
		}
		pool = filterByStyle(pool, persona)
		if len(pool) > 0 {
			pick := pool[seed%len(pool)]
			out = append(out, newItem(pick, fmt.Sprintf("feedback-image-mobile-%d", seed)))
		}
	}

	if img.Width > largeWidthThreshold {
		out = append(out, newItem(responsivePhrase, fmt.Sprintf("feedback-image-responsive-%d", seed)))
	}

	return out
}
