package wireframes

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestProbeImageMobilePortrait(t *testing.T) {
	info := ProbeImage(encodePNG(t, 375, 667))
	if info == nil {
		t.Fatalf("expected image info")
	}
	if info.Width != 375 || info.Height != 667 {
		t.Fatalf("unexpected dimensions %dx%d", info.Width, info.Height)
	}
	if !info.IsMobileFriendly {
		t.Fatalf("expected mobile friendly for 375x667")
	}
	if info.HasLargeDimensions {
		t.Fatalf("did not expect large dimensions")
	}
	if info.Orientation != "portrait" {
		t.Fatalf("expected portrait, got %s", info.Orientation)
	}
}

func TestProbeImageLargeLandscape(t *testing.T) {
	info := ProbeImage(encodePNG(t, 2400, 1200))
	if info == nil {
		t.Fatalf("expected image info")
	}
	if info.IsMobileFriendly {
		t.Fatalf("did not expect mobile friendly for 2400x1200")
	}
	if !info.HasLargeDimensions {
		t.Fatalf("expected large dimensions for 2400x1200")
	}
	if info.Orientation != "landscape" {
		t.Fatalf("expected landscape, got %s", info.Orientation)
	}
	if info.AspectRatio != 2.0 {
		t.Fatalf("expected aspect 2.0, got %f", info.AspectRatio)
	}
}

func TestProbeImageSquare(t *testing.T) {
	info := ProbeImage(encodePNG(t, 500, 500))
	if info == nil {
		t.Fatalf("expected image info")
	}
	if info.Orientation != "square" {
		t.Fatalf("expected square, got %s", info.Orientation)
	}
	// 500 is below the mobile width threshold.
	if !info.IsMobileFriendly {
		t.Fatalf("expected mobile friendly for 500x500")
	}
}

func TestProbeImageRejectsGarbage(t *testing.T) {
	if info := ProbeImage([]byte("not an image")); info != nil {
		t.Fatalf("expected nil for non-image payload")
	}
	if info := ProbeImage(nil); info != nil {
		t.Fatalf("expected nil for empty payload")
	}
}

func TestIsImageMime(t *testing.T) {
	cases := []struct {
		mime string
		want bool
	}{
		{"image/png", true},
		{"image/jpeg; charset=binary", true},
		{"IMAGE/GIF", true},
		{"application/pdf", false},
		{"text/plain", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsImageMime(tc.mime); got != tc.want {
			t.Fatalf("IsImageMime(%q) = %v, want %v", tc.mime, got, tc.want)
		}
	}
}
