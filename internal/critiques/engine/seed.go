package engine

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Seed derives the generation seed from the normalized inputs. Identical
// normalized inputs always produce the same seed; any change to the trimmed
// description, the image dimensions, or the persona changes it (modulo rare
// hash collisions, which are acceptable).
func Seed(description string, img *ImageMetadata, persona string) int {
	key := normalizeText(description) + "|" + imageDimensionKey(img) + "|" + persona
	return foldHash(key)
}

// imageDimensionKey is "{width}-{height}", or empty when no usable image
// metadata is present.
func imageDimensionKey(img *ImageMetadata) string {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return ""
	}
	return fmt.Sprintf("%d-%d", img.Width, img.Height)
}

// normalizeText lowercases and trims surrounding whitespace. Interior
// whitespace is preserved: "a  b" and "a b" are different descriptions.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// foldHash is a polynomial rolling hash folded to a non-negative int.
func foldHash(s string) int {
	var h uint32
	for _, r := range s {
		h = h*31 + uint32(r)
	}
	return int(h & 0x7fffffff)
}

// orderKey ranks a phrase for seeded ordering. FNV-1a over the phrase text
// concatenated with the seed stands in for a random shuffle: reproducible,
// not statistically uniform, and that is all "seeded" promises here.
func orderKey(text string, seed int, salt string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	fmt.Fprintf(h, "%d", seed)
	if salt != "" {
		h.Write([]byte(salt))
	}
	return h.Sum32()
}
