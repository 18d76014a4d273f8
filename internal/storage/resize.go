package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
)

// Listing delivery dimensions. Standard photos ship at 3:2; hero photos get
// a higher-resolution cut for the cover slot.
const (
	standardLandscapeWidth  = 3000
	standardLandscapeHeight = 2000
	heroLandscapeWidth      = 4000
	heroLandscapeHeight     = 2667
)

var captionUnsafe = regexp.MustCompile(`[^a-zA-Z0-9 _-]`)
var hyphenRuns = regexp.MustCompile(`-+`)

// TargetDimensions returns the exact output size for a photo.
func TargetDimensions(orientation string, hero bool) (width, height int) {
	if hero {
		if orientation == "portrait" {
			return heroLandscapeHeight, heroLandscapeWidth
		}
		return heroLandscapeWidth, heroLandscapeHeight
	}
	if orientation == "portrait" {
		return standardLandscapeHeight, standardLandscapeWidth
	}
	return standardLandscapeWidth, standardLandscapeHeight
}

// ResizeToListing decodes an enhanced image and produces a JPEG at the exact
// listing dimensions. When the source aspect ratio is within 2% of the target
// it is scaled directly; otherwise it is fit inside the frame and padded with
// white rather than cropped. A light sharpen counteracts upscale softness.
func ResizeToListing(data []byte, orientation string, hero bool) ([]byte, error) {
	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	targetW, targetH := TargetDimensions(orientation, hero)

	bounds := src.Bounds()
	inputRatio := float64(bounds.Dx()) / float64(bounds.Dy())
	targetRatio := float64(targetW) / float64(targetH)

	var out *image.NRGBA
	if math.Abs(inputRatio-targetRatio)/targetRatio < 0.02 {
		out = imaging.Resize(src, targetW, targetH, imaging.Lanczos)
	} else {
		fitted := imaging.Fit(src, targetW, targetH, imaging.Lanczos)
		canvas := imaging.New(targetW, targetH, color.White)
		out = imaging.PasteCenter(canvas, fitted)
	}

	out = imaging.Sharpen(out, 0.8)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: 95}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// DownloadVariant names the file flavor used in delivery filenames.
type DownloadVariant string

const (
	VariantEnhanced DownloadVariant = "enhanced"
	VariantOriginal DownloadVariant = "original"
	VariantHero     DownloadVariant = "hero"
)

// BuildDownloadFileName produces the human-readable filename for delivery
// downloads. Storage keys are untouched; this only names what the client
// saves. index is 1-based and adds a zero-padded prefix for ZIP ordering;
// pass 0 to omit it.
func BuildDownloadFileName(roomCategory, subCategory, caption string, variant DownloadVariant, index int) string {
	room := roomCategory
	if subCategory != "" {
		room = subCategory
	}
	room = strings.NewReplacer("/", "-", "\\", "-").Replace(room)
	room = strings.Join(strings.Fields(room), "-")

	cleaned := captionUnsafe.ReplaceAllString(caption, "")
	cleaned = strings.Join(strings.Fields(cleaned), "-")
	cleaned = hyphenRuns.ReplaceAllString(cleaned, "-")
	cleaned = strings.Trim(cleaned, "-")

	base := room
	if cleaned != "" {
		base = room + "-" + cleaned
	}
	if index > 0 {
		base = fmt.Sprintf("%02d-%s", index, base)
	}

	switch variant {
	case VariantOriginal:
		return base + "-original.jpg"
	case VariantHero:
		return "HERO-" + base + ".jpg"
	default:
		return base + ".jpg"
	}
}
