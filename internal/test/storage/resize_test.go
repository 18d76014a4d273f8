package storage_test

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"listing-lift-backend/internal/storage"
)

func encodeJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 120, G: 140, B: 160, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

func TestTargetDimensions(t *testing.T) {
	w, h := storage.TargetDimensions("landscape", false)
	assert.Equal(t, 3000, w)
	assert.Equal(t, 2000, h)

	w, h = storage.TargetDimensions("portrait", false)
	assert.Equal(t, 2000, w)
	assert.Equal(t, 3000, h)

	w, h = storage.TargetDimensions("landscape", true)
	assert.Equal(t, 4000, w)
	assert.Equal(t, 2667, h)

	w, h = storage.TargetDimensions("portrait", true)
	assert.Equal(t, 2667, w)
	assert.Equal(t, 4000, h)
}

func TestResizeToListing_MatchingAspect(t *testing.T) {
	src := encodeJPEG(t, 600, 400)

	out, err := storage.ResizeToListing(src, "landscape", false)
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 3000, img.Bounds().Dx())
	assert.Equal(t, 2000, img.Bounds().Dy())
}

func TestResizeToListing_PadsOddAspect(t *testing.T) {
	src := encodeJPEG(t, 500, 500)

	out, err := storage.ResizeToListing(src, "landscape", false)
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	// Square input still lands on the full listing canvas, padded white.
	assert.Equal(t, 3000, img.Bounds().Dx())
	assert.Equal(t, 2000, img.Bounds().Dy())

	r, g, b, _ := img.At(5, img.Bounds().Dy()/2).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.Greater(t, g, uint32(0xf000))
	assert.Greater(t, b, uint32(0xf000))
}

func TestResizeToListing_PortraitHero(t *testing.T) {
	src := encodeJPEG(t, 400, 600)

	out, err := storage.ResizeToListing(src, "portrait", true)
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 2667, img.Bounds().Dx())
	assert.Equal(t, 4000, img.Bounds().Dy())
}

func TestResizeToListing_BadData(t *testing.T) {
	_, err := storage.ResizeToListing([]byte("not an image"), "landscape", false)
	assert.Error(t, err)
}

func TestBuildDownloadFileName(t *testing.T) {
	name := storage.BuildDownloadFileName("Kitchen", "", "Main kitchen view", storage.VariantEnhanced, 0)
	assert.Equal(t, "Kitchen-Main-kitchen-view.jpg", name)

	name = storage.BuildDownloadFileName("Kitchen", "", "Main kitchen view", storage.VariantEnhanced, 3)
	assert.Equal(t, "03-Kitchen-Main-kitchen-view.jpg", name)

	name = storage.BuildDownloadFileName("Kitchen", "", "Counter shot", storage.VariantOriginal, 0)
	assert.Equal(t, "Kitchen-Counter-shot-original.jpg", name)

	name = storage.BuildDownloadFileName("Kitchen", "", "Counter shot", storage.VariantHero, 0)
	assert.Equal(t, "HERO-Kitchen-Counter-shot.jpg", name)
}

func TestBuildDownloadFileName_SanitizesRoomAndCaption(t *testing.T) {
	name := storage.BuildDownloadFileName("Building Exterior", "Pool/Hot Tub", `Night view! (best)`, storage.VariantEnhanced, 0)
	// Sub-category wins over the category; slashes and punctuation drop out.
	assert.Equal(t, "Pool-Hot-Tub-Night-view-best.jpg", name)
}

func TestBuildDownloadFileName_EmptyCaption(t *testing.T) {
	name := storage.BuildDownloadFileName("Bathroom", "", "!!!", storage.VariantEnhanced, 1)
	assert.Equal(t, "01-Bathroom.jpg", name)
}
