package enhance_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"listing-lift-backend/internal/enhance"
)

func TestLookupPreset(t *testing.T) {
	p, ok := enhance.LookupPreset("sky-replacement")
	require.True(t, ok)
	assert.Equal(t, "Sky Replacement", p.Label)
	assert.NotEmpty(t, p.PromptText)

	_, ok = enhance.LookupPreset("make-it-pop")
	assert.False(t, ok)
}

func TestPresetIDsAreUnique(t *testing.T) {
	seen := make(map[string]string)
	for _, cat := range enhance.PresetCategories {
		for _, p := range cat.Presets {
			prev, dup := seen[p.ID]
			assert.False(t, dup, "preset id %q appears in both %q and %q", p.ID, prev, cat.ID)
			seen[p.ID] = cat.ID
		}
	}
}

func TestValidPresetIDs_FiltersUnknown(t *testing.T) {
	got := enhance.ValidPresetIDs([]string{"sky-replacement", "bogus", "window-recovery"})
	assert.Equal(t, []string{"sky-replacement", "window-recovery"}, got)

	assert.Empty(t, enhance.ValidPresetIDs([]string{"bogus"}))
	assert.Empty(t, enhance.ValidPresetIDs(nil))
}

func TestBuildPresetPromptText(t *testing.T) {
	text := enhance.BuildPresetPromptText([]string{"sky-replacement", "brightness-boost"})

	assert.Contains(t, text, "CREATIVE OVERRIDES")
	assert.Contains(t, text, "- Replace the sky")
	assert.Contains(t, text, "- Increase overall brightness")
	assert.True(t, strings.HasPrefix(text, "\n\n"))
}

func TestBuildPresetPromptText_Empty(t *testing.T) {
	assert.Empty(t, enhance.BuildPresetPromptText(nil))
	assert.Empty(t, enhance.BuildPresetPromptText([]string{"unknown-id"}))
}

func TestLegacyTogglesToPresetIDs(t *testing.T) {
	ids := enhance.LegacyTogglesToPresetIDs(map[string]bool{
		"skyReplacement": true,
		"brightness":     true,
		"windowRecovery": false,
	})

	assert.ElementsMatch(t, []string{"sky-replacement", "brightness-boost"}, ids)
}

func TestLegacyTogglesToPresetIDs_Dedupes(t *testing.T) {
	// bedFixing and smoothLinens map to the same canonical preset.
	ids := enhance.LegacyTogglesToPresetIDs(map[string]bool{
		"bedFixing":    true,
		"smoothLinens": true,
	})

	assert.Equal(t, []string{"smooth-linens"}, ids)
}

func TestRoomPrompt_Fallbacks(t *testing.T) {
	kitchen := enhance.RoomPrompt("Kitchen", "Kitchen")
	assert.NotEmpty(t, kitchen)

	// Unknown sub-room falls back to the category, unknown category to Kitchen.
	assert.Equal(t, kitchen, enhance.RoomPrompt("Secret Lab", "Kitchen"))
	assert.Equal(t, kitchen, enhance.RoomPrompt("Secret Lab", "Moon Base"))

	bedroom := enhance.RoomPrompt("Bedroom", "Bedroom")
	assert.NotEqual(t, kitchen, bedroom)
}

func TestIntensityModifier(t *testing.T) {
	moderate := enhance.IntensityModifier("Moderate")
	assert.NotEmpty(t, moderate)
	assert.NotEqual(t, moderate, enhance.IntensityModifier("Light"))
	assert.NotEqual(t, moderate, enhance.IntensityModifier("Significant"))

	// Unknown intensities read as Moderate.
	assert.Equal(t, moderate, enhance.IntensityModifier("extreme"))
	assert.Equal(t, moderate, enhance.IntensityModifier(""))
}

func TestRoomPhotoLimits(t *testing.T) {
	assert.Equal(t, 10, enhance.RoomPhotoLimits["Kitchen"])
	assert.Equal(t, 8, enhance.RoomPhotoLimits["Dining Room/Dining Area"])
	assert.Equal(t, 5, enhance.RoomPhotoLimits["Foyer/Entryway"])
	assert.Equal(t, 8, enhance.RoomPhotoLimits["Miscellaneous"])

	keys := enhance.AllRoomKeys()
	assert.Len(t, keys, len(enhance.RoomPhotoLimits))
	for _, k := range keys {
		assert.Positive(t, enhance.RoomPhotoLimits[k])
	}
}

func TestSanitizeModel(t *testing.T) {
	assert.Equal(t, "gpt-image-1.5", enhance.SanitizeModel(""))
	assert.Equal(t, "gpt-image-1.5", enhance.SanitizeModel("dall-e-9"))
	assert.Equal(t, "flux-kontext", enhance.SanitizeModel("flux-kontext"))
	assert.Equal(t, "magnific", enhance.SanitizeModel("magnific"))
}

func TestModelDisplayName(t *testing.T) {
	assert.NotEmpty(t, enhance.ModelDisplayName("gpt-image-1.5"))
	assert.Equal(t, "unknown-model", enhance.ModelDisplayName("unknown-model"))
}
