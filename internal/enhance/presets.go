package enhance

import "strings"

// Preset represents a manual re-enhancement option. Preset prompt text is
// appended as a creative override on top of the base preservation rules and
// is never used during auto-enhancement.
type Preset struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	PromptText  string   `json:"promptText"`
	RoomTypes   []string `json:"roomTypes"` // ["*"] means universal
}

// PresetCategory groups presets for the admin console.
type PresetCategory struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Presets []Preset `json:"presets"`
}

var PresetCategories = []PresetCategory{
	{
		ID:    "universal",
		Label: "Universal Corrections",
		Presets: []Preset{
			{ID: "sky-replacement", Label: "Sky Replacement", Description: "Replace overcast or gray sky with blue sky",
				PromptText: "Replace the sky with a pleasant blue sky with natural clouds.", RoomTypes: []string{"*"}},
			{ID: "window-recovery", Label: "Window Recovery", Description: "Recover blown-out windows to show exterior view",
				PromptText: "Recover blown-out windows to reveal the exterior view.", RoomTypes: []string{"*"}},
			{ID: "brightness-boost", Label: "Brightness Boost", Description: "Increase overall brightness and open shadows",
				PromptText: "Increase overall brightness and open up shadow areas.", RoomTypes: []string{"*"}},
			{ID: "perspective-fix", Label: "Perspective Fix", Description: "Correct perspective distortion and straighten lines",
				PromptText: "Correct perspective distortion and straighten vertical lines.", RoomTypes: []string{"*"}},
			{ID: "reflection-removal", Label: "Reflection Removal", Description: "Remove photographer reflections from glass/mirrors",
				PromptText: "Remove photographer reflections from mirrors, glass, and screens.", RoomTypes: []string{"*"}},
		},
	},
	{
		ID:    "kitchen",
		Label: "Kitchen",
		Presets: []Preset{
			{ID: "clear-countertops", Label: "Clear Countertops", Description: "Remove clutter from countertops",
				PromptText: "Remove clutter and unnecessary items from countertops, leaving only decorative and essential items.", RoomTypes: []string{"Kitchen"}},
			{ID: "texture-smoothing", Label: "Texture Smoothing", Description: "Smooth and clean surface textures",
				PromptText: "Smooth and clean countertop and surface textures for a polished appearance.", RoomTypes: []string{"Kitchen"}},
			{ID: "add-greenery-kitchen", Label: "Add Greenery", Description: "Add a small potted plant on the counter",
				PromptText: "Add a small potted herb or plant on the counter for warmth.", RoomTypes: []string{"Kitchen"}},
			{ID: "under-cabinet-glow", Label: "Under-Cabinet Glow", Description: "Add warm under-cabinet lighting",
				PromptText: "Enhance or add warm under-cabinet lighting.", RoomTypes: []string{"Kitchen"}},
		},
	},
	{
		ID:    "bedroom",
		Label: "Bedroom",
		Presets: []Preset{
			{ID: "smooth-linens", Label: "Smooth Linens", Description: "Smooth bed linens to appear freshly made",
				PromptText: "Smooth bed linens and duvet to appear freshly made and wrinkle-free.", RoomTypes: []string{"Bedroom"}},
			{ID: "add-throw-pillows", Label: "Add Throw Pillows", Description: "Add accent throw pillows",
				PromptText: "Add accent throw pillows for a styled, inviting look.", RoomTypes: []string{"Bedroom"}},
			{ID: "bedside-styling", Label: "Bedside Styling", Description: "Add books, candle, or plant on nightstand",
				PromptText: "Add tasteful bedside styling (books, candle, or small plant on nightstand).", RoomTypes: []string{"Bedroom"}},
		},
	},
	{
		ID:    "bathroom",
		Label: "Bathroom",
		Presets: []Preset{
			{ID: "clean-grout-tile", Label: "Clean Grout & Tile", Description: "Brighten grout lines and tile surfaces",
				PromptText: "Clean and brighten grout lines and tile surfaces for a fresh appearance.", RoomTypes: []string{"Bathroom"}},
			{ID: "add-toiletries", Label: "Add Toiletries", Description: "Add soap dispenser and amenity basket",
				PromptText: "Add a soap dispenser and small amenity basket on the counter.", RoomTypes: []string{"Bathroom"}},
			{ID: "add-countertop-plant-bathroom", Label: "Add Countertop Plant", Description: "Add a small succulent or orchid",
				PromptText: "Add a small succulent or orchid on the bathroom counter.", RoomTypes: []string{"Bathroom"}},
			{ID: "add-toilet-paper", Label: "Add Toilet Paper", Description: "Add a toilet paper roll if not visible",
				PromptText: "Add a toilet paper roll next to the toilet if one is not visible.", RoomTypes: []string{"Bathroom"}},
			{ID: "add-towels", Label: "Add Towels", Description: "Add towels on towel rack if missing",
				PromptText: "Add fresh, neatly folded white towels on the towel rack if towels are missing or sparse.", RoomTypes: []string{"Bathroom"}},
		},
	},
	{
		ID:    "living-room",
		Label: "Living Room",
		Presets: []Preset{
			{ID: "style-coffee-table", Label: "Style Coffee Table", Description: "Add books, candle, and decorative tray",
				PromptText: "Add tasteful styling to the coffee table (books, candle, decorative tray).", RoomTypes: []string{"Living Room"}},
			{ID: "add-indoor-plant", Label: "Add Indoor Plant", Description: "Add a green plant to bring life to the space",
				PromptText: "Add a green indoor plant to bring life to the space.", RoomTypes: []string{"Living Room"}},
			{ID: "fireplace-glow", Label: "Fireplace Glow", Description: "Add warm firelight if fireplace exists",
				PromptText: "Add warm firelight glow from the fireplace if one exists in the scene.", RoomTypes: []string{"Living Room"}},
		},
	},
	{
		ID:    "dining-room",
		Label: "Dining Room",
		Presets: []Preset{
			{ID: "set-the-table", Label: "Set the Table", Description: "Add plates, glasses, and napkins",
				PromptText: "Set the dining table with plates, glasses, and neatly folded napkins.", RoomTypes: []string{"Dining Room/Dining Area"}},
			{ID: "add-centerpiece", Label: "Add Centerpiece", Description: "Add flowers or candles to the table",
				PromptText: "Add a centerpiece arrangement (flowers or candles) to the dining table.", RoomTypes: []string{"Dining Room/Dining Area"}},
		},
	},
	{
		ID:    "exterior-pool",
		Label: "Exterior / Pool",
		Presets: []Preset{
			{ID: "pool-water-color", Label: "Pool Water Color", Description: "Make pool water crystal clear and blue",
				PromptText: "Enhance pool water to appear crystal clear and vibrant blue.", RoomTypes: []string{"Pool/Hot Tub", "Building Exterior"}},
			{ID: "add-pool-toys", Label: "Add Pool Toys", Description: "Add colorful pool floats and noodles",
				PromptText: "Add colorful pool toys (float, noodles) for a fun, inviting look.", RoomTypes: []string{"Pool/Hot Tub"}},
			{ID: "golden-hour-lighting", Label: "Golden Hour Lighting", Description: "Apply warm golden hour atmosphere",
				PromptText: "Apply warm golden hour lighting for a dramatic, inviting atmosphere.", RoomTypes: []string{"Pool/Hot Tub", "Building Exterior"}},
		},
	},
	{
		ID:    "lawn-backyard",
		Label: "Lawn / Backyard",
		Presets: []Preset{
			{ID: "greener-grass", Label: "Greener Grass", Description: "Make grass lush and vibrant green",
				PromptText: "Enhance grass to appear lush, vibrant green.", RoomTypes: []string{"Lawn/Backyard"}},
			{ID: "enhanced-landscaping", Label: "Enhanced Landscaping", Description: "Fuller hedges and bushes",
				PromptText: "Make hedges and bushes appear fuller and more maintained.", RoomTypes: []string{"Lawn/Backyard"}},
			{ID: "add-string-lights", Label: "Add String Lights", Description: "Add outdoor string lights for ambiance",
				PromptText: "Add warm string lights or outdoor lighting for ambiance.", RoomTypes: []string{"Lawn/Backyard"}},
		},
	},
	{
		ID:    "foyer-entryway",
		Label: "Foyer / Entryway",
		Presets: []Preset{
			{ID: "add-welcome-plant", Label: "Add Welcome Plant", Description: "Add a potted plant near the entryway",
				PromptText: "Add a potted plant near the entryway for a welcoming touch.", RoomTypes: []string{"Foyer/Entryway"}},
			{ID: "door-hardware-polish", Label: "Door/Hardware Polish", Description: "Polish door hardware and handles",
				PromptText: "Polish and enhance the appearance of door hardware and handles.", RoomTypes: []string{"Foyer/Entryway"}},
		},
	},
	{
		ID:    "home-theater",
		Label: "Home Theater",
		Presets: []Preset{
			{ID: "screen-glow", Label: "Screen Glow", Description: "Add movie content glow on the screen",
				PromptText: "Add a movie or content glow on the screen for an immersive feel.", RoomTypes: []string{"Home Theater"}},
			{ID: "ambient-led-lighting", Label: "Ambient LED Lighting", Description: "Add ambient LED strip lighting",
				PromptText: "Enhance or add ambient LED strip lighting for atmosphere.", RoomTypes: []string{"Home Theater"}},
		},
	},
	{
		ID:    "game-room",
		Label: "Game Room",
		Presets: []Preset{
			{ID: "enhanced-ambient-lighting-game", Label: "Enhanced Ambient Lighting", Description: "Enhance ambient or neon lighting",
				PromptText: "Enhance ambient or neon lighting for an energetic atmosphere.", RoomTypes: []string{"Game Room"}},
			{ID: "equipment-polish", Label: "Equipment Polish", Description: "Clean and polish game equipment",
				PromptText: "Clean and polish game equipment (pool table felt, arcade screens).", RoomTypes: []string{"Game Room"}},
		},
	},
}

// presetMap is the flat preset ID lookup built from PresetCategories.
var presetMap = func() map[string]Preset {
	m := make(map[string]Preset)
	for _, cat := range PresetCategories {
		for _, p := range cat.Presets {
			m[p.ID] = p
		}
	}
	return m
}()

// legacyToggleToPreset maps retired boolean columns to canonical preset IDs.
var legacyToggleToPreset = map[string]string{
	"skyReplacement": "sky-replacement",
	"windowRecovery": "window-recovery",
	"brightness":     "brightness-boost",
	"perspective":    "perspective-fix",
	"reflection":     "reflection-removal",
	"bedFixing":      "smooth-linens",
	"addTowels":      "add-towels",
	"smoothLinens":   "smooth-linens",
	"addToiletPaper": "add-toilet-paper",
}

// LookupPreset returns the preset for an ID, if known.
func LookupPreset(id string) (Preset, bool) {
	p, ok := presetMap[id]
	return p, ok
}

// ValidPresetIDs filters the input down to IDs present in the catalog.
func ValidPresetIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := presetMap[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// BuildPresetPromptText renders the creative-override block for the given
// preset IDs. Unknown IDs are skipped; no valid IDs yields an empty string.
func BuildPresetPromptText(presetIDs []string) string {
	var lines []string
	for _, id := range presetIDs {
		if p, ok := presetMap[id]; ok {
			lines = append(lines, "- "+p.PromptText)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return "\n\nCREATIVE OVERRIDES: The following changes are INTENTIONAL and override the preservation rules above. Apply ONLY these specific modifications while keeping everything else exactly as-is:\n" +
		strings.Join(lines, "\n")
}

// LegacyTogglesToPresetIDs converts legacy boolean flags to canonical preset
// IDs for displaying pre-migration version history.
func LegacyTogglesToPresetIDs(flags map[string]bool) []string {
	var ids []string
	seen := make(map[string]bool)
	for key, presetID := range legacyToggleToPreset {
		if flags[key] && !seen[presetID] {
			ids = append(ids, presetID)
			seen[presetID] = true
		}
	}
	return ids
}
