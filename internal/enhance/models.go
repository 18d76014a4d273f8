package enhance

// DefaultModelID is used when a request omits or misspells the model.
const DefaultModelID = "gpt-image-1.5"

// AllowedModels are the image models the enhancement API accepts.
var AllowedModels = []string{"gpt-image-1.5", "flux-kontext", "qwen-image-edit", "magnific"}

var modelDisplayNames = map[string]string{
	"gpt-image-1.5":   "GPT Image 1.5",
	"flux-kontext":    "FLUX.1 Kontext",
	"qwen-image-edit": "Qwen Image Edit",
	"magnific":        "Magnific Upscaler",
}

// SanitizeModel returns the requested model if allowed, otherwise the default.
func SanitizeModel(requested string) string {
	for _, m := range AllowedModels {
		if m == requested {
			return m
		}
	}
	return DefaultModelID
}

// ModelDisplayName returns the human-readable name for a model ID.
func ModelDisplayName(id string) string {
	if name, ok := modelDisplayNames[id]; ok {
		return name
	}
	return id
}
