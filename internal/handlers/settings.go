package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"listing-lift-backend/internal/database"
	"listing-lift-backend/internal/enhance"
	"listing-lift-backend/internal/models"
)

type SettingsHandler struct {
	db *database.Client
}

func NewSettingsHandler(db *database.Client) *SettingsHandler {
	return &SettingsHandler{db: db}
}

// ListRoomSettings godoc
// @Summary     List room enhancement settings
// @Description Returns every room key with its effective defaults, merged from code defaults and saved overrides
// @Tags        settings
// @Produce     json
// @Security    Bearer
// @Success     200 {array} models.RoomSettingsResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /settings/rooms [get]
func (h *SettingsHandler) ListRoomSettings(c *gin.Context) {
	saved, err := h.db.ListRoomSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list room settings", Message: err.Error()})
		return
	}
	byKey := make(map[string]*models.RoomEnhancementSettings, len(saved))
	for i := range saved {
		byKey[saved[i].RoomKey] = &saved[i]
	}

	keys := enhance.AllRoomKeys()
	out := make([]models.RoomSettingsResponse, 0, len(keys))
	for _, key := range keys {
		resp := models.RoomSettingsResponse{
			RoomKey:          key,
			DefaultModel:     enhance.DefaultModelID,
			DefaultIntensity: string(models.IntensityModerate),
		}
		if s, ok := byKey[key]; ok {
			resp.HasDBRecord = true
			resp.DefaultModel = enhance.SanitizeModel(s.DefaultModel)
			resp.DefaultIntensity = string(s.DefaultIntensity)
			resp.PresetIDs = s.PresetIDs
			resp.CustomPrompt = s.CustomPrompt.String
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}

// UpsertRoomSettings godoc
// @Summary     Save room enhancement settings
// @Description Creates or updates the enhancement defaults for one room key
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.RoomSettingsRequest true "Room defaults"
// @Success     200 {object} models.RoomSettingsResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /settings/rooms [put]
func (h *SettingsHandler) UpsertRoomSettings(c *gin.Context) {
	var req models.RoomSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}
	if _, ok := enhance.RoomPhotoLimits[req.RoomKey]; !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown room key " + req.RoomKey})
		return
	}

	intensity, err := models.ParseIntensity(req.DefaultIntensity)
	if err != nil {
		intensity = models.IntensityModerate
	}
	settings := &models.RoomEnhancementSettings{
		RoomKey:          req.RoomKey,
		DefaultModel:     enhance.SanitizeModel(req.DefaultModel),
		DefaultIntensity: intensity,
		PresetIDs:        enhance.ValidPresetIDs(req.PresetIDs),
		CustomPrompt:     sql.NullString{String: req.CustomPrompt, Valid: req.CustomPrompt != ""},
	}
	if err := h.db.UpsertRoomSettings(c.Request.Context(), settings); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save room settings", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.RoomSettingsResponse{
		RoomKey:          settings.RoomKey,
		DefaultModel:     settings.DefaultModel,
		DefaultIntensity: string(settings.DefaultIntensity),
		PresetIDs:        settings.PresetIDs,
		CustomPrompt:     settings.CustomPrompt.String,
		HasDBRecord:      true,
	})
}

// ListPresets godoc
// @Summary     List enhancement presets
// @Description Returns the preset catalog grouped by category, for building enhancement requests
// @Tags        settings
// @Produce     json
// @Security    Bearer
// @Success     200 {array} enhance.PresetCategory
// @Router      /settings/presets [get]
func (h *SettingsHandler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, enhance.PresetCategories)
}

// ListModels godoc
// @Summary     List enhancement models
// @Description Returns the models an enhancement run may use, with display names
// @Tags        settings
// @Produce     json
// @Security    Bearer
// @Success     200 {array} object
// @Router      /settings/models [get]
func (h *SettingsHandler) ListModels(c *gin.Context) {
	out := make([]gin.H, 0, len(enhance.AllowedModels))
	for _, id := range enhance.AllowedModels {
		out = append(out, gin.H{
			"id":      id,
			"name":    enhance.ModelDisplayName(id),
			"default": id == enhance.DefaultModelID,
		})
	}
	c.JSON(http.StatusOK, out)
}
