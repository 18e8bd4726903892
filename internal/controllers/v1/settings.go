package v1

import (
	"net/http"

	"github.com/eunsung360/Budget-Management-Dashboard/internal/httputil"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
}

type SettingsEditable struct {
	Theme string `json:"theme" example:"dark"` // dark or light
}

type SettingsResponse struct {
	Error *string          `json:"error"` // The error, if any occurred
	Data  *models.Settings `json:"data"`  // The settings
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the UI settings shared through the storage boundary
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := models.GetSettings()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}

// @Summary		Update settings
// @Description	Updates the UI theme
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200		{object}	SettingsResponse
// @Failure		400		{object}	SettingsResponse
// @Failure		500		{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	var data SettingsEditable
	if err := httputil.BindData(c, &data); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SettingsResponse{Error: &e})
		return
	}

	settings, err := models.SetTheme(data.Theme)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}
