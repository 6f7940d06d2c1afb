package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/hadir/core"
	"github.com/trezcool/hadir/core/banner"
	"github.com/trezcool/hadir/core/display"
)

var errInvalidIndex = core.NewValidationError(nil, core.FieldError{Field: "index", Error: "index must be a number"})

type displaySettings struct {
	DarkMode *bool `json:"dark_mode" validate:"required"`
}

type settingsApi struct {
	banners *banner.List
	prefs   *display.Preferences
}

func registerSettingsAPI(g *echo.Group, banners *banner.List, prefs *display.Preferences) {
	api := settingsApi{banners: banners, prefs: prefs}

	bg := g.Group("/banners")
	bg.GET("", api.listBanners)
	bg.POST("", api.addBanner)
	bg.DELETE("", api.resetBanners)
	bg.DELETE("/:index", api.removeBanner)

	sg := g.Group("/settings")
	sg.GET("/display", api.retrieveDisplay)
	sg.PUT("/display", api.updateDisplay)
}

// Handlers

func (api *settingsApi) listBanners(ctx echo.Context) error {
	banners, err := api.banners.All()
	if err != nil {
		return errors.Wrap(err, "listing banners")
	}
	return ctx.JSON(http.StatusOK, banners)
}

func (api *settingsApi) addBanner(ctx echo.Context) error {
	var data banner.NewBanner
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewBanner")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	banners, err := api.banners.Add(data.Ref)
	if err != nil {
		return errors.Wrap(err, "adding banner")
	}
	return ctx.JSON(http.StatusCreated, banners)
}

func (api *settingsApi) removeBanner(ctx echo.Context) error {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return errInvalidIndex
	}

	banners, err := api.banners.Remove(index)
	if err != nil {
		if errors.Cause(err) == banner.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "removing banner")
	}
	return ctx.JSON(http.StatusOK, banners)
}

func (api *settingsApi) retrieveDisplay(ctx echo.Context) error {
	on := api.prefs.DarkMode()
	return ctx.JSON(http.StatusOK, displaySettings{DarkMode: &on})
}

func (api *settingsApi) updateDisplay(ctx echo.Context) error {
	var data displaySettings
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to displaySettings")
	}
	if err := core.Validate.Struct(data); err != nil {
		return err
	}

	if err := api.prefs.SetDarkMode(*data.DarkMode); err != nil {
		return errors.Wrap(err, "saving display settings")
	}
	return ctx.JSON(http.StatusOK, data)
}

func (api *settingsApi) resetBanners(ctx echo.Context) error {
	banners, err := api.banners.Reset()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, banners)
}
