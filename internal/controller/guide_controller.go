package controller

import (
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/dto"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/service"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/errs"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type GuideController struct {
	service service.GuideService
}

func CreateGuideController(e *echo.Group, service service.GuideService) {
	c := GuideController{
		service: service,
	}

	e.POST("/guides", c.CreateGuide)
}

func (c *GuideController) CreateGuide(e echo.Context) error {
	payload := dto.GuideRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "CreateGuide").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	image, err := formImage(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.CreateGuide(e.Request().Context(), payload, image)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
