package controller

import (
	"encoding/json"
	"io"

	"github.com/amusetravel-BackEnd/amuseAdmin/internal/service"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/errs"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ComponentController struct {
	service service.ComponentService
}

func CreateComponentController(e *echo.Group, service service.ComponentService) {
	c := ComponentController{
		service: service,
	}

	e.GET("/components", c.ListComponents)
	e.GET("/components/:id", c.GetComponent)
	e.POST("/components/tiles", c.RegisterTile)
	e.PUT("/components/tiles", c.EditTile)
	e.DELETE("/components/:id", c.DeleteComponent)
	e.GET("/main-page", c.ListMainPage)
	e.GET("/main-page/:id", c.GetMainPage)
	e.POST("/main-page", c.CreateMainPage)
}

func (c *ComponentController) ListComponents(e echo.Context) error {
	data, err := c.service.ListComponents(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ComponentController) GetComponent(e echo.Context) error {
	data, err := c.service.GetComponent(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ComponentController) RegisterTile(e echo.Context) error {
	doc, err := readDocument(e, "RegisterTile")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	data, err := c.service.RegisterTile(e.Request().Context(), doc)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "tile registered", data)
}

func (c *ComponentController) EditTile(e echo.Context) error {
	doc, err := readDocument(e, "EditTile")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	data, err := c.service.EditTile(e.Request().Context(), doc)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "tile updated", data)
}

func (c *ComponentController) DeleteComponent(e echo.Context) error {
	data, err := c.service.DeleteComponent(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "component deleted", data)
}

func (c *ComponentController) ListMainPage(e echo.Context) error {
	data, err := c.service.ListMainPage(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ComponentController) GetMainPage(e echo.Context) error {
	data, err := c.service.GetMainPage(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *ComponentController) CreateMainPage(e echo.Context) error {
	doc, err := readDocument(e, "CreateMainPage")
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.CreateMainPage(e.Request().Context(), doc)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "main page component created", resp.Payload())
}

// readDocument reads a request body that is forwarded to the backend as is.
func readDocument(e echo.Context, component string) (json.RawMessage, error) {
	body, err := io.ReadAll(e.Request().Body)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", component).Msg("")
		return nil, errs.ErrClient
	}

	return json.RawMessage(body), nil
}
