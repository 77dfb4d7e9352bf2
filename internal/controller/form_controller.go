package controller

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/amusetravel-BackEnd/amuseAdmin/internal/dto"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/encoder"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/service"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/errs"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type FormController struct {
	service service.FormService
}

func CreateFormController(e *echo.Group, service service.FormService) {
	c := FormController{
		service: service,
	}

	e.GET("/categories", c.GetCategories)
	e.POST("/forms", c.CreateForm)
	e.GET("/forms/:id", c.GetForm)
	e.DELETE("/forms/:id", c.DeleteForm)
	e.PUT("/forms/:id/basic", c.UpdateBasicInfo)
	e.POST("/forms/:id/categories", c.SelectCategory)
	e.POST("/forms/:id/main-images", c.AddMainImages)
	e.DELETE("/forms/:id/main-images/:fileName", c.RemoveMainImage)
	e.POST("/forms/:id/courses", c.AddCourse)
	e.POST("/forms/:id/tickets", c.AddTicket)
	e.PUT("/forms/:id/main-info", c.ChangeMainInfo)
	e.PUT("/forms/:id/extra-info", c.ChangeExtraInfo)
	e.POST("/forms/:id/submit", c.SubmitForm)
}

func (c *FormController) GetCategories(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", c.service.Categories())
}

func (c *FormController) CreateForm(e echo.Context) error {
	resp, err := c.service.CreateForm(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "form created", resp)
}

func (c *FormController) GetForm(e echo.Context) error {
	resp, err := c.service.GetForm(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *FormController) DeleteForm(e echo.Context) error {
	err := c.service.DeleteForm(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "form discarded", nil)
}

func (c *FormController) UpdateBasicInfo(e echo.Context) error {
	payload := dto.BasicInfoRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateBasicInfo").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.UpdateBasicInfo(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *FormController) SelectCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "SelectCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.SelectCategory(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *FormController) AddMainImages(e echo.Context) error {
	form, err := e.MultipartForm()
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddMainImages").Msg("")
		return response.WriteErrorResponse(e, errs.ErrEmptyUploadRequest, nil)
	}

	headers := form.File["files"]
	for _, header := range headers {
		if header.Size > maxUploadBytes {
			return response.WriteErrorResponse(e, errs.ErrFileTooLarge, header.Filename)
		}
	}

	resp, err := c.service.AddMainImages(e.Request().Context(), e.Param("id"), encoder.FromMultipartList(headers))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *FormController) RemoveMainImage(e echo.Context) error {
	fileName := e.Param("fileName")
	if unescaped, err := url.PathUnescape(fileName); err == nil {
		fileName = unescaped
	}

	resp, err := c.service.RemoveMainImage(e.Request().Context(), e.Param("id"), fileName)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *FormController) AddCourse(e echo.Context) error {
	payload := dto.CourseRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddCourse").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	image, err := formImage(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.AddCourse(e.Request().Context(), e.Param("id"), payload, image)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *FormController) AddTicket(e echo.Context) error {
	payload := dto.TicketRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddTicket").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.AddTicket(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *FormController) ChangeMainInfo(e echo.Context) error {
	payload := dto.RichTextRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "ChangeMainInfo").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.ChangeMainInfo(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *FormController) ChangeExtraInfo(e echo.Context) error {
	payload := dto.RichTextRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "ChangeExtraInfo").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.ChangeExtraInfo(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

// SubmitForm answers with the alert itself. A backend failure is reported as 502.
func (c *FormController) SubmitForm(e echo.Context) error {
	alert, err := c.service.SubmitForm(e.Request().Context(), e.Param("id"))
	if err != nil {
		if alert.Status == "" || errors.Is(err, errs.ErrIncompleteProduct) {
			return response.WriteErrorResponse(e, err, alert.Detail)
		}
		return e.JSON(http.StatusBadGateway, alert)
	}

	return e.JSON(http.StatusOK, alert)
}
