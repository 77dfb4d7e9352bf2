package controller

import (
	"errors"
	"net/http"

	"github.com/amusetravel-BackEnd/amuseAdmin/internal/encoder"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/errs"
	"github.com/labstack/echo/v4"
)

const maxUploadBytes = 10 << 20

// formImage returns the optional "image" part of a multipart request, or nil when absent.
func formImage(e echo.Context) (encoder.File, error) {
	header, err := e.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.ErrClient
	}
	if header.Size > maxUploadBytes {
		return nil, errs.ErrFileTooLarge
	}

	return encoder.FromMultipart(header), nil
}
