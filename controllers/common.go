// controllers/common.go
package controllers

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stafflyhq/staffly_backend/models"
)

func readBody(c echo.Context) ([]byte, error) {
	return io.ReadAll(c.Request().Body)
}

// envelopeToResponse maps a service envelope onto the REST response shape.
// Business failures come back as 400; the socket layer has no status codes,
// so the envelope message carries the detail either way.
func envelopeToResponse(c echo.Context, env models.Envelope, okMessage string) error {
	if !env.Done {
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: msg,
		})
	}

	msg := env.Message
	if msg == "" {
		msg = okMessage
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: msg,
		Data:    env.Data,
	})
}
