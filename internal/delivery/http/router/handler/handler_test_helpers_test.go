package handler

import (
	"io"
	"log/slog"

	"github.com/MaulikI8/imperialwatch/internal/delivery/http/middleware"
	"github.com/MaulikI8/imperialwatch/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
)

// newDiscardLogger returns a logger that swallows output so tests stay quiet.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an Echo instance with the same validator and error
// handler the real server uses, so handler errors turn into the wire bodies
// clients actually see.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}
