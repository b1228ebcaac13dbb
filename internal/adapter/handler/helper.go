package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-recap/errors"
)

// ErrorResponse is the client-facing error shape
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// getRequestID tries to read the request id set by the middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Response() == nil {
		return ""
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleError centralizes error handling and logging. AppErrors keep their
// status code and message; anything else becomes a 500.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}
		return c.JSON(appErr.HTTPCode, ErrorResponse{Detail: appErr.Message})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error"})
}
