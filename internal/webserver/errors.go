package webserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// httpErrorHandler is the single error boundary. Unmatched routes become 404,
// client errors keep their status and anything else is a generic 500 whose
// detail only goes to the log.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	body := ErrorResponse{Error: "Internal server error", Code: "INTERNAL_ERROR"}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch {
		case he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed:
			status = http.StatusNotFound
			body = ErrorResponse{Error: "Not found", Code: "NOT_FOUND"}
		case he.Code < http.StatusInternalServerError:
			status = he.Code
			body = ErrorResponse{Error: messageOf(he), Code: "REQUEST_ERROR"}
		}
	}

	if status >= http.StatusInternalServerError {
		zap.L().Error("unhandled request error",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		zap.L().Warn("failed to write error response", zap.Error(err))
	}
}

func messageOf(he *echo.HTTPError) string {
	if msg, ok := he.Message.(string); ok && msg != "" {
		return msg
	}
	if he.Message != nil {
		return fmt.Sprint(he.Message)
	}
	return http.StatusText(he.Code)
}
