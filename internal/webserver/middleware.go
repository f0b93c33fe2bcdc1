package webserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// requestLogger logs method, status and path of every finished request.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogStatus:   true,
		LogURI:      true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.Int("status", v.Status),
				zap.String("uri", v.URI),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			zap.L().Info("request", fields...)
			return nil
		},
	})
}

// bodyLogger logs request bodies of mutating calls at debug level.
func bodyLogger() echo.MiddlewareFunc {
	return middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Skipper: func(c echo.Context) bool {
			switch c.Request().Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				return false
			}
			return true
		},
		Handler: func(c echo.Context, reqBody, _ []byte) {
			zap.L().Debug("request body",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.ByteString("body", reqBody))
		},
	})
}
