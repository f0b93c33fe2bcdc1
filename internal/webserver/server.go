// Package webserver hosts the echo instance that serves the catalog API.
package webserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/talkincode/catalogd/config"
	_ "github.com/talkincode/catalogd/internal/docs"
)

// ApiPrefix is the path prefix of every CRUD route.
const ApiPrefix = "/api"

// Server wraps the echo instance serving the catalog API.
type Server struct {
	root *echo.Echo
	api  *echo.Group
	cfg  config.WebConfig
}

// NewServer builds the echo instance with the error boundary, logging, CORS
// and the docs endpoint installed. Routes are added with the Api* methods.
func NewServer(cfg config.WebConfig) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.JSONSerializer = newJSONSerializer()
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(requestLogger())
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			zap.L().Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
				zap.ByteString("stack", stack))
			return err
		},
	}))
	if len(cfg.CorsOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.CorsOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		}))
	}
	e.Use(bodyLogger())

	if cfg.DocsEnabled {
		e.GET("/api-docs", func(c echo.Context) error {
			return c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
		})
		e.GET("/api-docs/*", echoSwagger.WrapHandler)
	}

	return &Server{
		root: e,
		api:  e.Group(ApiPrefix),
		cfg:  cfg,
	}
}

// Echo returns the underlying echo instance.
func (s *Server) Echo() *echo.Echo {
	return s.root
}

func (s *Server) ApiGET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	s.api.GET(path, h, m...)
}

func (s *Server) ApiPOST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	s.api.POST(path, h, m...)
}

func (s *Server) ApiPATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	s.api.PATCH(path, h, m...)
}

func (s *Server) ApiDELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	s.api.DELETE(path, h, m...)
}

// Start listens on the configured address and blocks until the server stops.
// It returns http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	zap.S().Infof("catalog api listening on %s", s.cfg.Addr())
	if s.cfg.DocsEnabled {
		zap.S().Infof("swagger ui available at http://%s/api-docs/index.html", s.cfg.Addr())
	}
	return s.root.Start(s.cfg.Addr())
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.root.Shutdown(ctx)
}
