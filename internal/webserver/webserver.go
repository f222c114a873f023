package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/cloudwatchr/cloudwatchr/config"
	"github.com/cloudwatchr/cloudwatchr/internal/alertstore"
	"github.com/cloudwatchr/cloudwatchr/internal/metricstore"
)

// Context keys under which the injected stores are available to handlers.
const (
	MetricStoreKey = "cloudwatchr_metric_store"
	AlertStoreKey  = "cloudwatchr_alert_store"
)

const apiPrefix = "/api"

var server *WebServer

// WebServer wraps the echo engine and the stores it injects per request.
type WebServer struct {
	root   *echo.Echo
	config *config.AppConfig
}

// Init creates the global web server instance. Handlers registered
// through ApiGET/ApiPOST/... attach to it.
func Init(cfg *config.AppConfig, metrics *metricstore.Store, alerts *alertstore.Store) {
	server = NewWebServer(cfg, metrics, alerts)
}

func NewWebServer(cfg *config.AppConfig, metrics *metricstore.Store, alerts *alertstore.Store) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Web.Debug
	e.JSONSerializer = NewJsoniterSerializer()
	e.Use(middleware.Recover())
	e.Use(injectStores(metrics, alerts))
	e.Use(zapRequestLogger())
	return &WebServer{root: e, config: cfg}
}

// Listen starts the HTTP listener and blocks until shutdown.
func Listen() error {
	addr := fmt.Sprintf("%s:%d", server.config.Web.Host, server.config.Web.Port)
	zap.L().Info("starting web server", zap.String("listen", addr))
	return server.root.Start(addr)
}

// Shutdown stops the listener gracefully.
func Shutdown(ctx context.Context) error {
	return server.root.Shutdown(ctx)
}

// Handler exposes the underlying handler, used by tests.
func Handler() http.Handler {
	return server.root
}

// GET registers a handler outside the API prefix (health and the like).
func GET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET(apiPrefix+path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST(apiPrefix+path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.root.PUT(apiPrefix+path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.root.DELETE(apiPrefix+path, h)
}

// injectStores makes the stores reachable from any handler through the
// request context, the store itself stays an explicitly constructed
// object owned by the application.
func injectStores(metrics *metricstore.Store, alerts *alertstore.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(MetricStoreKey, metrics)
			c.Set(AlertStoreKey, alerts)
			return next(c)
		}
	}
}

func zapRequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return err
		}
	}
}
