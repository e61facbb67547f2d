package rest

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) SetupRoutes(engine *echo.Echo) {
	engine.GET("/health", h.echoHandler(h.HealthCheck))
	engine.GET("/version", h.echoHandler(h.Version))
	engine.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))

	api := engine.Group("/api", echo.WrapMiddleware(LoggerMiddleware))
	// v1 routes
	{
		apiV1 := api.Group("/v1", echo.WrapMiddleware(h.AuthMiddleware))

		apiV1.GET("/processes", h.echoHandler(h.ListProcesses))
		apiV1.POST("/processes/:pid/terminate", h.echoHandlerWithParams(h.TerminateProcess))

		apiV1.GET("/tabs", h.echoHandler(h.ListTabs))
		apiV1.POST("/tabs/close", h.echoHandler(h.CloseTabs))

		apiV1.GET("/health-checks", h.echoHandler(h.ListHealthChecks))

		apiV1.GET("/cleanup/categories", h.echoHandler(h.ListCleanupCategories))
		apiV1.GET("/cleanup/:category/estimate", h.echoHandlerWithParams(h.EstimateCleanup))
		apiV1.POST("/cleanup/:category", h.echoHandlerWithParams(h.RunCleanup))

		apiV1.POST("/refresh/:poller", h.echoHandlerWithParams(h.Refresh))
		apiV1.GET("/actions", h.echoHandler(h.ListActions))
	}
}

func (h *Handler) echoHandler(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(handlerFunc))
}

// echoHandlerWithParams wraps a handler function and injects path parameters into request context
func (h *Handler) echoHandlerWithParams(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return func(c echo.Context) error {
		r := c.Request()
		// Store path params in request context
		for _, name := range c.ParamNames() {
			r = r.WithContext(context.WithValue(r.Context(), pathParamKey(name), c.Param(name)))
		}
		handlerFunc(c.Response().Writer, r)
		return nil
	}
}

// pathParamKey is a type for path parameter context keys
type pathParamKey string

// GetPathParam retrieves a path parameter from request context
func (h *Handler) GetPathParam(r *http.Request, name string) string {
	if val, ok := r.Context().Value(pathParamKey(name)).(string); ok {
		return val
	}
	return ""
}
