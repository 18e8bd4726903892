package router

import (
	"net/http"

	docs "github.com/eunsung360/Budget-Management-Dashboard/api"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/config"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/controllers/healthz"
	v1 "github.com/eunsung360/Budget-Management-Dashboard/internal/controllers/v1"
	"github.com/eunsung360/Budget-Management-Dashboard/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Router sets up the HTTP router with all middlewares and routes.
func Router(cfg config.Config) (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if origins := cfg.CORS.Origins(); len(origins) > 0 {
		log.Debug().Strs("allowOrigins", origins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	if cfg.Server.EnablePprof {
		pprof.RouteRegister(&r.RouterGroup, "debug/pprof")
	}

	docs.SwaggerInfo.Title = "Budget Management Dashboard"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for the Budget Management Dashboard, a ratio based monthly budget tracker."

	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthz.RegisterRoutes(r.Group("/healthz"))

	// API v1 setup
	group := r.Group("/v1")
	{
		group.GET("", GetV1)
		group.OPTIONS("", OptionsV1)
		group.DELETE("", v1.Cleanup)
		group.OPTIONS("/data", OptionsV1Data)
		group.DELETE("/data", v1.ClearData)
	}

	v1.RegisterConfigRoutes(group.Group("/config"))
	v1.RegisterExpenseRoutes(group.Group("/expenses"))
	v1.RegisterStreakRoutes(group.Group("/streak"))
	v1.RegisterStatsRoutes(group.Group("/stats"))
	v1.RegisterPaydayRoutes(group.Group("/payday"))
	v1.RegisterSettingsRoutes(group.Group("/settings"))
	v1.RegisterExportRoutes(group.Group("/export"))

	log.Info().Str("version", version).Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"`
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"`
	Version string `json:"version" example:"https://example.com/api/version"`
	V1      string `json:"v1" example:"https://example.com/api/v1"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Healthz: url + "/healthz",
			Version: url + "/version",
			V1:      httputil.RequestPathV1(c),
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Config   string `json:"config" example:"https://example.com/api/v1/config"`     // URL of the budget configuration endpoint
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses"` // URL of the expense list endpoint
	Streak   string `json:"streak" example:"https://example.com/api/v1/streak"`     // URL of the streak endpoint
	Stats    string `json:"stats" example:"https://example.com/api/v1/stats"`       // URL of the statistics endpoint
	Payday   string `json:"payday" example:"https://example.com/api/v1/payday"`     // URL of the payday check endpoint
	Settings string `json:"settings" example:"https://example.com/api/v1/settings"` // URL of the settings endpoint
	Export   string `json:"export" example:"https://example.com/api/v1/export"`     // URL of the export endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Config:   httputil.RequestPathV1(c) + "/config",
			Expenses: httputil.RequestPathV1(c) + "/expenses",
			Streak:   httputil.RequestPathV1(c) + "/streak",
			Stats:    httputil.RequestPathV1(c) + "/stats",
			Payday:   httputil.RequestPathV1(c) + "/payday",
			Settings: httputil.RequestPathV1(c) + "/settings",
			Export:   httputil.RequestPathV1(c) + "/export",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1/data [options]
func OptionsV1Data(c *gin.Context) {
	httputil.OptionsDelete(c)
}
