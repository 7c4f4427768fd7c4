package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"stayquote/internal/infra/config"
	"stayquote/internal/infra/obs"
)

type AvailabilityHTTP interface {
	Calendar(c *gin.Context)
	ResolveClick(c *gin.Context)
}

type QuoteHTTP interface {
	Quote(c *gin.Context)
}

type HostHTTP interface {
	BlockDates(c *gin.Context)
	ReleaseDate(c *gin.Context)
	SetRates(c *gin.Context)
}

type Handlers struct {
	Availability AvailabilityHTTP
	Quote        QuoteHTTP
	Host         HostHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Availability != nil {
		api.GET("/properties/:id/calendar", h.Availability.Calendar)
		api.POST("/properties/:id/selection/click", h.Availability.ResolveClick)
	}
	if h.Quote != nil {
		api.POST("/properties/:id/quote", h.Quote.Quote)
	}
	if h.Host != nil {
		hostGroup := api.Group("/host/properties")
		hostGroup.POST("/:id/blocks", h.Host.BlockDates)
		hostGroup.DELETE("/:id/blocks/:date", h.Host.ReleaseDate)
		hostGroup.PUT("/:id/rates", h.Host.SetRates)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
