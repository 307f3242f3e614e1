package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ahlgren-media/reactions/internal/handler/http/middleware"
	"github.com/ahlgren-media/reactions/internal/usecase"
	usecasecontract "github.com/ahlgren-media/reactions/internal/usecase/contract"
)

// Router wires the reaction and content handlers into the HTTP surface.
type Router struct {
	reactionHandler *ReactionHandler
	contentHandler  *ContentHandler
	jwtSecret       string
}

// NewRouter creates and returns a new Router instance.
func NewRouter(reactions usecasecontract.IReactionUseCase, ranking usecasecontract.IRankingUseCase, contents usecasecontract.IContentUseCase, resolver *usecase.IdentityResolver, logger usecasecontract.IAppLogger, jwtSecret string) *Router {
	return &Router{
		reactionHandler: NewReactionHandler(reactions, ranking, resolver, logger),
		contentHandler:  NewContentHandler(contents, reactions, resolver, logger),
		jwtSecret:       jwtSecret,
	}
}

// SetupRoutes registers middleware and routes on the gin engine.
func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(20, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.OptionalAuth(r.jwtSecret))

	reactions := v1.Group("/reactions")
	{
		reactions.POST("", r.reactionHandler.SaveReaction)
		reactions.GET("/stats", r.reactionHandler.GetStats)
		reactions.GET("/:contentID", r.reactionHandler.GetCounts)
	}

	contents := v1.Group("/contents")
	{
		contents.GET("", r.contentHandler.ListContents)
		contents.POST("", middleware.RequireAuth(), r.contentHandler.CreateContent)
	}
}
