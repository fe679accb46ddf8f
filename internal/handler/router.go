package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"groupbuy-service/internal/handler/api"
	"groupbuy-service/internal/handler/middleware"
	"groupbuy-service/internal/pkg/config"
	"groupbuy-service/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine          *gin.Engine
	Config          config.Config
	Logger          *middleware.Logger
	Metrics         *metrics.Metrics
	AuthMiddleware  *middleware.AuthMiddleware
	Auth            *api.AuthHandler
	PurchaseRequest *api.PurchaseRequestHandler
	UploadProof     *api.UploadProofHandler
	Review          *api.ReviewHandler
	Listing         *api.ListingHandler
	GroupBuy        *api.GroupBuyHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(middleware.Metrics(p.Metrics))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	requireAuth := p.AuthMiddleware.RequireAuth()

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))
	// an absolute base URL means uploads are served elsewhere
	if strings.HasPrefix(p.Config.Storage.PublicBaseURL, "/") {
		engine.Static(p.Config.Storage.PublicBaseURL, p.Config.Storage.UploadDir)
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: p.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		purchaseRequests := apiGroup.Group("/purchase-requests")
		purchaseRequests.Use(requireAuth)
		{
			addRoutes(purchaseRequests, []route{
				{Method: http.MethodPost, Path: "", Handler: p.PurchaseRequest.Create},
				{Method: http.MethodPatch, Path: "", Handler: p.PurchaseRequest.Apply},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/upload-proof", Handler: p.UploadProof.Upload, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/reviews", Handler: p.Review.Create, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/listing-drafts", Handler: p.Listing.CreateDraft, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/listings", Handler: p.Listing.Create, Mw: []gin.HandlerFunc{requireAuth}},
		})

		groupBuys := apiGroup.Group("/group-buys")
		{
			addRoutes(groupBuys, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: p.GroupBuy.Get},
				{Method: http.MethodPost, Path: "/:id/join", Handler: p.GroupBuy.Join, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/:id/messages", Handler: p.GroupBuy.Messages, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: p.Review.ListByUser},
				{Method: http.MethodGet, Path: "/:id/rating", Handler: p.Review.RatingStats},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
