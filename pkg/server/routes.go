package server

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"droscher.com/CafeGargoyle/configs"
	"droscher.com/CafeGargoyle/pkg/auth"
	"droscher.com/CafeGargoyle/pkg/mail"
	"droscher.com/CafeGargoyle/pkg/repository"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionName = "cafegargoyle_session"

// NewRouter assembles the gin engine: access logging and panic recovery
// through zap, CORS, cookie sessions, request metrics, embedded templates
// and the route table.
func NewRouter(conf *configs.Config, cafes repository.CafeRepository, suggestions mail.Sender, authManager *auth.Manager, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	store := cookie.NewStore([]byte(conf.Server.SessionKey))
	router.Use(sessions.Sessions(sessionName, store))
	router.Use(metricsMiddleware())

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	registerRoutes(router, NewCafeServer(cafes, suggestions, logger), NewUserServer(authManager, logger), authManager)

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// registerRoutes wires the route table. Only /add, /edit and /logout are
// session-gated; /delete and /review stay public to match the upstream
// behavior this service replaces.
func registerRoutes(router gin.IRouter, cafes *CafeServer, users *UserServer, authManager *auth.Manager) {
	router.GET("/", cafes.Index)

	router.GET("/register", users.ShowRegister)
	router.POST("/register", users.Register)
	router.GET("/login", users.ShowLogin)
	router.POST("/login", users.Login)

	router.GET("/user_add", cafes.ShowSuggestCafe)
	router.POST("/user_add", cafes.SuggestCafe)
	router.GET("/review/:cafe_id", cafes.ShowReviewCafe)
	router.POST("/review/:cafe_id", cafes.ReviewCafe)
	router.GET("/delete/:cafe_id", cafes.DeleteCafe)
	router.POST("/delete/:cafe_id", cafes.DeleteCafe)

	protected := router.Group("/", authManager.RequireLogin())
	{
		protected.GET("/logout", users.Logout)
		protected.GET("/add", cafes.ShowAddCafe)
		protected.POST("/add", cafes.AddCafe)
		protected.GET("/edit/:cafe_id", cafes.ShowEditCafe)
		protected.POST("/edit/:cafe_id", cafes.EditCafe)
	}
}
