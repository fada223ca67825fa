package services

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/b1aiirrr/KaziLink/internal/config"
	"github.com/b1aiirrr/KaziLink/internal/database"
	"github.com/b1aiirrr/KaziLink/internal/models"
)

// Store is the data backend consumed by the HTTP handlers. It is injected
// so tests can run against an in-memory fake.
type Store interface {
	SearchOpportunities(ctx context.Context, f database.ListingFilter) ([]models.Opportunity, error)
	InsertOpportunities(ctx context.Context, opportunities []models.Opportunity) error
	RegisterUser(ctx context.Context, user models.User) error
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
}

type Service struct {
	store Store
	cfg   *config.Config
}

func New(store Store, cfg *config.Config) *Service {
	return &Service{store: store, cfg: cfg}
}

// Router builds the gin engine with all routes registered.
func (s *Service) Router() *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowWildcard = true
	corsConfig.AllowHeaders = []string{"Authorization", "Origin", "Content-Length", "Content-Type", "Access-Control-Allow-Headers", "Access-Control-Allow-Origin"}
	r.Use(cors.New(corsConfig))

	r.LoadHTMLGlob(s.cfg.TemplatesGlob)
	r.Static("/static", s.cfg.StaticDir)

	r.GET("/", s.homePage())
	r.GET("/login", s.loginPage())
	r.POST("/login", s.login())
	r.GET("/signup", s.signupPage())
	r.POST("/signup", s.signup())
	r.GET("/api/opportunities", s.listOpportunities())
	r.GET("/api/seed", s.seed())

	return r
}

// Register starts the HTTP server on the configured port.
func (s *Service) Register() error {
	return s.Router().Run(":" + s.cfg.Port)
}

func erro(err error) gin.H {
	return gin.H{"error": err.Error()}
}
