package http

import (
	"context"
	"time"

	"github.com/espritmobile/hackhub/internal/config"
	"github.com/espritmobile/hackhub/internal/http/handlers"
	"github.com/espritmobile/hackhub/internal/http/middlewares"
	"github.com/espritmobile/hackhub/internal/observability"
	"github.com/espritmobile/hackhub/internal/repo/mongodb"
	"github.com/espritmobile/hackhub/internal/upload"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const maxRequestBody = 10 << 20 // generous enough for an image upload

func NewRouter(cfg config.Config, mdb *mongo.Database, prom *observability.Prom, reg *prometheus.Registry) (*gin.Engine, error) {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middlewares.MaxBodyBytes(maxRequestBody))
	r.Use(otelgin.Middleware("hackhub-api"))

	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
	}

	uploads, err := upload.NewStore(cfg.UploadDir)

	if err != nil {
		return nil, err
	}

	// health
	ping := func() error {
		if mdb == nil {
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
		defer cancel()

		return mdb.Client().Ping(ctx, nil)
	}

	h := handlers.NewHealthHandler(ping)
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if reg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	// interactive docs
	r.GET("/swagger", handlers.SwaggerUI)
	r.StaticFile("/docs/openapi.yaml", "./docs/openapi.yaml")

	// wire up repositories
	hackathonsRepo := mongodb.NewHackathonsRepo(mdb, prom)
	usersRepo := mongodb.NewUsersRepo(mdb, prom)

	// wire up handlers
	hackathonsHandler := handlers.NewHackathonsHandler(hackathonsRepo, uploads, cfg.PublicBaseURL, prom)
	imagesHandler := handlers.NewImagesHandler(uploads)
	usersHandler := handlers.NewUsersHandler(usersRepo)

	r.POST("/hackathon", hackathonsHandler.CreateHackathon)
	r.GET("/hackathon", hackathonsHandler.ListHackathons)
	r.GET("/hackathon/image/:filename", imagesHandler.ServeImage)
	r.GET("/hackathon/:id", hackathonsHandler.GetHackathonById)
	r.PATCH("/hackathon/:id", hackathonsHandler.UpdateHackathon)
	r.DELETE("/hackathon/:id", hackathonsHandler.DeleteHackathon)
	// hackathon participation route
	r.POST("/hackathon/:id/participate", hackathonsHandler.Participate)

	r.POST("/users", usersHandler.CreateUser)
	r.POST("/users/login", usersHandler.Login)
	r.GET("/users", usersHandler.ListUsers)
	r.GET("/users/:id", usersHandler.GetUserById)
	r.PATCH("/users/:id", usersHandler.UpdateUser)
	r.DELETE("/users/:id", usersHandler.DeleteUser)

	return r, nil
}
