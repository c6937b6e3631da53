package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tiffinmate/tiffinmate/internal/config"
	"github.com/tiffinmate/tiffinmate/internal/db"
	"github.com/tiffinmate/tiffinmate/internal/deliveries"
	"github.com/tiffinmate/tiffinmate/internal/logger"
	"github.com/tiffinmate/tiffinmate/internal/middleware"
	"github.com/tiffinmate/tiffinmate/internal/migrate"
	"github.com/tiffinmate/tiffinmate/internal/reviews"
	"github.com/tiffinmate/tiffinmate/internal/subscriptions"
	"github.com/tiffinmate/tiffinmate/internal/users"
	"github.com/tiffinmate/tiffinmate/internal/vendors"

	"github.com/tiffinmate/tiffinmate/docs"
)

// @title TiffinMate API
// @version 1.0
// @description Meal-subscription marketplace backend: vendors, users, subscriptions, daily deliveries and reviews.
func main() {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg := logger.New(cfg.Log.Level)

	ctx := context.Background()
	database, err := db.New(ctx, db.Config{
		URL:             cfg.DB.DSN(),
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
	})
	if err != nil {
		log.Fatalf("connect to postgres: %v", err)
	}
	defer database.Close()

	if err := migrate.Up(ctx, database); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logg))
	router.Use(middleware.Timeout(cfg.App.RequestTimeout))

	vendors.NewHandler(vendors.NewRepository(database), logg).RegisterRoutes(router)
	users.NewHandler(users.NewRepository(database), logg).RegisterRoutes(router)
	subscriptions.NewHandler(subscriptions.NewRepository(database), logg).RegisterRoutes(router)
	deliveries.NewHandler(deliveries.NewRepository(database), logg).RegisterRoutes(router)
	reviews.NewHandler(reviews.NewRepository(database), logg).RegisterRoutes(router)

	docs.SwaggerInfo.Host = cfg.Swagger.Host
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logg.Info("starting server", "port", cfg.App.Port, "env", cfg.App.Env)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
