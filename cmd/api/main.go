package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	cachepkg "github.com/washera/carwash-scheduler/internal/cache"
	"github.com/washera/carwash-scheduler/internal/clock"
	"github.com/washera/carwash-scheduler/internal/config"
	dbpkg "github.com/washera/carwash-scheduler/internal/db"
	"github.com/washera/carwash-scheduler/internal/middleware"
	"github.com/washera/carwash-scheduler/internal/routes"
	"github.com/washera/carwash-scheduler/internal/timezone"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var store cachepkg.Cache = cachepkg.NewNoop()
	if cfg.RedisAddr != "" {
		redis := cachepkg.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err := redis.Ping(context.Background()); err != nil {
			log.Println("redis unavailable, capacity cache disabled:", err)
		} else {
			store = redis
		}
	}

	scheduler := cron.New(cron.WithLocation(timezone.Location(timezone.DefaultTimezone)))

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, store, clock.New(), scheduler)

	scheduler.Start()
	defer scheduler.Stop()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
