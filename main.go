package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	apiv1 "github.com/freshcart/freshcart/internal/api/v1"
	"github.com/freshcart/freshcart/internal/service"
	"github.com/freshcart/freshcart/internal/store"
	"github.com/freshcart/freshcart/pkg/config"
	"github.com/freshcart/freshcart/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		log.Fatal("store open failed: ", err)
	}
	if err := st.Seed(); err != nil {
		log.Fatal("store seed failed: ", err)
	}

	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "X-Session-ID", "X-Request-ID"},
		MaxAge:          24 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	latency := service.Latency{Read: cfg.ReadLatency, Write: cfg.WriteLatency}
	v1 := r.Group("/api/v1")
	apiv1.RegisterRoutes(v1, st, latency)

	log.Printf("freshcart listening on %s (data dir %s)", cfg.Addr, cfg.DataDir)
	r.Run(cfg.Addr)
}
