package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ezequiel060805/allge-care-apis/config"
	"github.com/Ezequiel060805/allge-care-apis/controllers"
	"github.com/Ezequiel060805/allge-care-apis/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	// Load environment variables
	godotenv.Load()
	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Connect to MySQL and migrate models; the pool lives for the whole
	// process and is closed on shutdown.
	db, err := config.OpenDB(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	hub := controllers.NewWebsocketHub()
	auth := controllers.NewAuthController(db, cfg)
	datos := controllers.NewDatosController(db)
	conf := controllers.NewConfigController(db)
	ingest := controllers.NewIngestController(db, hub)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))
	// 1000 requests per client IP per minute
	r.Use(middlewares.RateLimitMiddleware(rate.Every(time.Minute/1000), 1000))

	// Public routes
	r.POST("/api/login", auth.Login)
	r.POST("/api/register", auth.Signup)
	r.GET("/data/usuario", datos.GetUsuarios)
	r.GET("/data/mediciones", datos.GetMediciones)
	r.GET("/data/configuraciones", datos.GetConfiguraciones)
	r.POST("/data/configuraciones", conf.UpdateConfiguracion)
	r.GET("/data/alertas", datos.GetAlertas)

	// Device routes using auth middleware
	device := r.Group("/")
	device.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
	device.POST("/data/mediciones/registro", ingest.ReceiveMedicion)
	device.GET("/ws", hub.HandleWebSocket)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("API listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
