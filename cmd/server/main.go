package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trainbalance/week-planner/internal/api"
	"trainbalance/week-planner/internal/config"
	"trainbalance/week-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// @title TrainBalance Planner API
// @version 1.0
// @description Builds in-season training weeks around team training and a weekly match.
// @host localhost:8080
// @BasePath /
func main() {
	log.Println("Starting TrainBalance planner...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")
	if !cfg.SharingEnabled() {
		log.Println("WARN: share.secret not set, plan share links are disabled")
	}

	// --- Initialize Services ---
	planService := service.NewPlanService(cfg.Share.Secret, cfg.Share.Expiration)

	// --- Initialize Gin Engine ---
	gin.SetMode(cfg.Server.Mode)
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up routes...")
	api.SetupRoutes(router, planService, api.RouteOptions{
		CORSOrigin:   cfg.Server.CORSOrigin,
		ShareBaseURL: cfg.Share.BaseURL,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// In-flight requests get 5 seconds to finish.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
