package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"classwindow/admin"
	"classwindow/config"
	"classwindow/middleware"
	"classwindow/routes"
	"classwindow/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.ConfigInstance = cfg

	st, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize school store: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Requested-With", "Referer", "User-Agent"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           24 * time.Hour,
	}))

	middleware.ApplyMiddleware(router)
	routes.SetupRoutes(router, st)

	adminServer := admin.NewServer(st)
	go func() {
		fmt.Printf("Admin server running on port %s\n", cfg.AdminPort)
		log.Fatal(http.ListenAndServe(":"+cfg.AdminPort, adminServer.Handler()))
	}()

	fmt.Printf("Sync server running on port %s\n", cfg.Port)
	log.Fatal(router.Run(":" + cfg.Port))
}
