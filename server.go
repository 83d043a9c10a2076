package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"yatube/api/handlers"
	"yatube/api/middleware"
	"yatube/api/routes"
	"yatube/config"
	"yatube/db"
	"yatube/services"

	"github.com/gin-gonic/gin"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	if err := config.LoadConfig(configPath); err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	log.Println("Starting server...")

	if err := db.ConnectDB(); err != nil {
		panic("Failed to connect to the database: " + err.Error())
	}

	if err := services.InitRedis(); err != nil {
		// Без Redis работаем, но лента не кешируется
		log.Printf("WARNING: Redis unavailable, index page cache disabled: %v", err)
	}
	defer services.CloseRedis()

	if err := services.InitRabbitMQ(); err != nil {
		// Без брокера события уходят напрямую в WebSocket
		log.Printf("WARNING: RabbitMQ unavailable, using direct WS fallback: %v", err)
	} else {
		defer services.CloseRabbitMQ()
		if err := services.StartFeedEventConsumer(context.Background(), "yatube_feed_push"); err != nil {
			log.Printf("WARNING: failed to start feed event consumer: %v", err)
		}
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(handlers.Recovery())
	router.Use(middleware.PrometheusMiddleware())

	routes.PublicApi(router)

	addr := fmt.Sprintf("%s:%d", config.AppConfig.Backend.Host, config.AppConfig.Backend.Port)
	if err := router.Run(addr); err != nil {
		panic(err)
	}
}
