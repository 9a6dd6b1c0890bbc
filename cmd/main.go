package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"instaclone-core/config"
	"instaclone-core/handler"
	natsClient "instaclone-core/nats"
	"instaclone-core/pkg/jwt"
	"instaclone-core/publisher"
	"instaclone-core/repository"
	"instaclone-core/seed"
	"instaclone-core/service"
	"instaclone-core/subscriber"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Build the stores. All state is in memory and owned by these five
	// repositories; everything downstream is handed explicit references.
	userRepo := repository.NewUserRepository()
	feedRepo := repository.NewFeedRepository()
	storyRepo := repository.NewStoryRepository()
	followRepo := repository.NewFollowRepository()
	notificationRepo := repository.NewNotificationRepository()

	stores := seed.Stores{
		Users:         userRepo,
		Feed:          feedRepo,
		Stories:       storyRepo,
		Follows:       followRepo,
		Notifications: notificationRepo,
	}
	seeded, err := seed.Load(ctx, stores, time.Now())
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}
	log.Printf("Seeded demo data, viewer is %s", seeded.Viewer.UserName)

	// The event publisher is optional: without a broker every publish is
	// a no-op and the core behaves identically.
	var eventSink publisher.Publisher = publisher.Noop{}
	var nats *natsClient.Client
	if cfg.NATSURL != "" {
		nats, err = natsClient.NewClient(natsClient.Config{
			URL:           cfg.NATSURL,
			MaxReconnects: cfg.NATSMaxReconnects,
			ReconnectWait: cfg.NATSReconnectWait,
			ClientID:      cfg.NATSClientID,
		})
		if err != nil {
			log.Fatalf("Failed to initialize NATS client: %v", err)
		}
		defer nats.Close()
		eventSink = nats
		log.Println("NATS client initialized successfully")
	}
	eventPublisher := publisher.NewEventPublisher(eventSink)

	var sub *subscriber.NotificationSubscriber
	if nats != nil {
		sub = subscriber.NewNotificationSubscriber(nats, notificationRepo, ctx)
		if err := sub.Start(); err != nil {
			log.Fatalf("Failed to start notification subscriber: %v", err)
		}
	}

	clock := time.Now
	feedService := service.NewFeedService(feedRepo, storyRepo, userRepo, eventPublisher, clock)
	socialService := service.NewSocialGraphService(followRepo, notificationRepo, userRepo, eventPublisher, clock)
	searchService := service.NewSearchService(userRepo)

	jwtManager := jwt.NewManager(cfg.JWTSecret)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	handler.RegisterRoutes(
		router,
		jwtManager,
		handler.NewAuthHandler(userRepo, jwtManager, cfg.TokenExpiry),
		handler.NewFeedHandler(feedService),
		handler.NewSocialHandler(socialService),
		handler.NewSearchHandler(searchService),
	)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("HTTP server listening on port %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	if sub != nil {
		sub.Stop()
	}
	log.Println("Stopped cleanly")
}
