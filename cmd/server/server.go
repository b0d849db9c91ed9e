package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/mkravets/safechat/internal/database"
	"github.com/mkravets/safechat/internal/handlers"
	"github.com/mkravets/safechat/internal/moderation"
	"github.com/mkravets/safechat/internal/presence"
	"github.com/mkravets/safechat/internal/relay"
	"github.com/mkravets/safechat/internal/services"
	"github.com/mkravets/safechat/internal/session"
	ws "github.com/mkravets/safechat/internal/websocket"
)

type Server struct {
	Router *gin.Engine
	DB     *database.Database
	Redis  *redis.Client
	Hub    *ws.Hub
	Relay  *relay.Relay
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	// Redis is optional; without it every message goes straight to the
	// classifier.
	var rdb *redis.Client
	if url := os.Getenv("REDIS_URL"); url != "" {
		redisOpts, err := redis.ParseURL(url)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(redisOpts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Redis connect failed: %v", err)
		}
	}

	command := os.Getenv("CLASSIFIER_CMD")
	if command == "" {
		command = "python3"
	}
	script := os.Getenv("CLASSIFIER_SCRIPT")
	if script == "" {
		script = "./python/run_model.py"
	}

	var classifier services.Classifier = moderation.NewProcessClassifier(command, script)
	if rdb != nil {
		classifier = moderation.NewCachedClassifier(classifier, rdb)
	}
	gate := moderation.NewGate(classifier)

	hub := ws.NewHub()
	go hub.Run()

	rel := relay.NewRelay(
		dbConn,
		dbConn,
		gate,
		hub,
		session.NewRegistry(),
		presence.NewCounter(),
	)

	wsH := handlers.NewWebSocketHandler(hub, rel)
	msgH := handlers.NewHTTPMessageHandler(dbConn)
	roomH := handlers.NewRoomHandler(rel.Presence(), hub)

	router := gin.Default()
	APIEndpoints(router, wsH, msgH, roomH)

	return &Server{
		Router: router,
		DB:     dbConn,
		Redis:  rdb,
		Hub:    hub,
		Relay:  rel,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
