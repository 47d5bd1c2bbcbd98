package main

import (
	"log"

	"discuss/internal/commenttree"
	"discuss/internal/config"
	"discuss/internal/db"
	"discuss/internal/handlers"
	"discuss/internal/router"
	"discuss/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// Initialize Database
	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 评论缓存
	store, err := commenttree.NewStore(cfg.CommentStoreCapacity)
	if err != nil {
		log.Fatalf("Failed to create comment store: %v", err)
	}
	store.Subscribe(func(submissionID int64) {
		if gin.IsDebugging() {
			log.Printf("评论缓存已更新: post=%d", submissionID)
		}
	})

	commentHandler := handlers.NewCommentHandler(store, services.NewCommentSource(conn), cfg.CommentsPerPage, cfg.DefaultCommentSort)

	// Initialize Gin
	r := gin.Default()
	router.RegisterRoutes(r, commentHandler)

	log.Printf("Discuss server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
