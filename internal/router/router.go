package router

import (
	"discuss/internal/handlers"
	"discuss/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine, commentHandler *handlers.CommentHandler) {
	r.Use(middleware.RequestMetrics())

	// 评论区 (Comments)
	r.GET("/p/:id/comments", commentHandler.List)        // 帖子评论树
	r.GET("/p/:id/comments/since", commentHandler.Since) // 增量拉取新评论
	r.GET("/c/:id", commentHandler.Thread)               // 单条评论永久链接

	// 监控 (Metrics)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
