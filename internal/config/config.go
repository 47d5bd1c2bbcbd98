package config

import (
	"log"
	"os"
	"strconv"

	"discuss/internal/commenttree"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	DatabaseURL          string
	CommentsPerPage      int                  // 评论区每页条数
	CommentStoreCapacity int                  // 客户端缓存最多保留的帖子数
	DefaultCommentSort   commenttree.SortMode // 默认评论排序
}

// Load 读取 .env 与环境变量，未设置的项使用默认值
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		DatabaseURL:          getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=discuss port=5432 sslmode=disable TimeZone=UTC"),
		CommentsPerPage:      getEnvInt("RESULTS_PER_PAGE_COMMENTS", 50),
		CommentStoreCapacity: getEnvInt("COMMENT_STORE_CAPACITY", commenttree.DefaultStoreCapacity),
		DefaultCommentSort:   commenttree.SortTop,
	}

	if s := os.Getenv("COMMENT_DEFAULT_SORT"); s != "" {
		sort, err := commenttree.ParseSortMode(s)
		if err != nil {
			log.Printf("Invalid COMMENT_DEFAULT_SORT %q, using top", s)
		} else {
			cfg.DefaultCommentSort = sort
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvInt 非法或非正数时返回默认值
func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
