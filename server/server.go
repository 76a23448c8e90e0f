// Package server 是薄 HTTP 层：路由、CORS、请求/响应 DTO。
// 所有推荐语义都在 engine 包，这里只做 I/O 粘合。
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aniruddha-beep/movie-suggestion/core"
	"github.com/aniruddha-beep/movie-suggestion/engine"
)

// RecommendRequest 是 POST /recommend 的请求体，所有字段可选。
type RecommendRequest struct {
	Mood     string `json:"mood"`
	Language string `json:"language"`
	Length   string `json:"length"` // short / medium / long
	FavMovie string `json:"fav_movie"`
}

// Handler 持有引擎句柄，自身无状态。
type Handler struct {
	Engine *engine.Engine
}

func NewHandler(e *engine.Engine) *Handler {
	return &Handler{Engine: e}
}

// Recommend 处理一次推荐请求。空结果返回空数组，不是错误。
func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	results, err := h.Engine.Recommend(c.Request.Context(), &core.QueryContext{
		Mood:          req.Mood,
		Language:      req.Language,
		Length:        req.Length,
		FavoriteTitle: req.FavMovie,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recommendation failed"})
		return
	}

	c.JSON(http.StatusOK, results)
}

// NewRouter 组装路由与 CORS 中间件。
func NewRouter(h *Handler) *gin.Engine {
	router := gin.Default()

	// Enable CORS
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/recommend", h.Recommend)

	return router
}
