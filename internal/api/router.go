package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/storage"
	"github.com/LJTian/NewsPulse/internal/translator"
)

type Server struct {
	store      *storage.Store
	collector  *collector.Collector
	translator *translator.Client
}

func NewServer(store *storage.Store, col *collector.Collector, tr *translator.Client) *Server {
	return &Server{store: store, collector: col, translator: tr}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	api := r.Group("/api")
	{
		api.GET("/headlines", s.headlines)
		api.POST("/parse", s.parseArticle)
		api.POST("/translate", s.translate)
		api.GET("/stats", s.stats)
		api.POST("/stats", s.recordStat)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// headlines 返回某类别的标题集合。该接口永不报错：
// 采集整体失败就降级成空数组，让前端正常渲染
func (s *Server) headlines(c *gin.Context) {
	category := c.DefaultQuery("category", collector.CategoryGlobal)

	if cached, ok := s.store.CachedHeadlines(category); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	items := s.collector.Headlines(category)
	if items == nil {
		items = []collector.Headline{}
	}
	s.store.SaveHeadlinesCache(category, items)

	c.JSON(http.StatusOK, items)
}

type parseRequest struct {
	URL string `json:"url"`
}

// parseArticle 抓取并解析单篇文章。与 headlines 相反，这里的失败
// 必须让调用方看到：用户等的就是这一篇
func (s *Server) parseArticle(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	article, err := s.collector.Article(req.URL)
	if err != nil {
		log.Printf("parse article %s: %v", req.URL, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Ошибка при парсинге статьи",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, article)
}

type translateRequest struct {
	Content string `json:"content"`
	Title   string `json:"title"`
	Action  string `json:"action"`
}

func (s *Server) translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}
	if req.Action == "" {
		req.Action = translator.ActionAnalytics
	}

	result, err := s.translator.Summarize(req.Content, req.Title, req.Action)
	if err != nil {
		log.Printf("translate (%s): %v", req.Action, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Все ключи API исчерпаны или недоступны.",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"translation": result.Text,
		"model":       result.Model,
	})
}

func (s *Server) stats(c *gin.Context) {
	data, err := s.store.Stats()
	if err != nil {
		log.Printf("read stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}
	c.JSON(http.StatusOK, data)
}

type statRequest struct {
	Type  string         `json:"type"`
	Entry map[string]any `json:"entry"`
}

func (s *Server) recordStat(c *gin.Context) {
	var req statRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	data, err := s.store.RecordStat(req.Type, req.Entry)
	if err != nil {
		log.Printf("record stat: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed"})
		return
	}
	c.JSON(http.StatusOK, data)
}
